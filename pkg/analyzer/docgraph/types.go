package docgraph

import "github.com/panbanda/xsdscope/pkg/schema"

// EdgeKind is the composition relationship between two documents.
type EdgeKind string

const (
	EdgeInclude  EdgeKind = "include"
	EdgeImport   EdgeKind = "import"
	EdgeRedefine EdgeKind = "redefine"
)

// String returns the string representation.
func (e EdgeKind) String() string {
	return string(e)
}

func edgeKind(k schema.Kind) EdgeKind {
	switch k {
	case schema.KindImport:
		return EdgeImport
	case schema.KindRedefine:
		return EdgeRedefine
	}
	return EdgeInclude
}

// Edge is one import, include or redefine between two documents, identified
// by their resolver identities.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
	Line int
}

// Graph is the composition graph of a document set.
type Graph struct {
	// Documents lists document identities in discovery order.
	Documents []string
	Edges     []Edge

	// Cycles holds each group of mutually composing documents, including a
	// document that composes itself.
	Cycles [][]string

	// Order lists every document before the documents it composes. It is
	// nil when the graph has cycles.
	Order []string
}

// IsCyclic reports whether any documents compose each other.
func (g *Graph) IsCyclic() bool {
	return len(g.Cycles) > 0
}

// Outgoing returns the edges leaving the document with the given identity.
func (g *Graph) Outgoing(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}
