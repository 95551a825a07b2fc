// Package docgraph records how the documents of a schema set compose each
// other through import, include and redefine, and reports circular
// composition.
package docgraph

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/panbanda/xsdscope/pkg/analyzer"
	"github.com/panbanda/xsdscope/pkg/schema"
	"github.com/panbanda/xsdscope/pkg/tracker"
	"github.com/panbanda/xsdscope/pkg/walk"
)

// Analyzer builds composition graphs.
type Analyzer struct {
	logger *slog.Logger
}

// Compile-time check that Analyzer implements analyzer.DocumentAnalyzer[*Graph]
var _ analyzer.DocumentAnalyzer[*Graph] = (*Analyzer)(nil)

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger receiving cycle reports.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates a composition graph analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// onlyComposition prunes everything but roots and the components that
// reference other documents.
func onlyComposition(n schema.Node) bool {
	k := n.Kind()
	return k != schema.KindSchema && !k.IsSchemaLocation()
}

// Analyze walks docs and every document they reach. Documents must belong to
// a schema.Set for referenced documents to be loaded.
func (a *Analyzer) Analyze(ctx context.Context, docs []*schema.Document) (*Graph, error) {
	b := newBuilder()
	l := &listener{Tracker: tracker.New(), b: b}
	v := &locations{l: l}
	v.Self = v
	w := walk.New(onlyComposition, l)

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.document(doc)
		if err := w.WalkDocument(doc, v); err != nil {
			return nil, fmt.Errorf("composition of %s: %w", doc, err)
		}
	}

	g := b.finish()
	for _, cycle := range g.Cycles {
		a.logger.Warn("circular document composition", "documents", cycle)
	}
	return g, nil
}

// Close releases any resources held by the analyzer.
func (a *Analyzer) Close() {}

// locations remembers the location component being expanded.
type locations struct {
	walk.BaseVisitor
	l *listener
}

func (v *locations) VisitSchemaLocation(n schema.Node) bool {
	v.l.site = n
	return true
}

// listener records an edge for every document the walker asks to enter,
// including documents the tracker refuses because they were already walked.
type listener struct {
	*tracker.Tracker
	b    *builder
	site schema.Node
}

func (l *listener) Enter(doc *schema.Document) bool {
	if l.Depth() > 0 && l.site.Valid() {
		l.b.edge(l.CurrentDocument(), doc, l.site)
	}
	l.b.document(doc)
	return l.Tracker.Enter(doc)
}

type builder struct {
	ids   map[string]int64
	g     *Graph
	gonum *simple.DirectedGraph
	self  map[string]bool
}

func newBuilder() *builder {
	return &builder{
		ids:   make(map[string]int64),
		g:     &Graph{},
		gonum: simple.NewDirectedGraph(),
		self:  make(map[string]bool),
	}
}

func (b *builder) document(doc *schema.Document) int64 {
	id := doc.ID()
	if n, ok := b.ids[id]; ok {
		return n
	}
	n := int64(len(b.g.Documents))
	b.ids[id] = n
	b.g.Documents = append(b.g.Documents, id)
	b.gonum.AddNode(simple.Node(n))
	return n
}

func (b *builder) edge(from, to *schema.Document, site schema.Node) {
	f, t := b.document(from), b.document(to)
	b.g.Edges = append(b.g.Edges, Edge{
		From: from.ID(),
		To:   to.ID(),
		Kind: edgeKind(site.Kind()),
		Line: site.Line(),
	})
	// Simple graphs have no self-loops.
	if f == t {
		b.self[from.ID()] = true
		return
	}
	b.gonum.SetEdge(simple.Edge{F: simple.Node(f), T: simple.Node(t)})
}

func (b *builder) finish() *Graph {
	g := b.g
	byDiscovery := func(nodes []graph.Node) {
		slices.SortFunc(nodes, func(x, y graph.Node) int { return cmp.Compare(x.ID(), y.ID()) })
	}

	for _, scc := range topo.TarjanSCC(b.gonum) {
		if len(scc) == 1 && !b.self[g.Documents[scc[0].ID()]] {
			continue
		}
		byDiscovery(scc)
		cycle := make([]string, len(scc))
		for i, n := range scc {
			cycle[i] = g.Documents[n.ID()]
		}
		g.Cycles = append(g.Cycles, cycle)
	}
	slices.SortFunc(g.Cycles, func(x, y []string) int {
		return cmp.Compare(b.ids[x[0]], b.ids[y[0]])
	})

	if len(g.Cycles) == 0 {
		sorted, err := topo.SortStabilized(b.gonum, byDiscovery)
		if err == nil {
			g.Order = make([]string, len(sorted))
			for i, n := range sorted {
				g.Order[i] = g.Documents[n.ID()]
			}
		}
	}
	return g
}
