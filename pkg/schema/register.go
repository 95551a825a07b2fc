package schema

import (
	"iter"
	"maps"
	"slices"
)

// Table selects one of the symbol tables of a Register.
type Table uint8

const (
	TableAttributes Table = iota
	TableAttributeGroups
	TableElements
	TableGroups
	TableTypes

	tableCount
)

func (t Table) String() string {
	switch t {
	case TableAttributes:
		return "attributes"
	case TableAttributeGroups:
		return "attributeGroups"
	case TableElements:
		return "elements"
	case TableGroups:
		return "groups"
	case TableTypes:
		return "types"
	}
	return "invalid"
}

// TableFor returns the table global definitions of kind k are registered in.
func TableFor(k Kind) (Table, bool) {
	switch k {
	case KindAttribute:
		return TableAttributes, true
	case KindAttributeGroup:
		return TableAttributeGroups, true
	case KindElement:
		return TableElements, true
	case KindGroup:
		return TableGroups, true
	case KindComplexType, KindSimpleType:
		return TableTypes, true
	}
	return 0, false
}

// symbols is one table: definitions declared in the document, plus
// definitions pulled in by import, consulted only as a fallback.
type symbols struct {
	direct   map[QName]Node
	imported map[QName]Node
}

func (s *symbols) register(q QName, def Node) (Node, bool) {
	prior, ok := s.direct[q]
	s.direct[q] = def
	return prior, ok
}

func (s *symbols) find(q QName) (Node, bool) {
	if def, ok := s.direct[q]; ok {
		return def, true
	}
	def, ok := s.imported[q]
	return def, ok
}

// Register holds the global definitions visible from one document.
//
// Within one table a QName maps to at most one definition. Registering a
// name again replaces the earlier definition and returns it; reporting
// duplicates is left to validation.
type Register struct {
	tables [tableCount]symbols
}

// NewRegister creates an empty register.
func NewRegister() *Register {
	r := &Register{}
	for i := range r.tables {
		r.tables[i].direct = make(map[QName]Node)
	}
	return r
}

// Register adds def to table under q and returns the definition it replaced.
func (r *Register) Register(t Table, q QName, def Node) (prior Node, replaced bool) {
	return r.tables[t].register(q, def)
}

// Find looks q up in table t: direct definitions first, then imported ones.
func (r *Register) Find(t Table, q QName) (Node, bool) {
	if t == TableTypes {
		return r.FindType(q)
	}
	return r.tables[t].find(q)
}

// RegisterAttribute adds a global attribute and returns the one it replaced.
func (r *Register) RegisterAttribute(q QName, def Node) (Node, bool) {
	return r.tables[TableAttributes].register(q, def)
}

// RegisterAttributeGroup adds an attribute group and returns the one it replaced.
func (r *Register) RegisterAttributeGroup(q QName, def Node) (Node, bool) {
	return r.tables[TableAttributeGroups].register(q, def)
}

// RegisterElement adds a global element and returns the one it replaced.
func (r *Register) RegisterElement(q QName, def Node) (Node, bool) {
	return r.tables[TableElements].register(q, def)
}

// RegisterGroup adds a model group and returns the one it replaced.
func (r *Register) RegisterGroup(q QName, def Node) (Node, bool) {
	return r.tables[TableGroups].register(q, def)
}

// RegisterType adds a simple or complex type and returns the one it replaced.
func (r *Register) RegisterType(q QName, def Node) (Node, bool) {
	return r.tables[TableTypes].register(q, def)
}

// FindAttribute looks up a global attribute, direct definitions first.
func (r *Register) FindAttribute(q QName) (Node, bool) {
	return r.tables[TableAttributes].find(q)
}

// FindAttributeGroup looks up an attribute group, direct definitions first.
func (r *Register) FindAttributeGroup(q QName) (Node, bool) {
	return r.tables[TableAttributeGroups].find(q)
}

// FindElement looks up a global element, direct definitions first.
func (r *Register) FindElement(q QName) (Node, bool) {
	return r.tables[TableElements].find(q)
}

// FindGroup looks up a model group, direct definitions first.
func (r *Register) FindGroup(q QName) (Node, bool) {
	return r.tables[TableGroups].find(q)
}

// FindType looks up a type definition. Names in the XML Schema namespace
// resolve against the built-in catalog instead of the register's tables.
func (r *Register) FindType(q QName) (Node, bool) {
	if q.Namespace == XSDNamespace {
		return Builtin(q.Local)
	}
	return r.tables[TableTypes].find(q)
}

// MergeDefinitions copies other's direct definitions into r's direct
// tables, replacing definitions with the same name.
func (r *Register) MergeDefinitions(other *Register) {
	for i := range r.tables {
		maps.Copy(r.tables[i].direct, other.tables[i].direct)
	}
}

// MergeDefinitionsNamespaced copies other's direct definitions into r's
// direct tables, moving every name into namespace uri. It folds a
// no-namespace included document into the includer's namespace.
func (r *Register) MergeDefinitionsNamespaced(uri string, other *Register) {
	for i := range r.tables {
		dst := r.tables[i].direct
		for q, def := range other.tables[i].direct {
			dst[QName{Namespace: uri, Local: q.Local}] = def
		}
	}
}

// MergeImportedDefinitions copies other's direct definitions into r's
// imported tables. r's direct tables are never modified.
func (r *Register) MergeImportedDefinitions(other *Register) {
	for i := range r.tables {
		if r.tables[i].imported == nil {
			r.tables[i].imported = make(map[QName]Node, len(other.tables[i].direct))
		}
		maps.Copy(r.tables[i].imported, other.tables[i].direct)
	}
}

// Len returns the number of direct definitions in table t.
func (r *Register) Len(t Table) int {
	return len(r.tables[t].direct)
}

// ImportedLen returns the number of imported definitions in table t.
func (r *Register) ImportedLen(t Table) int {
	return len(r.tables[t].imported)
}

// Definitions iterates the direct definitions of table t in QName order.
func (r *Register) Definitions(t Table) iter.Seq2[QName, Node] {
	return sortedSymbols(r.tables[t].direct)
}

// ImportedDefinitions iterates the imported definitions of table t in QName order.
func (r *Register) ImportedDefinitions(t Table) iter.Seq2[QName, Node] {
	return sortedSymbols(r.tables[t].imported)
}

func sortedSymbols(m map[QName]Node) iter.Seq2[QName, Node] {
	return func(yield func(QName, Node) bool) {
		keys := slices.SortedFunc(maps.Keys(m), CompareQNames)
		for _, q := range keys {
			if !yield(q, m[q]) {
				return
			}
		}
	}
}
