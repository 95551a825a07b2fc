package schema

import (
	"fmt"
)

// NodeID indexes a component in its document's arena.
type NodeID int32

// InvalidNode marks an absent component.
const InvalidNode NodeID = -1

// Decl carries the attribute values of a component as read by the parsing layer.
type Decl struct {
	Name              string
	Ref               QName
	Type              QName
	Base              QName
	ItemType          QName
	MemberTypes       []QName
	SubstitutionGroup QName
	Refer             QName
	// Occurs holds minOccurs/maxOccurs; nil means the (1,1) default.
	Occurs         *Arity
	Use            AttributeUse
	Nillable       bool
	Abstract       bool
	Mixed          bool
	Value          string
	SchemaLocation string
	Namespace      string
	Line           int
}

type node struct {
	kind       Kind
	parent     NodeID
	annotation NodeID
	children   []NodeID
	decl       Decl
}

// Node is a handle to one component of a document. The zero Node refers to
// nothing. Nodes are comparable and may be used as map keys.
type Node struct {
	doc *Document
	id  NodeID
}

func (n Node) raw() *node {
	return &n.doc.nodes[n.id]
}

// Valid reports whether n refers to a component.
func (n Node) Valid() bool {
	return n.doc != nil && n.id >= 0 && int(n.id) < len(n.doc.nodes)
}

// ID returns the arena index of n.
func (n Node) ID() NodeID { return n.id }

// Document returns the owning document.
func (n Node) Document() *Document { return n.doc }

// Kind returns the component kind, or KindInvalid for the zero Node.
func (n Node) Kind() Kind {
	if !n.Valid() {
		return KindInvalid
	}
	return n.raw().kind
}

// Parent returns the parent component; the document root has no parent.
func (n Node) Parent() Node {
	if !n.Valid() {
		return Node{}
	}
	p := n.raw().parent
	if p == InvalidNode {
		return Node{}
	}
	return Node{doc: n.doc, id: p}
}

// NumChildren returns the number of structural children.
func (n Node) NumChildren() int {
	if !n.Valid() {
		return 0
	}
	return len(n.raw().children)
}

// Child returns the i-th structural child.
func (n Node) Child(i int) Node {
	return Node{doc: n.doc, id: n.raw().children[i]}
}

// Children returns the structural children in document order. The annotation
// is not included.
func (n Node) Children() []Node {
	if !n.Valid() {
		return nil
	}
	ids := n.raw().children
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{doc: n.doc, id: id}
	}
	return out
}

// Annotation returns the annotation owned by n, or the zero Node.
func (n Node) Annotation() Node {
	if !n.Valid() {
		return Node{}
	}
	a := n.raw().annotation
	if a == InvalidNode {
		return Node{}
	}
	return Node{doc: n.doc, id: a}
}

func (n Node) decl() *Decl {
	if !n.Valid() {
		return &Decl{}
	}
	return &n.raw().decl
}

// Name returns the local name of a named component.
func (n Node) Name() string { return n.decl().Name }

// Ref returns the ref attribute of a reference component.
func (n Node) Ref() QName { return n.decl().Ref }

// TypeRef returns the type attribute of an element or attribute.
func (n Node) TypeRef() QName { return n.decl().Type }

// Base returns the base type of an extension or restriction.
func (n Node) Base() QName { return n.decl().Base }

// ItemType returns the itemType of a list.
func (n Node) ItemType() QName { return n.decl().ItemType }

// MemberTypes returns the memberTypes of a union. The slice must not be modified.
func (n Node) MemberTypes() []QName { return n.decl().MemberTypes }

// SubstitutionGroup returns the substitution group head of an element.
func (n Node) SubstitutionGroup() QName { return n.decl().SubstitutionGroup }

// Refer returns the refer attribute of a keyref.
func (n Node) Refer() QName { return n.decl().Refer }

// Value returns a facet value, or the text of documentation and appinfo.
func (n Node) Value() string { return n.decl().Value }

// SchemaLocation returns the schemaLocation of an import, include or redefine.
func (n Node) SchemaLocation() string { return n.decl().SchemaLocation }

// Namespace returns the namespace attribute of an import or wildcard.
func (n Node) Namespace() string { return n.decl().Namespace }

// Line returns the source line, or 0 when unknown.
func (n Node) Line() int { return n.decl().Line }

// Nillable reports whether an element is nillable.
func (n Node) Nillable() bool { return n.decl().Nillable }

// Abstract reports whether an element or complex type is abstract.
func (n Node) Abstract() bool { return n.decl().Abstract }

// Mixed reports whether a complex type or complex content is mixed.
func (n Node) Mixed() bool { return n.decl().Mixed }

// Use returns the use of an attribute.
func (n Node) Use() AttributeUse { return n.decl().Use }

// IsReference reports whether n refers to a global definition through ref.
func (n Node) IsReference() bool {
	switch n.Kind() {
	case KindElement, KindAttribute, KindGroup, KindAttributeGroup:
		return !n.decl().Ref.IsZero()
	}
	return false
}

// Arity returns the occurrence bounds of n. Kinds without bounds report (1,1).
func (n Node) Arity() Arity {
	k := n.Kind()
	if !k.HasArity() {
		return One
	}
	d := n.decl()
	if k == KindAttribute {
		return d.Use.Arity()
	}
	if d.Occurs == nil {
		return One
	}
	return *d.Occurs
}

// Optional reports whether n may be absent. A nillable element that is not
// repeated is always optional.
func (n Node) Optional() bool {
	a := n.Arity()
	if a.Optional() {
		return true
	}
	return n.Kind() == KindElement && n.Nillable() && !a.Repeated()
}

// Singleton reports whether n occurs exactly once. A nillable element is never
// a singleton.
func (n Node) Singleton() bool {
	if n.Kind() == KindElement && n.Nillable() {
		return false
	}
	return n.Arity().Singleton()
}

// IsGlobal reports whether n is a named definition declared directly under a
// document root or a redefine.
func (n Node) IsGlobal() bool {
	if !n.Kind().IsDefinition() || n.Name() == "" {
		return false
	}
	switch n.Parent().Kind() {
	case KindSchema, KindRedefine:
		return true
	}
	return false
}

// IsBuiltin reports whether n belongs to the built-in type catalog.
func (n Node) IsBuiltin() bool {
	return n.doc != nil && n.doc.builtin
}

// QName returns the qualified name of a named component. Global definitions
// are in the target namespace; local elements and attributes follow the
// document's form defaults.
func (n Node) QName() QName {
	name := n.Name()
	if name == "" || n.doc == nil {
		return QName{}
	}
	ns := n.doc.targetNamespace
	if !n.IsGlobal() {
		switch n.Kind() {
		case KindElement:
			if n.doc.ElementFormDefault != FormQualified {
				ns = ""
			}
		case KindAttribute:
			if n.doc.AttributeFormDefault != FormQualified {
				ns = ""
			}
		}
	}
	return QName{Namespace: ns, Local: name}
}

// Key returns a process-unique identity for n.
func (n Node) Key() uint64 {
	if n.doc == nil {
		return 0
	}
	return uint64(n.doc.ordinal)<<32 | uint64(uint32(n.id))
}

// Position returns the 1-based position of n among its parent's children of
// the same kind. Roots and annotations report 1.
func (n Node) Position() int {
	p := n.Parent()
	if !p.Valid() || p.raw().annotation == n.id {
		return 1
	}
	kind := n.Kind()
	pos := 0
	for _, id := range p.raw().children {
		if n.doc.nodes[id].kind == kind {
			pos++
		}
		if id == n.id {
			break
		}
	}
	return pos
}

func (n Node) String() string {
	if !n.Valid() {
		return "<nil>"
	}
	if name := n.Name(); name != "" {
		return fmt.Sprintf("%s(%s)", n.Kind(), name)
	}
	if ref := n.Ref(); !ref.IsZero() {
		return fmt.Sprintf("%s(ref=%s)", n.Kind(), ref)
	}
	return n.Kind().String()
}
