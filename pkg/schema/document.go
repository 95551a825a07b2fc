package schema

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/panbanda/xsdscope/pkg/resolver"
)

var documentOrdinal atomic.Uint32

// NamespaceDecl is one xmlns declaration of a schema document.
type NamespaceDecl struct {
	Prefix string
	URI    string
}

// Document is one schema document: a component arena rooted at a schema
// component, with its own name register.
type Document struct {
	ordinal         uint32
	resolver        resolver.Resolver
	set             *Set
	targetNamespace string
	namespaces      []NamespaceDecl
	nodes           []node
	register        *Register
	builtin         bool

	ElementFormDefault   Form
	AttributeFormDefault Form
}

// NewDocument creates a document holding only its schema root. The resolver
// is used for identity and for resolving relative locations; it may be nil
// for detached documents.
func NewDocument(res resolver.Resolver, targetNamespace string) *Document {
	d := &Document{
		ordinal:         documentOrdinal.Add(1),
		resolver:        res,
		targetNamespace: targetNamespace,
		register:        NewRegister(),
	}
	d.nodes = append(d.nodes, node{
		kind:       KindSchema,
		parent:     InvalidNode,
		annotation: InvalidNode,
	})
	return d
}

// Ordinal returns the process-unique ordinal of the document.
func (d *Document) Ordinal() uint32 { return d.ordinal }

// Resolver returns the resolver that produced the document.
func (d *Document) Resolver() resolver.Resolver { return d.resolver }

// ID returns the resolver identity, or a synthetic identity for detached documents.
func (d *Document) ID() string {
	if d.resolver != nil {
		return d.resolver.ID()
	}
	return "#" + strconv.FormatUint(uint64(d.ordinal), 10)
}

// Name returns the resolver display name, or "" when detached.
func (d *Document) Name() string {
	if d.resolver != nil {
		return d.resolver.Name()
	}
	return ""
}

// TargetNamespace returns the target namespace; "" means none.
func (d *Document) TargetNamespace() string { return d.targetNamespace }

// Root returns the schema root component.
func (d *Document) Root() Node { return Node{doc: d, id: 0} }

// Register returns the document's name register.
func (d *Document) Register() *Register { return d.register }

// Set returns the document set the document belongs to, if any.
func (d *Document) Set() *Set { return d.set }

// Len returns the number of components in the document, including the root.
func (d *Document) Len() int { return len(d.nodes) }

// Node returns the component with the given id.
func (d *Document) Node(id NodeID) Node {
	n := Node{doc: d, id: id}
	if !n.Valid() {
		return Node{}
	}
	return n
}

// DeclareNamespace records a prefix declaration. Redeclaring a prefix
// replaces its URI while keeping its original position.
func (d *Document) DeclareNamespace(prefix, uri string) {
	for i := range d.namespaces {
		if d.namespaces[i].Prefix == prefix {
			d.namespaces[i].URI = uri
			return
		}
	}
	d.namespaces = append(d.namespaces, NamespaceDecl{Prefix: prefix, URI: uri})
}

// Namespaces returns the namespace declarations in insertion order.
func (d *Document) Namespaces() []NamespaceDecl {
	out := make([]NamespaceDecl, len(d.namespaces))
	copy(out, d.namespaces)
	return out
}

// LookupPrefix returns the URI bound to prefix.
func (d *Document) LookupPrefix(prefix string) (string, bool) {
	for _, ns := range d.namespaces {
		if ns.Prefix == prefix {
			return ns.URI, true
		}
	}
	return "", false
}

// Definitions returns the named global definitions declared at the top level,
// in document order.
func (d *Document) Definitions() []Node {
	var out []Node
	for _, child := range d.Root().Children() {
		if child.IsGlobal() {
			out = append(out, child)
		}
	}
	return out
}

// Add appends a component of the given kind under parent. An annotation is
// attached as the parent's annotation rather than as a child. Add panics when
// parent does not belong to d or the kind cannot be added.
func (d *Document) Add(parent Node, kind Kind, decl Decl) Node {
	if parent.doc != d || !parent.Valid() {
		panic(fmt.Sprintf("schema: parent %v does not belong to document %s", parent, d.ID()))
	}
	if !kind.Valid() || kind == KindSchema {
		panic(fmt.Sprintf("schema: cannot add component of kind %s", kind))
	}
	if kind == KindAnnotation && !parent.Kind().Annotatable() {
		panic(fmt.Sprintf("schema: %s cannot own an annotation", parent.Kind()))
	}
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, node{
		kind:       kind,
		parent:     parent.id,
		annotation: InvalidNode,
		decl:       decl,
	})
	p := &d.nodes[parent.id]
	if kind == KindAnnotation {
		p.annotation = id
	} else {
		p.children = append(p.children, id)
	}
	return Node{doc: d, id: id}
}

// RegisterDefinitions registers every global definition of the document in
// its register under the target namespace.
func (d *Document) RegisterDefinitions() {
	var visit func(parent Node)
	visit = func(parent Node) {
		for i := range parent.NumChildren() {
			child := parent.Child(i)
			if child.Kind() == KindRedefine {
				visit(child)
				continue
			}
			if !child.IsGlobal() {
				continue
			}
			q := QName{Namespace: d.targetNamespace, Local: child.Name()}
			switch child.Kind() {
			case KindElement:
				d.register.RegisterElement(q, child)
			case KindAttribute:
				d.register.RegisterAttribute(q, child)
			case KindComplexType, KindSimpleType:
				d.register.RegisterType(q, child)
			case KindGroup:
				d.register.RegisterGroup(q, child)
			case KindAttributeGroup:
				d.register.RegisterAttributeGroup(q, child)
			}
		}
	}
	visit(d.Root())
}

func (d *Document) String() string {
	if name := d.Name(); name != "" {
		return name
	}
	return d.ID()
}
