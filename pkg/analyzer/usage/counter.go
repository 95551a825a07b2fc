package usage

import (
	"github.com/panbanda/xsdscope/pkg/schema"
	"github.com/panbanda/xsdscope/pkg/walk"
)

// counter counts the targets of reference-bearing components on exit and
// marks global definitions as expanded once their subtree is done.
type counter struct {
	walk.BaseVisitor
	a *Analyzer
}

func newCounter(a *Analyzer) *counter {
	c := &counter{a: a}
	c.Self = c
	return c
}

func (c *counter) register() *schema.Register {
	return c.a.tracker.CurrentRegister()
}

func (c *counter) follows(kind ReferenceKind) bool {
	return c.a.refs.Has(kind)
}

func (c *counter) ExitComponent(n schema.Node) {
	if n.IsGlobal() {
		c.a.expanded.Add(n)
	}
	c.BaseVisitor.ExitComponent(n)
}

func (c *counter) ExitElement(n schema.Node) {
	switch {
	case n.IsReference():
		if c.follows(RefLocal) {
			def, ok := c.register().FindElement(n.Ref())
			c.a.reference(def, ok, n.Singleton())
		}
	case !n.TypeRef().IsZero():
		if c.follows(RefType) {
			def, ok := c.register().FindType(n.TypeRef())
			c.a.reference(def, ok, n.Singleton())
		}
	}
	c.BaseVisitor.ExitElement(n)
}

func (c *counter) ExitAttribute(n schema.Node) {
	switch {
	case n.IsReference():
		if c.follows(RefLocal) {
			def, ok := c.register().FindAttribute(n.Ref())
			c.a.reference(def, ok, n.Singleton())
		}
	case !n.TypeRef().IsZero():
		if c.follows(RefType) {
			def, ok := c.register().FindType(n.TypeRef())
			c.a.reference(def, ok, n.Singleton())
		}
	}
	c.BaseVisitor.ExitAttribute(n)
}

func (c *counter) ExitGroupRef(n schema.Node) {
	if c.follows(RefLocal) {
		def, ok := c.register().FindGroup(n.Ref())
		c.a.reference(def, ok, n.Singleton())
	}
	c.BaseVisitor.ExitGroupRef(n)
}

func (c *counter) ExitAttributeGroupRef(n schema.Node) {
	if c.follows(RefLocal) {
		def, ok := c.register().FindAttributeGroup(n.Ref())
		c.a.reference(def, ok, true)
	}
	c.BaseVisitor.ExitAttributeGroupRef(n)
}

func (c *counter) base(n schema.Node) {
	if c.follows(RefBase) && !n.Base().IsZero() {
		def, ok := c.register().FindType(n.Base())
		c.a.reference(def, ok, true)
	}
}

func (c *counter) ExitSimpleExtension(n schema.Node) {
	c.base(n)
	c.BaseVisitor.ExitSimpleExtension(n)
}

func (c *counter) ExitComplexExtension(n schema.Node) {
	c.base(n)
	c.BaseVisitor.ExitComplexExtension(n)
}

func (c *counter) ExitSimpleRestriction(n schema.Node) {
	c.base(n)
	c.BaseVisitor.ExitSimpleRestriction(n)
}

func (c *counter) ExitComplexRestriction(n schema.Node) {
	c.base(n)
	c.BaseVisitor.ExitComplexRestriction(n)
}

func (c *counter) ExitList(n schema.Node) {
	if c.follows(RefItem) && !n.ItemType().IsZero() {
		def, ok := c.register().FindType(n.ItemType())
		c.a.reference(def, ok, true)
	}
	c.BaseVisitor.ExitList(n)
}

func (c *counter) ExitUnion(n schema.Node) {
	if c.follows(RefMember) {
		for _, member := range n.MemberTypes() {
			def, ok := c.register().FindType(member)
			c.a.reference(def, ok, true)
		}
	}
	c.BaseVisitor.ExitUnion(n)
}
