package walk

import "github.com/panbanda/xsdscope/pkg/schema"

// BaseVisitor implements Visitor by routing every concrete handler to its
// category, and every category to its parent category, ending at
// VisitComponent which descends everywhere.
//
// Routing goes through Self so that a type embedding BaseVisitor and
// overriding a handler sees calls made from lower levels:
//
//	type counter struct {
//		walk.BaseVisitor
//		n int
//	}
//
//	func (c *counter) VisitFacet(n schema.Node) bool { c.n++; return true }
//
//	c := &counter{}
//	c.Self = c
//
// With Self unset the BaseVisitor routes to its own handlers only.
type BaseVisitor struct {
	Self Visitor
}

var _ Visitor = (*BaseVisitor)(nil)

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

// VisitComponent descends into every component.
func (b *BaseVisitor) VisitComponent(schema.Node) bool { return true }

// ExitComponent does nothing.
func (b *BaseVisitor) ExitComponent(schema.Node) {}

func (b *BaseVisitor) VisitAnnotated(n schema.Node) bool { return b.self().VisitComponent(n) }
func (b *BaseVisitor) ExitAnnotated(n schema.Node)       { b.self().ExitComponent(n) }

func (b *BaseVisitor) VisitAnnotationItem(n schema.Node) bool { return b.self().VisitComponent(n) }
func (b *BaseVisitor) ExitAnnotationItem(n schema.Node)       { b.self().ExitComponent(n) }

func (b *BaseVisitor) VisitSchemaLocation(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitSchemaLocation(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitTypeDefinition(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitTypeDefinition(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitContent(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitContent(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitCompositor(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitCompositor(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitDerivation(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitDerivation(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitFacet(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitFacet(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitIdentityConstraint(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitIdentityConstraint(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitWildcard(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitWildcard(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitSchema(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitSchema(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitAnnotation(n schema.Node) bool { return b.self().VisitComponent(n) }
func (b *BaseVisitor) ExitAnnotation(n schema.Node)       { b.self().ExitComponent(n) }

func (b *BaseVisitor) VisitDocumentation(n schema.Node) bool { return b.self().VisitAnnotationItem(n) }
func (b *BaseVisitor) ExitDocumentation(n schema.Node)       { b.self().ExitAnnotationItem(n) }

func (b *BaseVisitor) VisitAppInfo(n schema.Node) bool { return b.self().VisitAnnotationItem(n) }
func (b *BaseVisitor) ExitAppInfo(n schema.Node)       { b.self().ExitAnnotationItem(n) }

func (b *BaseVisitor) VisitImport(n schema.Node) bool { return b.self().VisitSchemaLocation(n) }
func (b *BaseVisitor) ExitImport(n schema.Node)       { b.self().ExitSchemaLocation(n) }

func (b *BaseVisitor) VisitInclude(n schema.Node) bool { return b.self().VisitSchemaLocation(n) }
func (b *BaseVisitor) ExitInclude(n schema.Node)       { b.self().ExitSchemaLocation(n) }

func (b *BaseVisitor) VisitRedefine(n schema.Node) bool { return b.self().VisitSchemaLocation(n) }
func (b *BaseVisitor) ExitRedefine(n schema.Node)       { b.self().ExitSchemaLocation(n) }

func (b *BaseVisitor) VisitNotation(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitNotation(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitElement(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitElement(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitAttribute(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitAttribute(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitComplexType(n schema.Node) bool { return b.self().VisitTypeDefinition(n) }
func (b *BaseVisitor) ExitComplexType(n schema.Node)       { b.self().ExitTypeDefinition(n) }

func (b *BaseVisitor) VisitSimpleType(n schema.Node) bool { return b.self().VisitTypeDefinition(n) }
func (b *BaseVisitor) ExitSimpleType(n schema.Node)       { b.self().ExitTypeDefinition(n) }

func (b *BaseVisitor) VisitSimpleContent(n schema.Node) bool { return b.self().VisitContent(n) }
func (b *BaseVisitor) ExitSimpleContent(n schema.Node)       { b.self().ExitContent(n) }

func (b *BaseVisitor) VisitComplexContent(n schema.Node) bool { return b.self().VisitContent(n) }
func (b *BaseVisitor) ExitComplexContent(n schema.Node)       { b.self().ExitContent(n) }

func (b *BaseVisitor) VisitSequence(n schema.Node) bool { return b.self().VisitCompositor(n) }
func (b *BaseVisitor) ExitSequence(n schema.Node)       { b.self().ExitCompositor(n) }

func (b *BaseVisitor) VisitChoice(n schema.Node) bool { return b.self().VisitCompositor(n) }
func (b *BaseVisitor) ExitChoice(n schema.Node)       { b.self().ExitCompositor(n) }

func (b *BaseVisitor) VisitAll(n schema.Node) bool { return b.self().VisitCompositor(n) }
func (b *BaseVisitor) ExitAll(n schema.Node)       { b.self().ExitCompositor(n) }

func (b *BaseVisitor) VisitGroup(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitGroup(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitGroupRef(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitGroupRef(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitAttributeGroup(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitAttributeGroup(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitAttributeGroupRef(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitAttributeGroupRef(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitAny(n schema.Node) bool { return b.self().VisitWildcard(n) }
func (b *BaseVisitor) ExitAny(n schema.Node)       { b.self().ExitWildcard(n) }

func (b *BaseVisitor) VisitAnyAttribute(n schema.Node) bool { return b.self().VisitWildcard(n) }
func (b *BaseVisitor) ExitAnyAttribute(n schema.Node)       { b.self().ExitWildcard(n) }

func (b *BaseVisitor) VisitSimpleExtension(n schema.Node) bool { return b.self().VisitDerivation(n) }
func (b *BaseVisitor) ExitSimpleExtension(n schema.Node)       { b.self().ExitDerivation(n) }

func (b *BaseVisitor) VisitComplexExtension(n schema.Node) bool { return b.self().VisitDerivation(n) }
func (b *BaseVisitor) ExitComplexExtension(n schema.Node)       { b.self().ExitDerivation(n) }

func (b *BaseVisitor) VisitSimpleRestriction(n schema.Node) bool { return b.self().VisitDerivation(n) }
func (b *BaseVisitor) ExitSimpleRestriction(n schema.Node)       { b.self().ExitDerivation(n) }

func (b *BaseVisitor) VisitComplexRestriction(n schema.Node) bool { return b.self().VisitDerivation(n) }
func (b *BaseVisitor) ExitComplexRestriction(n schema.Node)       { b.self().ExitDerivation(n) }

func (b *BaseVisitor) VisitList(n schema.Node) bool { return b.self().VisitDerivation(n) }
func (b *BaseVisitor) ExitList(n schema.Node)       { b.self().ExitDerivation(n) }

func (b *BaseVisitor) VisitUnion(n schema.Node) bool { return b.self().VisitDerivation(n) }
func (b *BaseVisitor) ExitUnion(n schema.Node)       { b.self().ExitDerivation(n) }

func (b *BaseVisitor) VisitEnumeration(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitEnumeration(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitFractionDigits(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitFractionDigits(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitLength(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitLength(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitMaxExclusive(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitMaxExclusive(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitMaxInclusive(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitMaxInclusive(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitMaxLength(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitMaxLength(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitMinExclusive(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitMinExclusive(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitMinInclusive(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitMinInclusive(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitMinLength(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitMinLength(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitPattern(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitPattern(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitTotalDigits(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitTotalDigits(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitWhiteSpace(n schema.Node) bool { return b.self().VisitFacet(n) }
func (b *BaseVisitor) ExitWhiteSpace(n schema.Node)       { b.self().ExitFacet(n) }

func (b *BaseVisitor) VisitKey(n schema.Node) bool { return b.self().VisitIdentityConstraint(n) }
func (b *BaseVisitor) ExitKey(n schema.Node)       { b.self().ExitIdentityConstraint(n) }

func (b *BaseVisitor) VisitKeyRef(n schema.Node) bool { return b.self().VisitIdentityConstraint(n) }
func (b *BaseVisitor) ExitKeyRef(n schema.Node)       { b.self().ExitIdentityConstraint(n) }

func (b *BaseVisitor) VisitUnique(n schema.Node) bool { return b.self().VisitIdentityConstraint(n) }
func (b *BaseVisitor) ExitUnique(n schema.Node)       { b.self().ExitIdentityConstraint(n) }

func (b *BaseVisitor) VisitSelector(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitSelector(n schema.Node)       { b.self().ExitAnnotated(n) }

func (b *BaseVisitor) VisitField(n schema.Node) bool { return b.self().VisitAnnotated(n) }
func (b *BaseVisitor) ExitField(n schema.Node)       { b.self().ExitAnnotated(n) }
