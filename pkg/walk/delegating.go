package walk

import "github.com/panbanda/xsdscope/pkg/schema"

// Delegating forwards every call to Target. Embed it and override the
// handlers of interest to decorate another visitor.
type Delegating struct {
	Target Visitor
}

var _ Visitor = (*Delegating)(nil)

// NewDelegating returns a visitor forwarding to target.
func NewDelegating(target Visitor) *Delegating {
	return &Delegating{Target: target}
}

func (d *Delegating) VisitSchema(n schema.Node) bool { return d.Target.VisitSchema(n) }
func (d *Delegating) ExitSchema(n schema.Node)       { d.Target.ExitSchema(n) }

func (d *Delegating) VisitAnnotation(n schema.Node) bool { return d.Target.VisitAnnotation(n) }
func (d *Delegating) ExitAnnotation(n schema.Node)       { d.Target.ExitAnnotation(n) }

func (d *Delegating) VisitDocumentation(n schema.Node) bool { return d.Target.VisitDocumentation(n) }
func (d *Delegating) ExitDocumentation(n schema.Node)       { d.Target.ExitDocumentation(n) }

func (d *Delegating) VisitAppInfo(n schema.Node) bool { return d.Target.VisitAppInfo(n) }
func (d *Delegating) ExitAppInfo(n schema.Node)       { d.Target.ExitAppInfo(n) }

func (d *Delegating) VisitImport(n schema.Node) bool { return d.Target.VisitImport(n) }
func (d *Delegating) ExitImport(n schema.Node)       { d.Target.ExitImport(n) }

func (d *Delegating) VisitInclude(n schema.Node) bool { return d.Target.VisitInclude(n) }
func (d *Delegating) ExitInclude(n schema.Node)       { d.Target.ExitInclude(n) }

func (d *Delegating) VisitRedefine(n schema.Node) bool { return d.Target.VisitRedefine(n) }
func (d *Delegating) ExitRedefine(n schema.Node)       { d.Target.ExitRedefine(n) }

func (d *Delegating) VisitNotation(n schema.Node) bool { return d.Target.VisitNotation(n) }
func (d *Delegating) ExitNotation(n schema.Node)       { d.Target.ExitNotation(n) }

func (d *Delegating) VisitElement(n schema.Node) bool { return d.Target.VisitElement(n) }
func (d *Delegating) ExitElement(n schema.Node)       { d.Target.ExitElement(n) }

func (d *Delegating) VisitAttribute(n schema.Node) bool { return d.Target.VisitAttribute(n) }
func (d *Delegating) ExitAttribute(n schema.Node)       { d.Target.ExitAttribute(n) }

func (d *Delegating) VisitComplexType(n schema.Node) bool { return d.Target.VisitComplexType(n) }
func (d *Delegating) ExitComplexType(n schema.Node)       { d.Target.ExitComplexType(n) }

func (d *Delegating) VisitSimpleType(n schema.Node) bool { return d.Target.VisitSimpleType(n) }
func (d *Delegating) ExitSimpleType(n schema.Node)       { d.Target.ExitSimpleType(n) }

func (d *Delegating) VisitSimpleContent(n schema.Node) bool { return d.Target.VisitSimpleContent(n) }
func (d *Delegating) ExitSimpleContent(n schema.Node)       { d.Target.ExitSimpleContent(n) }

func (d *Delegating) VisitComplexContent(n schema.Node) bool { return d.Target.VisitComplexContent(n) }
func (d *Delegating) ExitComplexContent(n schema.Node)       { d.Target.ExitComplexContent(n) }

func (d *Delegating) VisitSequence(n schema.Node) bool { return d.Target.VisitSequence(n) }
func (d *Delegating) ExitSequence(n schema.Node)       { d.Target.ExitSequence(n) }

func (d *Delegating) VisitChoice(n schema.Node) bool { return d.Target.VisitChoice(n) }
func (d *Delegating) ExitChoice(n schema.Node)       { d.Target.ExitChoice(n) }

func (d *Delegating) VisitAll(n schema.Node) bool { return d.Target.VisitAll(n) }
func (d *Delegating) ExitAll(n schema.Node)       { d.Target.ExitAll(n) }

func (d *Delegating) VisitGroup(n schema.Node) bool { return d.Target.VisitGroup(n) }
func (d *Delegating) ExitGroup(n schema.Node)       { d.Target.ExitGroup(n) }

func (d *Delegating) VisitGroupRef(n schema.Node) bool { return d.Target.VisitGroupRef(n) }
func (d *Delegating) ExitGroupRef(n schema.Node)       { d.Target.ExitGroupRef(n) }

func (d *Delegating) VisitAttributeGroup(n schema.Node) bool { return d.Target.VisitAttributeGroup(n) }
func (d *Delegating) ExitAttributeGroup(n schema.Node)       { d.Target.ExitAttributeGroup(n) }

func (d *Delegating) VisitAttributeGroupRef(n schema.Node) bool {
	return d.Target.VisitAttributeGroupRef(n)
}
func (d *Delegating) ExitAttributeGroupRef(n schema.Node) { d.Target.ExitAttributeGroupRef(n) }

func (d *Delegating) VisitAny(n schema.Node) bool { return d.Target.VisitAny(n) }
func (d *Delegating) ExitAny(n schema.Node)       { d.Target.ExitAny(n) }

func (d *Delegating) VisitAnyAttribute(n schema.Node) bool { return d.Target.VisitAnyAttribute(n) }
func (d *Delegating) ExitAnyAttribute(n schema.Node)       { d.Target.ExitAnyAttribute(n) }

func (d *Delegating) VisitSimpleExtension(n schema.Node) bool {
	return d.Target.VisitSimpleExtension(n)
}
func (d *Delegating) ExitSimpleExtension(n schema.Node) { d.Target.ExitSimpleExtension(n) }

func (d *Delegating) VisitComplexExtension(n schema.Node) bool {
	return d.Target.VisitComplexExtension(n)
}
func (d *Delegating) ExitComplexExtension(n schema.Node) { d.Target.ExitComplexExtension(n) }

func (d *Delegating) VisitSimpleRestriction(n schema.Node) bool {
	return d.Target.VisitSimpleRestriction(n)
}
func (d *Delegating) ExitSimpleRestriction(n schema.Node) { d.Target.ExitSimpleRestriction(n) }

func (d *Delegating) VisitComplexRestriction(n schema.Node) bool {
	return d.Target.VisitComplexRestriction(n)
}
func (d *Delegating) ExitComplexRestriction(n schema.Node) { d.Target.ExitComplexRestriction(n) }

func (d *Delegating) VisitList(n schema.Node) bool { return d.Target.VisitList(n) }
func (d *Delegating) ExitList(n schema.Node)       { d.Target.ExitList(n) }

func (d *Delegating) VisitUnion(n schema.Node) bool { return d.Target.VisitUnion(n) }
func (d *Delegating) ExitUnion(n schema.Node)       { d.Target.ExitUnion(n) }

func (d *Delegating) VisitEnumeration(n schema.Node) bool { return d.Target.VisitEnumeration(n) }
func (d *Delegating) ExitEnumeration(n schema.Node)       { d.Target.ExitEnumeration(n) }

func (d *Delegating) VisitFractionDigits(n schema.Node) bool { return d.Target.VisitFractionDigits(n) }
func (d *Delegating) ExitFractionDigits(n schema.Node)       { d.Target.ExitFractionDigits(n) }

func (d *Delegating) VisitLength(n schema.Node) bool { return d.Target.VisitLength(n) }
func (d *Delegating) ExitLength(n schema.Node)       { d.Target.ExitLength(n) }

func (d *Delegating) VisitMaxExclusive(n schema.Node) bool { return d.Target.VisitMaxExclusive(n) }
func (d *Delegating) ExitMaxExclusive(n schema.Node)       { d.Target.ExitMaxExclusive(n) }

func (d *Delegating) VisitMaxInclusive(n schema.Node) bool { return d.Target.VisitMaxInclusive(n) }
func (d *Delegating) ExitMaxInclusive(n schema.Node)       { d.Target.ExitMaxInclusive(n) }

func (d *Delegating) VisitMaxLength(n schema.Node) bool { return d.Target.VisitMaxLength(n) }
func (d *Delegating) ExitMaxLength(n schema.Node)       { d.Target.ExitMaxLength(n) }

func (d *Delegating) VisitMinExclusive(n schema.Node) bool { return d.Target.VisitMinExclusive(n) }
func (d *Delegating) ExitMinExclusive(n schema.Node)       { d.Target.ExitMinExclusive(n) }

func (d *Delegating) VisitMinInclusive(n schema.Node) bool { return d.Target.VisitMinInclusive(n) }
func (d *Delegating) ExitMinInclusive(n schema.Node)       { d.Target.ExitMinInclusive(n) }

func (d *Delegating) VisitMinLength(n schema.Node) bool { return d.Target.VisitMinLength(n) }
func (d *Delegating) ExitMinLength(n schema.Node)       { d.Target.ExitMinLength(n) }

func (d *Delegating) VisitPattern(n schema.Node) bool { return d.Target.VisitPattern(n) }
func (d *Delegating) ExitPattern(n schema.Node)       { d.Target.ExitPattern(n) }

func (d *Delegating) VisitTotalDigits(n schema.Node) bool { return d.Target.VisitTotalDigits(n) }
func (d *Delegating) ExitTotalDigits(n schema.Node)       { d.Target.ExitTotalDigits(n) }

func (d *Delegating) VisitWhiteSpace(n schema.Node) bool { return d.Target.VisitWhiteSpace(n) }
func (d *Delegating) ExitWhiteSpace(n schema.Node)       { d.Target.ExitWhiteSpace(n) }

func (d *Delegating) VisitKey(n schema.Node) bool { return d.Target.VisitKey(n) }
func (d *Delegating) ExitKey(n schema.Node)       { d.Target.ExitKey(n) }

func (d *Delegating) VisitKeyRef(n schema.Node) bool { return d.Target.VisitKeyRef(n) }
func (d *Delegating) ExitKeyRef(n schema.Node)       { d.Target.ExitKeyRef(n) }

func (d *Delegating) VisitUnique(n schema.Node) bool { return d.Target.VisitUnique(n) }
func (d *Delegating) ExitUnique(n schema.Node)       { d.Target.ExitUnique(n) }

func (d *Delegating) VisitSelector(n schema.Node) bool { return d.Target.VisitSelector(n) }
func (d *Delegating) ExitSelector(n schema.Node)       { d.Target.ExitSelector(n) }

func (d *Delegating) VisitField(n schema.Node) bool { return d.Target.VisitField(n) }
func (d *Delegating) ExitField(n schema.Node)       { d.Target.ExitField(n) }

func (d *Delegating) VisitComponent(n schema.Node) bool { return d.Target.VisitComponent(n) }
func (d *Delegating) ExitComponent(n schema.Node)       { d.Target.ExitComponent(n) }

func (d *Delegating) VisitAnnotated(n schema.Node) bool { return d.Target.VisitAnnotated(n) }
func (d *Delegating) ExitAnnotated(n schema.Node)       { d.Target.ExitAnnotated(n) }

func (d *Delegating) VisitAnnotationItem(n schema.Node) bool { return d.Target.VisitAnnotationItem(n) }
func (d *Delegating) ExitAnnotationItem(n schema.Node)       { d.Target.ExitAnnotationItem(n) }

func (d *Delegating) VisitSchemaLocation(n schema.Node) bool { return d.Target.VisitSchemaLocation(n) }
func (d *Delegating) ExitSchemaLocation(n schema.Node)       { d.Target.ExitSchemaLocation(n) }

func (d *Delegating) VisitTypeDefinition(n schema.Node) bool { return d.Target.VisitTypeDefinition(n) }
func (d *Delegating) ExitTypeDefinition(n schema.Node)       { d.Target.ExitTypeDefinition(n) }

func (d *Delegating) VisitContent(n schema.Node) bool { return d.Target.VisitContent(n) }
func (d *Delegating) ExitContent(n schema.Node)       { d.Target.ExitContent(n) }

func (d *Delegating) VisitCompositor(n schema.Node) bool { return d.Target.VisitCompositor(n) }
func (d *Delegating) ExitCompositor(n schema.Node)       { d.Target.ExitCompositor(n) }

func (d *Delegating) VisitDerivation(n schema.Node) bool { return d.Target.VisitDerivation(n) }
func (d *Delegating) ExitDerivation(n schema.Node)       { d.Target.ExitDerivation(n) }

func (d *Delegating) VisitFacet(n schema.Node) bool { return d.Target.VisitFacet(n) }
func (d *Delegating) ExitFacet(n schema.Node)       { d.Target.ExitFacet(n) }

func (d *Delegating) VisitIdentityConstraint(n schema.Node) bool {
	return d.Target.VisitIdentityConstraint(n)
}
func (d *Delegating) ExitIdentityConstraint(n schema.Node) { d.Target.ExitIdentityConstraint(n) }

func (d *Delegating) VisitWildcard(n schema.Node) bool { return d.Target.VisitWildcard(n) }
func (d *Delegating) ExitWildcard(n schema.Node)       { d.Target.ExitWildcard(n) }
