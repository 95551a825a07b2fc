package walk

import "github.com/panbanda/xsdscope/pkg/schema"

// Visitor receives one Visit and one Exit call per component walked. Visit
// reports whether the walker should descend into the component; Exit is
// called after the subtree, whatever Visit returned.
//
// Concrete handlers are selected by Dispatch. Category handlers are never
// called by the walker directly; BaseVisitor routes concrete handlers to
// them so that overriding a category intercepts every kind below it.
type Visitor interface {
	// Document structure and annotations.
	VisitSchema(n schema.Node) bool
	ExitSchema(n schema.Node)
	VisitAnnotation(n schema.Node) bool
	ExitAnnotation(n schema.Node)
	VisitDocumentation(n schema.Node) bool
	ExitDocumentation(n schema.Node)
	VisitAppInfo(n schema.Node) bool
	ExitAppInfo(n schema.Node)
	VisitImport(n schema.Node) bool
	ExitImport(n schema.Node)
	VisitInclude(n schema.Node) bool
	ExitInclude(n schema.Node)
	VisitRedefine(n schema.Node) bool
	ExitRedefine(n schema.Node)
	VisitNotation(n schema.Node) bool
	ExitNotation(n schema.Node)

	// Declarations and type definitions.
	VisitElement(n schema.Node) bool
	ExitElement(n schema.Node)
	VisitAttribute(n schema.Node) bool
	ExitAttribute(n schema.Node)
	VisitComplexType(n schema.Node) bool
	ExitComplexType(n schema.Node)
	VisitSimpleType(n schema.Node) bool
	ExitSimpleType(n schema.Node)
	VisitSimpleContent(n schema.Node) bool
	ExitSimpleContent(n schema.Node)
	VisitComplexContent(n schema.Node) bool
	ExitComplexContent(n schema.Node)

	// Model groups and wildcards. Group and attribute-group references are
	// dispatched separately from their definitions.
	VisitSequence(n schema.Node) bool
	ExitSequence(n schema.Node)
	VisitChoice(n schema.Node) bool
	ExitChoice(n schema.Node)
	VisitAll(n schema.Node) bool
	ExitAll(n schema.Node)
	VisitGroup(n schema.Node) bool
	ExitGroup(n schema.Node)
	VisitGroupRef(n schema.Node) bool
	ExitGroupRef(n schema.Node)
	VisitAttributeGroup(n schema.Node) bool
	ExitAttributeGroup(n schema.Node)
	VisitAttributeGroupRef(n schema.Node) bool
	ExitAttributeGroupRef(n schema.Node)
	VisitAny(n schema.Node) bool
	ExitAny(n schema.Node)
	VisitAnyAttribute(n schema.Node) bool
	ExitAnyAttribute(n schema.Node)

	// Derivations. Extensions and restrictions are split by the content they
	// derive: simple for simpleContent and simpleType, complex otherwise.
	VisitSimpleExtension(n schema.Node) bool
	ExitSimpleExtension(n schema.Node)
	VisitComplexExtension(n schema.Node) bool
	ExitComplexExtension(n schema.Node)
	VisitSimpleRestriction(n schema.Node) bool
	ExitSimpleRestriction(n schema.Node)
	VisitComplexRestriction(n schema.Node) bool
	ExitComplexRestriction(n schema.Node)
	VisitList(n schema.Node) bool
	ExitList(n schema.Node)
	VisitUnion(n schema.Node) bool
	ExitUnion(n schema.Node)

	// Constraining facets.
	VisitEnumeration(n schema.Node) bool
	ExitEnumeration(n schema.Node)
	VisitFractionDigits(n schema.Node) bool
	ExitFractionDigits(n schema.Node)
	VisitLength(n schema.Node) bool
	ExitLength(n schema.Node)
	VisitMaxExclusive(n schema.Node) bool
	ExitMaxExclusive(n schema.Node)
	VisitMaxInclusive(n schema.Node) bool
	ExitMaxInclusive(n schema.Node)
	VisitMaxLength(n schema.Node) bool
	ExitMaxLength(n schema.Node)
	VisitMinExclusive(n schema.Node) bool
	ExitMinExclusive(n schema.Node)
	VisitMinInclusive(n schema.Node) bool
	ExitMinInclusive(n schema.Node)
	VisitMinLength(n schema.Node) bool
	ExitMinLength(n schema.Node)
	VisitPattern(n schema.Node) bool
	ExitPattern(n schema.Node)
	VisitTotalDigits(n schema.Node) bool
	ExitTotalDigits(n schema.Node)
	VisitWhiteSpace(n schema.Node) bool
	ExitWhiteSpace(n schema.Node)

	// Identity constraints.
	VisitKey(n schema.Node) bool
	ExitKey(n schema.Node)
	VisitKeyRef(n schema.Node) bool
	ExitKeyRef(n schema.Node)
	VisitUnique(n schema.Node) bool
	ExitUnique(n schema.Node)
	VisitSelector(n schema.Node) bool
	ExitSelector(n schema.Node)
	VisitField(n schema.Node) bool
	ExitField(n schema.Node)

	// Categories.
	VisitComponent(n schema.Node) bool
	ExitComponent(n schema.Node)
	VisitAnnotated(n schema.Node) bool
	ExitAnnotated(n schema.Node)
	VisitAnnotationItem(n schema.Node) bool
	ExitAnnotationItem(n schema.Node)
	VisitSchemaLocation(n schema.Node) bool
	ExitSchemaLocation(n schema.Node)
	VisitTypeDefinition(n schema.Node) bool
	ExitTypeDefinition(n schema.Node)
	VisitContent(n schema.Node) bool
	ExitContent(n schema.Node)
	VisitCompositor(n schema.Node) bool
	ExitCompositor(n schema.Node)
	VisitDerivation(n schema.Node) bool
	ExitDerivation(n schema.Node)
	VisitFacet(n schema.Node) bool
	ExitFacet(n schema.Node)
	VisitIdentityConstraint(n schema.Node) bool
	ExitIdentityConstraint(n schema.Node)
	VisitWildcard(n schema.Node) bool
	ExitWildcard(n schema.Node)
}
