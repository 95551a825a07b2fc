package walk

import (
	"fmt"

	"github.com/panbanda/xsdscope/pkg/schema"
)

// Dispatch calls the Visit handler of v selected by the kind of n and
// returns its result. It panics on a kind the visitor has no handler for.
func Dispatch(n schema.Node, v Visitor) bool {
	switch n.Kind() {
	case schema.KindSchema:
		return v.VisitSchema(n)
	case schema.KindAnnotation:
		return v.VisitAnnotation(n)
	case schema.KindDocumentation:
		return v.VisitDocumentation(n)
	case schema.KindAppInfo:
		return v.VisitAppInfo(n)
	case schema.KindImport:
		return v.VisitImport(n)
	case schema.KindInclude:
		return v.VisitInclude(n)
	case schema.KindRedefine:
		return v.VisitRedefine(n)
	case schema.KindNotation:
		return v.VisitNotation(n)
	case schema.KindElement:
		return v.VisitElement(n)
	case schema.KindAttribute:
		return v.VisitAttribute(n)
	case schema.KindComplexType:
		return v.VisitComplexType(n)
	case schema.KindSimpleType:
		return v.VisitSimpleType(n)
	case schema.KindSimpleContent:
		return v.VisitSimpleContent(n)
	case schema.KindComplexContent:
		return v.VisitComplexContent(n)
	case schema.KindSequence:
		return v.VisitSequence(n)
	case schema.KindChoice:
		return v.VisitChoice(n)
	case schema.KindAll:
		return v.VisitAll(n)
	case schema.KindGroup:
		if n.IsReference() {
			return v.VisitGroupRef(n)
		}
		return v.VisitGroup(n)
	case schema.KindAttributeGroup:
		if n.IsReference() {
			return v.VisitAttributeGroupRef(n)
		}
		return v.VisitAttributeGroup(n)
	case schema.KindAny:
		return v.VisitAny(n)
	case schema.KindAnyAttribute:
		return v.VisitAnyAttribute(n)
	case schema.KindExtension:
		if simpleDerivation(n) {
			return v.VisitSimpleExtension(n)
		}
		return v.VisitComplexExtension(n)
	case schema.KindRestriction:
		if simpleDerivation(n) {
			return v.VisitSimpleRestriction(n)
		}
		return v.VisitComplexRestriction(n)
	case schema.KindList:
		return v.VisitList(n)
	case schema.KindUnion:
		return v.VisitUnion(n)
	case schema.KindEnumeration:
		return v.VisitEnumeration(n)
	case schema.KindFractionDigits:
		return v.VisitFractionDigits(n)
	case schema.KindLength:
		return v.VisitLength(n)
	case schema.KindMaxExclusive:
		return v.VisitMaxExclusive(n)
	case schema.KindMaxInclusive:
		return v.VisitMaxInclusive(n)
	case schema.KindMaxLength:
		return v.VisitMaxLength(n)
	case schema.KindMinExclusive:
		return v.VisitMinExclusive(n)
	case schema.KindMinInclusive:
		return v.VisitMinInclusive(n)
	case schema.KindMinLength:
		return v.VisitMinLength(n)
	case schema.KindPattern:
		return v.VisitPattern(n)
	case schema.KindTotalDigits:
		return v.VisitTotalDigits(n)
	case schema.KindWhiteSpace:
		return v.VisitWhiteSpace(n)
	case schema.KindKey:
		return v.VisitKey(n)
	case schema.KindKeyRef:
		return v.VisitKeyRef(n)
	case schema.KindUnique:
		return v.VisitUnique(n)
	case schema.KindSelector:
		return v.VisitSelector(n)
	case schema.KindField:
		return v.VisitField(n)
	}
	panic(fmt.Sprintf("walk: no visit handler for kind %s", n.Kind()))
}

// DispatchExit calls the Exit handler of v selected by the kind of n.
func DispatchExit(n schema.Node, v Visitor) {
	switch n.Kind() {
	case schema.KindSchema:
		v.ExitSchema(n)
	case schema.KindAnnotation:
		v.ExitAnnotation(n)
	case schema.KindDocumentation:
		v.ExitDocumentation(n)
	case schema.KindAppInfo:
		v.ExitAppInfo(n)
	case schema.KindImport:
		v.ExitImport(n)
	case schema.KindInclude:
		v.ExitInclude(n)
	case schema.KindRedefine:
		v.ExitRedefine(n)
	case schema.KindNotation:
		v.ExitNotation(n)
	case schema.KindElement:
		v.ExitElement(n)
	case schema.KindAttribute:
		v.ExitAttribute(n)
	case schema.KindComplexType:
		v.ExitComplexType(n)
	case schema.KindSimpleType:
		v.ExitSimpleType(n)
	case schema.KindSimpleContent:
		v.ExitSimpleContent(n)
	case schema.KindComplexContent:
		v.ExitComplexContent(n)
	case schema.KindSequence:
		v.ExitSequence(n)
	case schema.KindChoice:
		v.ExitChoice(n)
	case schema.KindAll:
		v.ExitAll(n)
	case schema.KindGroup:
		if n.IsReference() {
			v.ExitGroupRef(n)
			return
		}
		v.ExitGroup(n)
	case schema.KindAttributeGroup:
		if n.IsReference() {
			v.ExitAttributeGroupRef(n)
			return
		}
		v.ExitAttributeGroup(n)
	case schema.KindAny:
		v.ExitAny(n)
	case schema.KindAnyAttribute:
		v.ExitAnyAttribute(n)
	case schema.KindExtension:
		if simpleDerivation(n) {
			v.ExitSimpleExtension(n)
			return
		}
		v.ExitComplexExtension(n)
	case schema.KindRestriction:
		if simpleDerivation(n) {
			v.ExitSimpleRestriction(n)
			return
		}
		v.ExitComplexRestriction(n)
	case schema.KindList:
		v.ExitList(n)
	case schema.KindUnion:
		v.ExitUnion(n)
	case schema.KindEnumeration:
		v.ExitEnumeration(n)
	case schema.KindFractionDigits:
		v.ExitFractionDigits(n)
	case schema.KindLength:
		v.ExitLength(n)
	case schema.KindMaxExclusive:
		v.ExitMaxExclusive(n)
	case schema.KindMaxInclusive:
		v.ExitMaxInclusive(n)
	case schema.KindMaxLength:
		v.ExitMaxLength(n)
	case schema.KindMinExclusive:
		v.ExitMinExclusive(n)
	case schema.KindMinInclusive:
		v.ExitMinInclusive(n)
	case schema.KindMinLength:
		v.ExitMinLength(n)
	case schema.KindPattern:
		v.ExitPattern(n)
	case schema.KindTotalDigits:
		v.ExitTotalDigits(n)
	case schema.KindWhiteSpace:
		v.ExitWhiteSpace(n)
	case schema.KindKey:
		v.ExitKey(n)
	case schema.KindKeyRef:
		v.ExitKeyRef(n)
	case schema.KindUnique:
		v.ExitUnique(n)
	case schema.KindSelector:
		v.ExitSelector(n)
	case schema.KindField:
		v.ExitField(n)
	default:
		panic(fmt.Sprintf("walk: no exit handler for kind %s", n.Kind()))
	}
}

// simpleDerivation reports whether an extension or restriction derives a
// simple type, either inside simpleContent or directly inside simpleType.
func simpleDerivation(n schema.Node) bool {
	switch n.Parent().Kind() {
	case schema.KindSimpleContent, schema.KindSimpleType:
		return true
	}
	return false
}
