package schema

// Kind discriminates schema components.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSchema
	KindAnnotation
	KindDocumentation
	KindAppInfo
	KindImport
	KindInclude
	KindRedefine
	KindNotation
	KindElement
	KindAttribute
	KindComplexType
	KindSimpleType
	KindSimpleContent
	KindComplexContent
	KindSequence
	KindChoice
	KindAll
	KindGroup
	KindAttributeGroup
	KindAny
	KindAnyAttribute
	KindExtension
	KindRestriction
	KindList
	KindUnion
	KindEnumeration
	KindFractionDigits
	KindLength
	KindMaxExclusive
	KindMaxInclusive
	KindMaxLength
	KindMinExclusive
	KindMinInclusive
	KindMinLength
	KindPattern
	KindTotalDigits
	KindWhiteSpace
	KindKey
	KindKeyRef
	KindUnique
	KindSelector
	KindField

	kindCount
)

// kindNames holds the XSD element local name of each kind.
var kindNames = [kindCount]string{
	KindInvalid:        "invalid",
	KindSchema:         "schema",
	KindAnnotation:     "annotation",
	KindDocumentation:  "documentation",
	KindAppInfo:        "appinfo",
	KindImport:         "import",
	KindInclude:        "include",
	KindRedefine:       "redefine",
	KindNotation:       "notation",
	KindElement:        "element",
	KindAttribute:      "attribute",
	KindComplexType:    "complexType",
	KindSimpleType:     "simpleType",
	KindSimpleContent:  "simpleContent",
	KindComplexContent: "complexContent",
	KindSequence:       "sequence",
	KindChoice:         "choice",
	KindAll:            "all",
	KindGroup:          "group",
	KindAttributeGroup: "attributeGroup",
	KindAny:            "any",
	KindAnyAttribute:   "anyAttribute",
	KindExtension:      "extension",
	KindRestriction:    "restriction",
	KindList:           "list",
	KindUnion:          "union",
	KindEnumeration:    "enumeration",
	KindFractionDigits: "fractionDigits",
	KindLength:         "length",
	KindMaxExclusive:   "maxExclusive",
	KindMaxInclusive:   "maxInclusive",
	KindMaxLength:      "maxLength",
	KindMinExclusive:   "minExclusive",
	KindMinInclusive:   "minInclusive",
	KindMinLength:      "minLength",
	KindPattern:        "pattern",
	KindTotalDigits:    "totalDigits",
	KindWhiteSpace:     "whiteSpace",
	KindKey:            "key",
	KindKeyRef:         "keyref",
	KindUnique:         "unique",
	KindSelector:       "selector",
	KindField:          "field",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindSchema; k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// String returns the XSD element name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "invalid"
	}
	return kindNames[k]
}

// ParseKind maps an XSD element local name to its kind.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// Valid reports whether k is a known component kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// IsFacet reports whether k is a constraining facet.
func (k Kind) IsFacet() bool {
	return k >= KindEnumeration && k <= KindWhiteSpace
}

// IsCompositor reports whether k is sequence, choice or all.
func (k Kind) IsCompositor() bool {
	return k == KindSequence || k == KindChoice || k == KindAll
}

// IsSchemaLocation reports whether k refers to another schema document.
func (k Kind) IsSchemaLocation() bool {
	return k == KindImport || k == KindInclude || k == KindRedefine
}

// IsDefinition reports whether components of kind k can be global definitions.
func (k Kind) IsDefinition() bool {
	switch k {
	case KindElement, KindAttribute, KindComplexType, KindSimpleType, KindGroup, KindAttributeGroup:
		return true
	}
	return false
}

// IsIdentityConstraint reports whether k is key, keyref or unique.
func (k Kind) IsIdentityConstraint() bool {
	return k == KindKey || k == KindKeyRef || k == KindUnique
}

// HasArity reports whether components of kind k carry occurrence bounds.
func (k Kind) HasArity() bool {
	switch k {
	case KindElement, KindAttribute, KindSequence, KindChoice, KindAll, KindGroup, KindAny:
		return true
	}
	return false
}

// Annotatable reports whether components of kind k may own an annotation.
func (k Kind) Annotatable() bool {
	switch k {
	case KindInvalid, KindAnnotation, KindDocumentation, KindAppInfo:
		return false
	}
	return k.Valid()
}
