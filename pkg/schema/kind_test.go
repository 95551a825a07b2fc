package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNames(t *testing.T) {
	for k := KindSchema; k < kindCount; k++ {
		name := k.String()
		assert.NotEqual(t, "invalid", name, "kind %d has no name", k)
		parsed, ok := ParseKind(name)
		assert.True(t, ok, name)
		assert.Equal(t, k, parsed, name)
	}
	assert.Equal(t, "invalid", Kind(200).String())
	_, ok := ParseKind("bogus")
	assert.False(t, ok)
}

func TestKindPredicates(t *testing.T) {
	assert.False(t, KindInvalid.Valid())
	assert.True(t, KindField.Valid())
	assert.False(t, kindCount.Valid())

	assert.True(t, KindEnumeration.IsFacet())
	assert.True(t, KindWhiteSpace.IsFacet())
	assert.False(t, KindUnion.IsFacet())

	assert.True(t, KindChoice.IsCompositor())
	assert.False(t, KindGroup.IsCompositor())

	assert.True(t, KindRedefine.IsSchemaLocation())
	assert.False(t, KindNotation.IsSchemaLocation())

	assert.True(t, KindAttributeGroup.IsDefinition())
	assert.False(t, KindSequence.IsDefinition())

	assert.True(t, KindKeyRef.IsIdentityConstraint())
	assert.True(t, KindAny.HasArity())
	assert.False(t, KindComplexType.HasArity())

	assert.False(t, KindDocumentation.Annotatable())
	assert.True(t, KindSchema.Annotatable())
}

func TestQName(t *testing.T) {
	assert.Equal(t, "{urn:a}b", NewQName("urn:a", "b").String())
	assert.Equal(t, "b", NewQName("", "b").String())
	assert.True(t, QName{}.IsZero())
	assert.Equal(t, XSDNamespace, XSD("string").Namespace)

	assert.Negative(t, CompareQNames(NewQName("urn:a", "z"), NewQName("urn:b", "a")))
	assert.Negative(t, CompareQNames(NewQName("urn:a", "a"), NewQName("urn:a", "b")))
	assert.Zero(t, CompareQNames(NewQName("urn:a", "a"), NewQName("urn:a", "a")))
}
