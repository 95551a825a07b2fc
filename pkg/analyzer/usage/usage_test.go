package usage

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panbanda/xsdscope/pkg/config"
	"github.com/panbanda/xsdscope/pkg/resolver"
	"github.com/panbanda/xsdscope/pkg/schema"
	"github.com/panbanda/xsdscope/pkg/source"
)

const tns = "urn:test"

func q(local string) schema.QName { return schema.NewQName(tns, local) }

// closureDoc holds the definitions of the closure scenario.
type closureDoc struct {
	doc                                   *schema.Document
	simple1Type, simple1Elem, simple3     schema.Node
	rating, mixedUnion, simple2, localRef schema.Node
}

func newClosureDoc() *closureDoc {
	d := &closureDoc{doc: schema.NewDocument(nil, tns)}
	doc, root := d.doc, d.doc.Root()

	d.simple1Type = doc.Add(root, schema.KindComplexType, schema.Decl{Name: "simple1"})
	doc.Add(d.simple1Type, schema.KindAttribute, schema.Decl{Name: "low", Type: q("rating")})
	doc.Add(d.simple1Type, schema.KindAttribute, schema.Decl{Name: "high", Type: q("rating")})

	d.simple1Elem = doc.Add(root, schema.KindElement, schema.Decl{Name: "simple1", Type: q("simple1")})

	d.simple3 = doc.Add(root, schema.KindComplexType, schema.Decl{Name: "simple3"})
	seq := doc.Add(d.simple3, schema.KindSequence, schema.Decl{})
	d.localRef = doc.Add(seq, schema.KindElement, schema.Decl{Ref: q("simple1")})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "mixed", Type: q("mixedUnion")})

	d.rating = doc.Add(root, schema.KindSimpleType, schema.Decl{Name: "rating"})
	doc.Add(d.rating, schema.KindRestriction, schema.Decl{Base: schema.XSD("int")})

	d.mixedUnion = doc.Add(root, schema.KindSimpleType, schema.Decl{Name: "mixedUnion"})
	doc.Add(d.mixedUnion, schema.KindUnion, schema.Decl{
		MemberTypes: []schema.QName{q("rating"), schema.XSD("string")},
	})

	d.simple2 = doc.Add(root, schema.KindSimpleType, schema.Decl{Name: "simple2"})
	doc.Add(d.simple2, schema.KindRestriction, schema.Decl{Base: schema.XSD("string")})

	doc.RegisterDefinitions()
	return d
}

func TestClosureOverWholeDocument(t *testing.T) {
	d := newClosureDoc()
	a := New()
	require.NoError(t, a.CountDocument(d.doc))

	assert.Equal(t, 1, a.Count(d.simple1Type))
	assert.Equal(t, 1, a.Count(d.simple1Elem))
	assert.Equal(t, 3, a.Count(d.rating))
	assert.Equal(t, 1, a.Count(d.mixedUnion))
	assert.Equal(t, 0, a.Count(d.simple2))
	assert.Equal(t, 0, a.Count(d.simple3), "definitions are not counted for being declared")

	// Attributes default to optional use.
	assert.True(t, a.IsNonSingleton(d.rating))
	assert.False(t, a.IsNonSingleton(d.simple1Elem))
	assert.False(t, a.IsNonSingleton(d.mixedUnion))
	assert.Equal(t, []schema.Node{d.rating}, a.NonSingletons())

	r := a.Result()
	assert.Equal(t, 4, r.Definitions)
	assert.Equal(t, 6, r.References)
	assert.Equal(t, 1, r.NonSingletons)
	u, ok := r.Lookup(d.rating)
	require.True(t, ok)
	assert.Equal(t, Usage{Definition: d.rating, Count: 3, NonSingleton: true}, u)
	_, ok = r.Lookup(d.simple2)
	assert.False(t, ok)
}

func TestClosureFromDefinition(t *testing.T) {
	d := newClosureDoc()
	a := New()
	require.NoError(t, a.CountDefinitions(d.simple3))

	assert.Equal(t, []schema.Node{d.simple3, d.simple1Elem, d.mixedUnion, d.simple1Type, d.rating}, a.Counted())
	assert.Equal(t, 1, a.Count(d.simple3))
	assert.Equal(t, 1, a.Count(d.simple1Type))
	assert.Equal(t, 3, a.Count(d.rating))
	assert.Equal(t, 0, a.Count(d.simple2))

	// Counted definitions are not walked again.
	require.NoError(t, a.CountDefinitions(d.simple3))
	assert.Equal(t, 2, a.Count(d.simple3))
	assert.Equal(t, 1, a.Count(d.simple1Elem))
	assert.Equal(t, 3, a.Count(d.rating))
}

func TestRepeatedDocumentCountIsStable(t *testing.T) {
	d := newClosureDoc()
	a := New()
	require.NoError(t, a.CountDocument(d.doc))
	require.NoError(t, a.CountDocument(d.doc))

	assert.Equal(t, 3, a.Count(d.rating))
	assert.Equal(t, 1, a.Count(d.simple1Elem))
}

func TestNonSingletonMonotonic(t *testing.T) {
	doc := schema.NewDocument(nil, tns)
	root := doc.Root()
	typ := doc.Add(root, schema.KindComplexType, schema.Decl{Name: "T"})
	nilled := doc.Add(root, schema.KindComplexType, schema.Decl{Name: "N"})
	holder := doc.Add(root, schema.KindComplexType, schema.Decl{Name: "Holder"})
	seq := doc.Add(holder, schema.KindSequence, schema.Decl{})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "one", Type: q("T")})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "many", Type: q("T"), Occurs: &schema.Arity{Min: 0, Max: schema.Unbounded}})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "again", Type: q("T")})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "nil", Type: q("N"), Nillable: true})
	doc.RegisterDefinitions()

	a := New()
	require.NoError(t, a.CountDefinitions(holder))
	assert.Equal(t, 3, a.Count(typ))
	assert.True(t, a.IsNonSingleton(typ), "a later singleton use does not clear the flag")
	assert.True(t, a.IsNonSingleton(nilled), "nillable elements are never singletons")
}

func TestGroupAndDerivationReferences(t *testing.T) {
	doc := schema.NewDocument(nil, tns)
	root := doc.Root()
	group := doc.Add(root, schema.KindGroup, schema.Decl{Name: "G"})
	gseq := doc.Add(group, schema.KindSequence, schema.Decl{})
	doc.Add(gseq, schema.KindElement, schema.Decl{Name: "x", Type: schema.XSD("string")})
	attrs := doc.Add(root, schema.KindAttributeGroup, schema.Decl{Name: "A"})
	attr := doc.Add(root, schema.KindAttribute, schema.Decl{Name: "lang", Type: schema.XSD("language")})
	doc.Add(attrs, schema.KindAttribute, schema.Decl{Ref: q("lang"), Use: schema.UseRequired})
	base := doc.Add(root, schema.KindComplexType, schema.Decl{Name: "Base"})
	codes := doc.Add(root, schema.KindSimpleType, schema.Decl{Name: "Codes"})
	doc.Add(codes, schema.KindList, schema.Decl{ItemType: q("Code")})
	code := doc.Add(root, schema.KindSimpleType, schema.Decl{Name: "Code"})
	doc.Add(code, schema.KindRestriction, schema.Decl{Base: schema.XSD("token")})

	derived := doc.Add(root, schema.KindComplexType, schema.Decl{Name: "Derived"})
	cc := doc.Add(derived, schema.KindComplexContent, schema.Decl{})
	ext := doc.Add(cc, schema.KindExtension, schema.Decl{Base: q("Base")})
	seq := doc.Add(ext, schema.KindSequence, schema.Decl{})
	doc.Add(seq, schema.KindGroup, schema.Decl{Ref: q("G"), Occurs: &schema.Arity{Min: 1, Max: 3}})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "codes", Type: q("Codes")})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "missing", Type: q("Nowhere")})
	doc.Add(ext, schema.KindAttributeGroup, schema.Decl{Ref: q("A")})
	doc.RegisterDefinitions()

	a := New()
	require.NoError(t, a.CountDefinitions(derived))
	for _, def := range []schema.Node{derived, base, group, attrs, attr, codes, code} {
		assert.Equal(t, 1, a.Count(def), "%s", def)
	}
	assert.True(t, a.IsNonSingleton(group))
	assert.False(t, a.IsNonSingleton(attr), "required attribute use is a singleton")
	assert.False(t, a.IsNonSingleton(base))
	assert.Len(t, a.Counted(), 7, "built-in and unresolved names are ignored")
}

func TestReferenceSelection(t *testing.T) {
	d := newClosureDoc()
	a := New(WithReferences(RefLocal))
	require.NoError(t, a.CountDocument(d.doc))
	assert.Equal(t, []schema.Node{d.simple1Elem}, a.Counted())

	a = New(WithReferences(RefMember))
	require.NoError(t, a.CountDocument(d.doc))
	assert.Equal(t, []schema.Node{d.rating}, a.Counted())
	assert.Equal(t, 1, a.Count(d.rating))
}

func TestSubstitutionGroupsAreNotFollowed(t *testing.T) {
	doc := schema.NewDocument(nil, tns)
	head := doc.Add(doc.Root(), schema.KindElement, schema.Decl{Name: "head", Type: schema.XSD("string")})
	member := doc.Add(doc.Root(), schema.KindElement, schema.Decl{Name: "member", SubstitutionGroup: q("head")})
	doc.RegisterDefinitions()

	a := New()
	require.NoError(t, a.CountDefinitions(member))
	assert.Equal(t, 0, a.Count(head))
}

func TestCountingLocalDefinitionPanics(t *testing.T) {
	d := newClosureDoc()
	a := New()
	assert.Panics(t, func() { _ = a.CountDefinitions(d.localRef) })
}

func TestCrossDocumentResolution(t *testing.T) {
	other := schema.NewDocument(nil, "urn:other")
	x := other.Add(other.Root(), schema.KindSimpleType, schema.Decl{Name: "X"})
	other.Add(x, schema.KindRestriction, schema.Decl{Base: schema.NewQName("urn:other", "Y")})
	y := other.Add(other.Root(), schema.KindSimpleType, schema.Decl{Name: "Y"})
	other.Add(y, schema.KindRestriction, schema.Decl{Base: schema.XSD("string")})
	other.RegisterDefinitions()

	main := schema.NewDocument(nil, tns)
	el := main.Add(main.Root(), schema.KindElement, schema.Decl{Name: "root", Type: schema.NewQName("urn:other", "X")})
	main.RegisterDefinitions()
	main.Register().MergeImportedDefinitions(other.Register())

	a := New()
	require.NoError(t, a.CountDefinitions(el))
	assert.Equal(t, 1, a.Count(x))
	assert.Equal(t, 1, a.Count(y), "Y resolves through the register of X's document")
}

func TestCountDocumentFollowsIncludes(t *testing.T) {
	src := source.NewMemory(map[string]string{"main.xsd": "", "common.xsd": ""})
	var common *schema.Document
	loader := func(res resolver.Resolver) (*schema.Document, error) {
		common = schema.NewDocument(res, tns)
		ct := common.Add(common.Root(), schema.KindComplexType, schema.Decl{Name: "Common"})
		common.Add(ct, schema.KindAttribute, schema.Decl{Name: "id", Type: q("Id")})
		id := common.Add(common.Root(), schema.KindSimpleType, schema.Decl{Name: "Id"})
		common.Add(id, schema.KindRestriction, schema.Decl{Base: schema.XSD("ID")})
		common.RegisterDefinitions()
		return common, nil
	}
	res, err := resolver.New(src, "main.xsd")
	require.NoError(t, err)
	set := schema.NewSet(loader)
	main := set.Add(schema.NewDocument(res, tns))
	main.Add(main.Root(), schema.KindInclude, schema.Decl{SchemaLocation: "common.xsd"})

	a := New()
	require.NoError(t, a.CountDocument(main))
	require.NotNil(t, common)
	id, ok := common.Register().FindType(q("Id"))
	require.True(t, ok)
	assert.Equal(t, 1, a.Count(id))
}

func TestReset(t *testing.T) {
	d := newClosureDoc()
	a := New()
	require.NoError(t, a.CountDocument(d.doc))
	a.Reset()

	assert.Zero(t, a.Count(d.rating))
	assert.Empty(t, a.Counted())
	assert.Empty(t, a.NonSingletons())

	require.NoError(t, a.CountDocument(d.doc))
	assert.Equal(t, 3, a.Count(d.rating))
	assert.True(t, a.IsNonSingleton(d.rating))
}

func TestResetAfterPanic(t *testing.T) {
	src := source.NewMemory(map[string]string{"main.xsd": ""})
	res, err := resolver.New(src, "main.xsd")
	require.NoError(t, err)
	set := schema.NewSet(func(resolver.Resolver) (*schema.Document, error) {
		panic("loader exploded")
	})
	main := set.Add(schema.NewDocument(res, tns))
	main.Add(main.Root(), schema.KindInclude, schema.Decl{SchemaLocation: "common.xsd"})

	a := New()
	require.Panics(t, func() { _ = a.CountDocument(main) })
	// The main document is still entered; without Reset the next pass panics.
	require.Panics(t, func() { _ = a.CountDocument(newClosureDoc().doc) })

	a.Reset()
	d := newClosureDoc()
	require.NoError(t, a.CountDocument(d.doc))
	assert.Equal(t, 3, a.Count(d.rating))
}

func TestAnalyze(t *testing.T) {
	d := newClosureDoc()
	a := New(WithSkipAnnotations(), WithCapacity(4))
	defer a.Close()

	r, err := a.Analyze(context.Background(), []*schema.Document{d.doc})
	require.NoError(t, err)
	assert.Equal(t, 6, r.References)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Analyze(ctx, []*schema.Document{d.doc})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.References = []string{"type", "base"}
	a := New(WithConfig(cfg))
	assert.Equal(t, RefType|RefBase, a.References())
	assert.True(t, a.skipAnnotations)

	var warnings bytes.Buffer
	warn := slog.New(slog.NewTextHandler(&warnings, nil))
	cfg.Analysis.References = []string{}
	assert.Equal(t, RefAll, New(WithLogger(warn), WithConfig(cfg)).References())
	assert.Contains(t, warnings.String(), "ignoring invalid configuration")

	_, err := NewFromConfig(cfg)
	assert.Error(t, err)
	cfg.Analysis.References = []string{"bogus"}
	_, err = NewFromConfig(cfg)
	assert.Error(t, err)
	cfg.Analysis.References = []string{"item"}
	a, err = NewFromConfig(cfg, WithReferences(RefItem|RefMember))
	require.NoError(t, err)
	assert.Equal(t, RefItem|RefMember, a.References())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a = New(WithLogger(logger))
	require.NoError(t, a.CountDefinitions(newClosureDoc().simple3))
	assert.Contains(t, buf.String(), "usage sweep")
	assert.Contains(t, buf.String(), "sweep=1")
}
