package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panbanda/xsdscope/pkg/config"
	"github.com/panbanda/xsdscope/pkg/resolver"
	"github.com/panbanda/xsdscope/pkg/schema"
	"github.com/panbanda/xsdscope/pkg/source"
)

func TestDescribe(t *testing.T) {
	doc := schema.NewDocument(nil, "urn:a")
	ct := doc.Add(doc.Root(), schema.KindComplexType, schema.Decl{Name: "Order"})
	seq := doc.Add(ct, schema.KindSequence, schema.Decl{})
	ref := doc.Add(seq, schema.KindGroup, schema.Decl{Ref: schema.NewQName("urn:a", "items")})

	assert.Equal(t, `complexType "Order"`, Describe(ct))
	assert.Equal(t, "sequence", Describe(seq))
	assert.Equal(t, `group ref="{urn:a}items"`, Describe(ref))
	assert.Equal(t, "<nil>", Describe(schema.Node{}))
}

func TestPath(t *testing.T) {
	res, err := resolver.New(source.NewMemory(nil), "schemas/order.xsd")
	assert.NoError(t, err)
	doc := schema.NewDocument(res, "urn:a")
	ct := doc.Add(doc.Root(), schema.KindComplexType, schema.Decl{Name: "Order", Line: 4})
	seq := doc.Add(ct, schema.KindSequence, schema.Decl{Line: 5})
	doc.Add(seq, schema.KindElement, schema.Decl{Name: "id", Line: 6})
	doc.Add(seq, schema.KindChoice, schema.Decl{Line: 7})
	second := doc.Add(seq, schema.KindChoice, schema.Decl{})
	el := doc.Add(second, schema.KindElement, schema.Decl{Ref: schema.NewQName("urn:a", "note"), Line: 9})

	assert.Equal(t, "/schema/complexType[@name=Order]/sequence[1] (schemas/order.xsd:5)", Path(seq))
	assert.Equal(t, "/schema/complexType[@name=Order]/sequence[1]/choice[2]", Path(second))
	assert.Equal(t, "/schema/complexType[@name=Order]/sequence[1]/choice[2]/element[1] (schemas/order.xsd:9)", Path(el))
	assert.Equal(t, "/schema", Path(doc.Root()))
	assert.Equal(t, "", Path(schema.Node{}))

	noLoc := Formatter{}
	assert.Equal(t, "/schema/complexType[@name=Order]", noLoc.Path(ct))
}

func TestColor(t *testing.T) {
	doc := schema.NewDocument(nil, "")
	el := doc.Add(doc.Root(), schema.KindElement, schema.Decl{Name: "a", Line: 2})

	f := New(&config.Config{Diagnostics: config.DiagnosticsConfig{Color: true, Locations: true}})
	path := f.Path(el)
	assert.True(t, strings.Contains(path, "\x1b["), "expected ANSI escapes in %q", path)
	assert.Contains(t, f.Describe(el), "\x1b[")

	f = New(config.DefaultConfig())
	assert.Equal(t, `element "a"`, f.Describe(el))
	assert.NotContains(t, f.Path(el), "\x1b[")
}
