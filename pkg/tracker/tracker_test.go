package tracker

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panbanda/xsdscope/pkg/resolver"
	"github.com/panbanda/xsdscope/pkg/schema"
	"github.com/panbanda/xsdscope/pkg/source"
	"github.com/panbanda/xsdscope/pkg/walk"
)

func TestEnterExit(t *testing.T) {
	a := schema.NewDocument(nil, "urn:a")
	b := schema.NewDocument(nil, "urn:b")
	tr := New()

	assert.Panics(t, func() { tr.CurrentDocument() })
	assert.Panics(t, func() { tr.CurrentRegister() })

	require.True(t, tr.Enter(a))
	assert.Same(t, a.Register(), tr.CurrentRegister())
	require.True(t, tr.Enter(b))
	assert.Same(t, b, tr.CurrentDocument())
	assert.False(t, tr.Enter(a), "a document is entered once per pass")
	assert.Equal(t, 2, tr.Depth())

	tr.Exit()
	assert.Same(t, a.Register(), tr.CurrentRegister())
	tr.Exit()
	assert.Zero(t, tr.Depth())
	assert.True(t, tr.Visited(a))
	assert.Equal(t, 2, tr.VisitedCount())

	assert.Panics(t, func() { tr.Exit() })
}

func TestReset(t *testing.T) {
	a := schema.NewDocument(nil, "urn:a")
	b := schema.NewDocument(nil, "urn:b")
	tr := New()
	require.True(t, tr.Enter(a))
	tr.Push(b)

	assert.Panics(t, func() { tr.ClearVisited() })
	tr.Reset()
	assert.Zero(t, tr.Depth())
	assert.Zero(t, tr.VisitedCount())
	assert.Panics(t, func() { tr.CurrentDocument() })
	assert.True(t, tr.Enter(a), "a reset tracker starts a fresh pass")
}

func TestPushIgnoresVisited(t *testing.T) {
	a := schema.NewDocument(nil, "")
	tr := New()
	require.True(t, tr.Enter(a))
	tr.Push(a)
	assert.Equal(t, 2, tr.Depth())
	tr.Pop()
	tr.Exit()

	other := schema.NewDocument(nil, "")
	tr.Push(other)
	assert.False(t, tr.Visited(other))
	tr.Pop()
}

func TestClearVisited(t *testing.T) {
	a := schema.NewDocument(nil, "")
	tr := New()
	require.True(t, tr.Enter(a))
	assert.Panics(t, func() { tr.ClearVisited() })

	tr.Exit()
	tr.ClearVisited()
	assert.False(t, tr.Visited(a))
	assert.True(t, tr.Enter(a))
}

type docCounter struct {
	walk.BaseVisitor
	roots map[string]int
	regs  []*schema.Register
	tr    *Tracker
}

func (c *docCounter) VisitSchema(n schema.Node) bool {
	c.roots[n.Document().Name()]++
	c.regs = append(c.regs, c.tr.CurrentRegister())
	return true
}

func loader(res resolver.Resolver) (*schema.Document, error) {
	rc, err := res.Content()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	doc := schema.NewDocument(res, "")
	for _, loc := range strings.Fields(string(data)) {
		doc.Add(doc.Root(), schema.KindInclude, schema.Decl{SchemaLocation: loc})
	}
	return doc, nil
}

func TestCircularIncludesVisitedOnce(t *testing.T) {
	files := source.NewMemory(map[string]string{
		"a.xsd": "b.xsd",
		"b.xsd": "a.xsd c.xsd",
		"c.xsd": "a.xsd b.xsd",
	})
	res, err := resolver.New(files, "a.xsd")
	require.NoError(t, err)
	set := schema.NewSet(loader)
	a, err := set.Load(res)
	require.NoError(t, err)

	tr := New()
	c := &docCounter{roots: map[string]int{}, tr: tr}
	c.Self = c
	w := walk.New(nil, tr)

	require.NoError(t, w.WalkDocument(a, c))
	assert.Equal(t, map[string]int{"a.xsd": 1, "b.xsd": 1, "c.xsd": 1}, c.roots)
	assert.Zero(t, tr.Depth())
	require.Len(t, c.regs, 3)
	assert.Same(t, a.Register(), c.regs[0])

	// A second walk in the same pass enters nothing.
	require.NoError(t, w.WalkDocument(a, c))
	assert.Equal(t, 1, c.roots["a.xsd"])

	tr.ClearVisited()
	require.NoError(t, w.WalkDocument(a, c))
	assert.Equal(t, map[string]int{"a.xsd": 2, "b.xsd": 2, "c.xsd": 2}, c.roots)
}
