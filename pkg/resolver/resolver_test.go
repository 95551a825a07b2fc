package resolver

import (
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"schemas/a.xsd", "schemas/a.xsd"},
		{"schemas/./sub/../A.xsd", "schemas/a.xsd"},
		{"HTTP://Example.COM/Schemas/../Types.xsd", "http://example.com/types.xsd"},
		{"file:///tmp/x.xsd", "file:///tmp/x.xsd"},
		{"urn:Example:Types", "urn:example:types"},
		{"C:/schemas/a.xsd", "c:/schemas/a.xsd"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeID(tt.raw))
		})
	}
}

func TestResolveRelative(t *testing.T) {
	root, err := NewMemory(map[string]string{
		"schemas/main.xsd":         "main",
		"schemas/common/types.xsd": "types",
	}, "schemas/main.xsd")
	require.NoError(t, err)

	child, err := root.Resolve("common/types.xsd", "urn:types")
	require.NoError(t, err)
	assert.Equal(t, "schemas/common/types.xsd", child.Name())
	assert.Equal(t, "schemas/common/types.xsd", child.ID())
	assert.Equal(t, "urn:types", child.(*Source).Namespace())

	rc, err := child.Content()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "types", string(data))

	// Sibling documents resolve back to the same identity.
	back, err := child.Resolve("../main.xsd", "")
	require.NoError(t, err)
	assert.Equal(t, root.ID(), back.ID())
}

func TestResolveInvalidLocation(t *testing.T) {
	root, err := NewMemory(nil, "main.xsd")
	require.NoError(t, err)

	_, err = root.Resolve("", "")
	assert.True(t, errors.Is(err, ErrInvalidLocation))

	_, err = root.Resolve(`dir\types.xsd`, "")
	assert.True(t, errors.Is(err, ErrInvalidLocation))

	_, err = New(nil, "main.xsd")
	assert.Error(t, err)
}

func TestContentNotFound(t *testing.T) {
	root, err := NewFS(fstest.MapFS{"main.xsd": {Data: []byte("x")}}, "main.xsd")
	require.NoError(t, err)

	missing, err := root.Resolve("missing.xsd", "")
	require.NoError(t, err, "resolution is lazy")

	_, err = missing.Content()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResolveAbsoluteURL(t *testing.T) {
	root, err := NewMemory(nil, "schemas/main.xsd")
	require.NoError(t, err)

	child, err := root.Resolve("http://www.w3.org/2001/xml.xsd", "http://www.w3.org/XML/1998/namespace")
	require.NoError(t, err)
	assert.Equal(t, "http://www.w3.org/2001/xml.xsd", child.ID())
}

func TestResolveRelativeToURL(t *testing.T) {
	root, err := NewMemory(nil, "http://example.com/s/main.xsd")
	require.NoError(t, err)

	relative, err := root.Resolve("types.xsd", "")
	require.NoError(t, err)
	absolute, err := root.Resolve("http://example.com/s/types.xsd", "")
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/s/types.xsd", relative.Name())
	assert.Equal(t, absolute.ID(), relative.ID())

	up, err := root.Resolve("../common/base.xsd", "")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/common/base.xsd", up.Name())

	rooted, err := root.Resolve("/other.xsd", "")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/other.xsd", rooted.ID())
}
