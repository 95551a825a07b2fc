// Package resolver locates schema documents referenced by include, import
// and redefine components.
//
// A Resolver identifies one document. Its ID is a normalised, process-unique
// identity used for deduplication and cycle detection only; content is read
// lazily through Content.
package resolver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/panbanda/xsdscope/pkg/source"
)

// ErrNotFound is returned when a document's content cannot be located.
var ErrNotFound = errors.New("schema document not found")

// ErrInvalidLocation is returned for schema locations that cannot be resolved.
var ErrInvalidLocation = errors.New("invalid schema location")

// Resolver identifies a schema document and resolves locations relative to it.
type Resolver interface {
	// Resolve returns the resolver for a location hint relative to this document.
	// The namespace hint is informational.
	Resolve(location, namespace string) (Resolver, error)

	// Name returns a display name for diagnostics.
	Name() string

	// ID returns the normalised identity of the document.
	ID() string

	// Content opens the document content.
	Content() (io.ReadCloser, error)
}

// Source resolves documents against a ContentSource.
type Source struct {
	src       source.ContentSource
	location  string
	namespace string
	id        string
}

var _ Resolver = (*Source)(nil)

// New creates a resolver for location read through src.
func New(src source.ContentSource, location string) (*Source, error) {
	if err := checkLocation(location); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("resolver: no content source for %q", location)
	}
	return &Source{src: src, location: location, id: NormalizeID(location)}, nil
}

// NewFS creates a resolver for a document stored in fsys.
func NewFS(fsys fs.FS, location string) (*Source, error) {
	return New(source.NewFS(fsys), location)
}

// NewMemory creates a resolver over an in-memory document map.
func NewMemory(files map[string]string, location string) (*Source, error) {
	return New(source.NewMemory(files), location)
}

// Resolve implements Resolver.
func (r *Source) Resolve(location, namespace string) (Resolver, error) {
	if err := checkLocation(location); err != nil {
		return nil, err
	}
	target, err := r.join(location)
	if err != nil {
		return nil, err
	}
	return &Source{src: r.src, location: target, namespace: namespace, id: NormalizeID(target)}, nil
}

// join resolves location against this document's location. URL bases use
// RFC 3986 reference resolution; plain paths are joined and cleaned.
func (r *Source) join(location string) (string, error) {
	if hasScheme(location) {
		return location, nil
	}
	if hasScheme(r.location) {
		base, err := url.Parse(r.location)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidLocation, r.location, err)
		}
		ref, err := url.Parse(location)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidLocation, location, err)
		}
		return base.ResolveReference(ref).String(), nil
	}
	if strings.HasPrefix(location, "/") {
		return location, nil
	}
	return path.Join(path.Dir(r.location), location), nil
}

// Name implements Resolver.
func (r *Source) Name() string { return r.location }

// ID implements Resolver.
func (r *Source) ID() string { return r.id }

// Namespace returns the namespace hint this resolver was created with.
func (r *Source) Namespace() string { return r.namespace }

// Content implements Resolver.
func (r *Source) Content() (io.ReadCloser, error) {
	data, err := r.src.Read(r.location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, r.location, err)
		}
		return nil, fmt.Errorf("read %s: %w", r.location, err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (r *Source) String() string { return r.location }

// NormalizeID returns the identity used to deduplicate documents: scheme,
// host and path are lower-cased and the path is cleaned.
func NormalizeID(raw string) string {
	if hasScheme(raw) {
		if u, err := url.Parse(raw); err == nil {
			if u.Opaque != "" {
				return strings.ToLower(u.Scheme) + ":" + strings.ToLower(u.Opaque)
			}
			p := u.Path
			if p != "" {
				p = path.Clean(p)
			}
			id := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + strings.ToLower(p)
			if u.RawQuery != "" {
				id += "?" + u.RawQuery
			}
			return id
		}
	}
	return strings.ToLower(path.Clean(raw))
}

func checkLocation(location string) error {
	if location == "" {
		return fmt.Errorf("%w: empty location", ErrInvalidLocation)
	}
	if strings.Contains(location, "\\") {
		return fmt.Errorf("%w: location contains backslash: %q", ErrInvalidLocation, location)
	}
	return nil
}

// hasScheme reports whether s starts with a URL scheme. Single letters are
// treated as drive names, not schemes.
func hasScheme(s string) bool {
	i := strings.Index(s, ":")
	if i < 2 {
		return false
	}
	for j := 0; j < i; j++ {
		c := s[j]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
