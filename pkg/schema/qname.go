package schema

import (
	"cmp"
	"strings"
)

// XSDNamespace is the XML Schema namespace.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// QName is a namespace-qualified name. An empty Namespace means no namespace.
type QName struct {
	Namespace string
	Local     string
}

// NewQName builds a QName.
func NewQName(namespace, local string) QName {
	return QName{Namespace: namespace, Local: local}
}

// XSD returns the QName of a name in the XML Schema namespace.
func XSD(local string) QName {
	return QName{Namespace: XSDNamespace, Local: local}
}

// IsZero reports whether q has no local name.
func (q QName) IsZero() bool {
	return q.Local == ""
}

// String renders q in Clark notation.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	var b strings.Builder
	b.Grow(len(q.Namespace) + len(q.Local) + 2)
	b.WriteByte('{')
	b.WriteString(q.Namespace)
	b.WriteByte('}')
	b.WriteString(q.Local)
	return b.String()
}

// CompareQNames orders QNames by namespace, then local name.
func CompareQNames(a, b QName) int {
	if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return cmp.Compare(a.Local, b.Local)
}
