// Package diag renders schema components for diagnostics: a short
// description and an XPath-like path from the document root.
package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/panbanda/xsdscope/pkg/config"
	"github.com/panbanda/xsdscope/pkg/schema"
)

// Formatter renders descriptions and paths.
type Formatter struct {
	// Color highlights kinds, names and locations with ANSI escapes.
	Color bool
	// Locations appends "(file:line)" to paths when the line is known.
	Locations bool
}

// New returns the formatter configured by the diagnostics section of cfg.
func New(cfg *config.Config) Formatter {
	return Formatter{
		Color:     cfg.Diagnostics.Color,
		Locations: cfg.Diagnostics.Locations,
	}
}

var plain = Formatter{Locations: true}

// Describe returns the kind of n followed by its name, if any.
func Describe(n schema.Node) string { return plain.Describe(n) }

// Path returns the path of n from its document root.
func Path(n schema.Node) string { return plain.Path(n) }

var (
	kindColor     = forced(color.FgCyan)
	nameColor     = forced(color.FgYellow)
	locationColor = forced(color.Faint)
)

// forced returns a color that ignores terminal detection; Formatter.Color
// alone decides whether escapes are written.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func (f Formatter) paint(c *color.Color, s string) string {
	if !f.Color {
		return s
	}
	return c.Sprint(s)
}

// Describe returns the kind of n followed by its quoted name or reference.
func (f Formatter) Describe(n schema.Node) string {
	if !n.Valid() {
		return "<nil>"
	}
	kind := f.paint(kindColor, n.Kind().String())
	switch {
	case n.Name() != "":
		return kind + " " + f.paint(nameColor, strconv.Quote(n.Name()))
	case n.IsReference():
		return kind + " ref=" + f.paint(nameColor, strconv.Quote(n.Ref().String()))
	}
	return kind
}

// Path returns "/schema/kind[@name=X]/kind[n]..." for n, using the name
// when present and the position among same-kind siblings otherwise.
func (f Formatter) Path(n schema.Node) string {
	if !n.Valid() {
		return ""
	}
	var segments []string
	for c := n; c.Valid(); c = c.Parent() {
		segments = append(segments, f.segment(c))
	}
	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segments[i])
	}
	if f.Locations && n.Line() > 0 {
		loc := fmt.Sprintf("(%s:%d)", n.Document(), n.Line())
		b.WriteByte(' ')
		b.WriteString(f.paint(locationColor, loc))
	}
	return b.String()
}

func (f Formatter) segment(n schema.Node) string {
	kind := f.paint(kindColor, n.Kind().String())
	if n.Kind() == schema.KindSchema {
		return kind
	}
	if name := n.Name(); name != "" {
		return kind + "[@name=" + f.paint(nameColor, name) + "]"
	}
	return kind + "[" + strconv.Itoa(n.Position()) + "]"
}
