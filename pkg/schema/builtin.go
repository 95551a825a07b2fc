package schema

import "sync"

type builtinDef struct {
	name string
	base string
	list bool
}

// builtinDefs lists the built-in simple types with the type each one is
// derived from, in XML Schema Part 2 order.
var builtinDefs = []builtinDef{
	{name: "anySimpleType", base: "anyType"},

	{name: "string", base: "anySimpleType"},
	{name: "boolean", base: "anySimpleType"},
	{name: "decimal", base: "anySimpleType"},
	{name: "float", base: "anySimpleType"},
	{name: "double", base: "anySimpleType"},
	{name: "duration", base: "anySimpleType"},
	{name: "dateTime", base: "anySimpleType"},
	{name: "time", base: "anySimpleType"},
	{name: "date", base: "anySimpleType"},
	{name: "gYearMonth", base: "anySimpleType"},
	{name: "gYear", base: "anySimpleType"},
	{name: "gMonthDay", base: "anySimpleType"},
	{name: "gDay", base: "anySimpleType"},
	{name: "gMonth", base: "anySimpleType"},
	{name: "hexBinary", base: "anySimpleType"},
	{name: "base64Binary", base: "anySimpleType"},
	{name: "anyURI", base: "anySimpleType"},
	{name: "QName", base: "anySimpleType"},
	{name: "NOTATION", base: "anySimpleType"},

	{name: "normalizedString", base: "string"},
	{name: "token", base: "normalizedString"},
	{name: "language", base: "token"},
	{name: "Name", base: "token"},
	{name: "NMTOKEN", base: "token"},
	{name: "NMTOKENS", base: "NMTOKEN", list: true},
	{name: "NCName", base: "Name"},
	{name: "ID", base: "NCName"},
	{name: "IDREF", base: "NCName"},
	{name: "IDREFS", base: "IDREF", list: true},
	{name: "ENTITY", base: "NCName"},
	{name: "ENTITIES", base: "ENTITY", list: true},

	{name: "integer", base: "decimal"},
	{name: "nonPositiveInteger", base: "integer"},
	{name: "negativeInteger", base: "nonPositiveInteger"},
	{name: "long", base: "integer"},
	{name: "int", base: "long"},
	{name: "short", base: "int"},
	{name: "byte", base: "short"},
	{name: "nonNegativeInteger", base: "integer"},
	{name: "unsignedLong", base: "nonNegativeInteger"},
	{name: "unsignedInt", base: "unsignedLong"},
	{name: "unsignedShort", base: "unsignedInt"},
	{name: "unsignedByte", base: "unsignedShort"},
	{name: "positiveInteger", base: "nonNegativeInteger"},
}

// builtinCatalog is the read-only document holding the built-in types.
var builtinCatalog = sync.OnceValue(func() *Document {
	d := NewDocument(nil, XSDNamespace)
	d.builtin = true
	root := d.Root()
	d.Add(root, KindComplexType, Decl{Name: "anyType", Mixed: true})
	for _, b := range builtinDefs {
		st := d.Add(root, KindSimpleType, Decl{Name: b.name})
		if b.list {
			d.Add(st, KindList, Decl{ItemType: XSD(b.base)})
		} else {
			d.Add(st, KindRestriction, Decl{Base: XSD(b.base)})
		}
	}
	d.RegisterDefinitions()
	return d
})

// Builtin returns the built-in type with the given local name.
func Builtin(local string) (Node, bool) {
	return builtinCatalog().register.tables[TableTypes].find(XSD(local))
}

// Builtins returns every built-in type in XML Schema Part 2 order.
func Builtins() []Node {
	return builtinCatalog().Definitions()
}

// BuiltinDocument returns the document holding the built-in types. It must
// not be modified.
func BuiltinDocument() *Document {
	return builtinCatalog()
}
