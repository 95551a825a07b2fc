// Package schema provides the in-memory object model of an XML Schema
// document set.
//
// Each Document is an arena of components rooted at a schema component.
// Components are addressed through Node handles; parents own their children
// by index and the parent link is a plain index. Documents refer to each
// other only through import, include and redefine components, resolved by
// identity through a Set, so circular document references never form an
// owned pointer cycle.
//
// Usage:
//
//	doc := schema.NewDocument(res, "urn:example")
//	ct := doc.Add(doc.Root(), schema.KindComplexType, schema.Decl{Name: "Order"})
//	seq := doc.Add(ct, schema.KindSequence, schema.Decl{})
//	doc.Add(seq, schema.KindElement, schema.Decl{Name: "id", Type: schema.XSD("string")})
//	doc.RegisterDefinitions()
//
//	def, ok := doc.Register().FindType(schema.NewQName("urn:example", "Order"))
package schema
