// Package wordml converts between raw OOXML element trees, as parsed from
// the parts of a .docx package, and a compact document-model attribute
// representation — and back again, losslessly.
//
// The framework is built from small composable units. An AttrHandler
// coerces one scalar XML attribute (ST_OnOff booleans, base-10 integers,
// percentage-aware widths). A Translator maps one XML element name to one
// model key, combining attribute handlers with nested property and keyed
// collection helpers. Translators are declared once at package load,
// immutable afterwards, and shared freely between concurrent conversions.
//
// The central contract is absence propagation: a key missing from a model
// bag means the property was not present in the source XML. Encode never
// invents defaults beyond the documented ST_OnOff presence-implies-on
// rule, and decode omits every element whose key is absent, so
// encode/decode round-trips preserve presence as well as value.
//
// Basic usage:
//
//	pkg, _, err := wordml.OpenPackage("document.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root, err := pkg.ParsePart(wordml.PartNumbering)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, err := wordml.EncodeNumbering(root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... hand model to the editing runtime, then write it back:
//	rebuilt, err := wordml.DecodeNumbering(model)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = wordml.Marshal(rebuilt)
package wordml
