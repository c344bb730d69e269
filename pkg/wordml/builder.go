package wordml

import (
	"strings"
	"unicode"
)

// TranslatorSpec describes the common "attribute bag plus fixed child
// properties" element shape. NewElementTranslator turns one spec into a
// fully formed translator; the ~150 leaf and group translators in this
// package are declarative instances of this shape.
type TranslatorSpec struct {
	// XMLName is the qualified element name, e.g. "w:lvl".
	XMLName string
	// ModelKey is the model attribute key. When empty it is derived from
	// the XML local name ("w:keepNext" -> "keepNext").
	ModelKey string
	// Handlers converts the element's own attributes.
	Handlers []AttrHandler
	// Children are the fixed child property translators, in decode
	// emission order.
	Children []*Translator
	// Keyed declares repeated child elements stored as keyed collections.
	Keyed []KeyedChildSpec
	// Defaults are attributes always emitted on decode, e.g. a fixed
	// namespace declaration on a part root.
	Defaults map[string]string
}

// KeyedChildSpec declares one repeated child element keyed by a
// discriminator attribute.
type KeyedChildSpec struct {
	// XMLName is the repeated child's qualified name, e.g. "w:lvl".
	XMLName string
	// ModelKey is the collection's key in the parent model object.
	ModelKey string
	// DiscriminatorKey is the model key of the discriminator inside each
	// decoded item, e.g. "ilvl".
	DiscriminatorKey string
	// Item translates one repeated child.
	Item *Translator
}

// NewElementTranslator builds the translator for a property-bag element.
func NewElementTranslator(spec TranslatorSpec) *Translator {
	t := &Translator{
		XMLName:  spec.XMLName,
		ModelKey: spec.ModelKey,
		Handlers: spec.Handlers,
		kind:     kindPropertyBag,
		children: spec.Children,
		defaults: spec.Defaults,
	}
	if t.ModelKey == "" {
		t.ModelKey = modelKeyFor(spec.XMLName)
	}
	for _, kc := range spec.Keyed {
		t.keyed = append(t.keyed, keyedChild{
			xmlName:  kc.XMLName,
			modelKey: kc.ModelKey,
			discKey:  kc.DiscriminatorKey,
			item:     kc.Item,
		})
	}
	return t
}

// NewCustomTranslator builds a translator whose encode and decode are
// supplied by the caller. The functions receive the owning translator, so
// they can reach its own handlers and identity.
func NewCustomTranslator(xmlName, modelKey string, handlers []AttrHandler, encode EncodeFunc, decode DecodeFunc) *Translator {
	return &Translator{
		XMLName:  xmlName,
		ModelKey: modelKey,
		Handlers: handlers,
		kind:     kindCustom,
		encodeFn: encode,
		decodeFn: decode,
	}
}

// BoolFlag builds a scalar ST_OnOff element translator: <w:b/> encodes to
// true, <w:b w:val="0"/> to false, and false decodes back to w:val="0".
func BoolFlag(xmlName, modelKey string) *Translator {
	return scalarTranslator(xmlName, modelKey, BoolAttr("w:val", modelKey))
}

// IntValue builds a scalar integer element translator reading w:val.
func IntValue(xmlName, modelKey string) *Translator {
	return scalarTranslator(xmlName, modelKey, IntAttr("w:val", modelKey))
}

// StringValue builds a scalar string element translator reading w:val.
func StringValue(xmlName, modelKey string) *Translator {
	return scalarTranslator(xmlName, modelKey, StringAttr("w:val", modelKey))
}

// StringValueAt is StringValue for elements whose scalar lives in an
// attribute other than w:val, e.g. w:tblLayout's w:type.
func StringValueAt(xmlName, attr, modelKey string) *Translator {
	return scalarTranslator(xmlName, modelKey, StringAttr(attr, modelKey))
}

// IntValueAt is IntValue for elements whose scalar lives in an attribute
// other than w:val.
func IntValueAt(xmlName, attr, modelKey string) *Translator {
	return scalarTranslator(xmlName, modelKey, IntAttr(attr, modelKey))
}

// WidthValue builds a percentage-aware width element translator (w:tblW,
// w:tcW, w:tblCellSpacing): {value, type} with pct literals converted to
// fiftieths on encode.
func WidthValue(xmlName, modelKey string) *Translator {
	return &Translator{
		XMLName:  xmlName,
		ModelKey: modelKey,
		Handlers: []AttrHandler{
			WidthAttr("w:w", "value"),
			StringAttr("w:type", "type"),
		},
		kind: kindPropertyBag,
	}
}

func scalarTranslator(xmlName, modelKey string, handler AttrHandler) *Translator {
	if modelKey == "" {
		modelKey = modelKeyFor(xmlName)
	}
	handler.Key = modelKey
	return &Translator{
		XMLName:  xmlName,
		ModelKey: modelKey,
		Handlers: []AttrHandler{handler},
		kind:     kindValue,
	}
}

// modelKeyFor derives the default model key from a qualified XML name by
// dropping the prefix and lowercasing the leading rune.
func modelKeyFor(xmlName string) string {
	local := xmlName
	if i := strings.LastIndex(xmlName, ":"); i >= 0 {
		local = xmlName[i+1:]
	}
	if local == "" {
		return local
	}
	runes := []rune(local)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
