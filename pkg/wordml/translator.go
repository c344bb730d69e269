package wordml

// translatorKind tags the shape of XML element a translator handles.
type translatorKind int

const (
	// kindValue is a scalar element: a single attribute whose coerced
	// value becomes the model value directly (w:b -> true, w:start -> 1).
	kindValue translatorKind = iota
	// kindPropertyBag is an attribute bag plus a fixed set of child
	// property elements, possibly with keyed child collections.
	kindPropertyBag
	// kindCustom delegates entirely to caller-supplied encode/decode.
	kindCustom
)

// EncodeFunc converts the sibling elements matching a translator's XML name
// into one model value. The bool result is false when nothing was present.
type EncodeFunc func(t *Translator, nodes []*Element) (any, bool)

// DecodeFunc rebuilds the XML element for a translator's model key out of
// the parent's attribute bag. The bool result is false when the key is
// absent and the element must be omitted.
type DecodeFunc func(t *Translator, attrs ModelMap) (*Element, bool)

// Translator is the unit of mapping between one XML element name and one
// model attribute key. Translators are built once, immutable afterwards,
// and safe to share between concurrent conversions.
type Translator struct {
	// XMLName is the qualified element name, unique per registry.
	XMLName string
	// ModelKey is the model attribute key, unique per registry. Usually a
	// camel-cased form of the XML local name, but not always (w:b -> bold).
	ModelKey string
	// Handlers converts this element's own attributes.
	Handlers []AttrHandler

	kind     translatorKind
	children []*Translator
	keyed    []keyedChild
	defaults map[string]string

	encodeFn EncodeFunc
	decodeFn DecodeFunc
}

// keyedChild describes one repeated child element stored as a keyed
// collection in the model.
type keyedChild struct {
	xmlName  string
	modelKey string
	discKey  string
	item     *Translator
}

// Encode converts the ordered sibling elements matching t.XMLName into the
// model value for t.ModelKey. In OOXML property elements are singular per
// parent, so nodes holds zero or one element in practice; the slice shape
// keeps the interface uniform with repeated elements. An element that would
// contribute zero keys encodes to absent, never to an empty object.
func (t *Translator) Encode(nodes []*Element) (any, bool) {
	if t.encodeFn != nil {
		return t.encodeFn(t, nodes)
	}
	return t.encodeElement(nodes)
}

// Decode rebuilds the XML element from the parent model attribute bag.
// An absent t.ModelKey decodes to an absent element.
func (t *Translator) Decode(attrs ModelMap) (*Element, bool) {
	if t.decodeFn != nil {
		return t.decodeFn(t, attrs)
	}
	return t.decodeElement(attrs)
}

// scalar reports whether the translator collapses to a single coerced
// attribute value instead of a model object.
func (t *Translator) scalar() bool {
	return t.kind == kindValue && len(t.Handlers) == 1 &&
		len(t.children) == 0 && len(t.keyed) == 0
}

// handlerForKey returns the attribute handler writing the given model key.
func (t *Translator) handlerForKey(key string) (AttrHandler, bool) {
	for _, h := range t.Handlers {
		if h.Key == key {
			return h, true
		}
	}
	return AttrHandler{}, false
}

func (t *Translator) encodeElement(nodes []*Element) (any, bool) {
	if len(nodes) == 0 {
		return nil, false
	}
	el := nodes[0]

	if t.scalar() {
		return t.Handlers[0].Encode(el.Attrs)
	}

	out := ModelMap{}
	for _, h := range t.Handlers {
		if v, ok := h.Encode(el.Attrs); ok {
			out[h.Key] = v
		}
	}
	for key, v := range EncodeProperties(el.Children, t.children) {
		out[key] = v
	}
	for _, kc := range t.keyed {
		if v, ok := EncodePropertiesByKey(el, kc.xmlName, kc.discKey, kc.item); ok {
			out[kc.modelKey] = v
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func (t *Translator) decodeElement(attrs ModelMap) (*Element, bool) {
	value, ok := attrs[t.ModelKey]
	if !ok {
		return nil, false
	}

	el := NewElement(t.XMLName)
	for name, v := range t.defaults {
		el.Attrs[name] = v
	}

	if t.scalar() {
		if lit, emit := t.Handlers[0].Decode(value); emit {
			el.Attrs[t.Handlers[0].Attr] = lit
		}
		return el, true
	}

	obj, ok := asModelMap(value)
	if !ok {
		return nil, false
	}
	for _, h := range t.Handlers {
		v, present := obj[h.Key]
		if !present {
			continue
		}
		if lit, emit := h.Decode(v); emit {
			el.Attrs[h.Attr] = lit
		}
	}
	el.Children = append(el.Children, DecodeProperties(obj, t.children)...)
	for _, kc := range t.keyed {
		el.Children = append(el.Children, DecodePropertiesByKey(obj, kc.modelKey, kc.discKey, kc.item)...)
	}
	return el, true
}
