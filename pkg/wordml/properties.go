package wordml

import (
	"github.com/samber/lo"
)

// EncodeProperties converts a parent's child elements into one model object
// using the supplied translator table. Each translator picks up its matching
// children by XML name; only non-absent results land in the output, so the
// object carries exactly the keys that were present in the source.
func EncodeProperties(children []*Element, translators []*Translator) ModelMap {
	out := ModelMap{}
	for _, tr := range translators {
		matches := lo.Filter(children, func(child *Element, _ int) bool {
			return child != nil && child.Name == tr.XMLName
		})
		if v, ok := tr.Encode(matches); ok {
			out[tr.ModelKey] = v
		}
	}
	return out
}

// DecodeProperties rebuilds the ordered child element list from a model
// attribute bag. Translators run in table order; each contributes an element
// only when its model key is present.
func DecodeProperties(attrs ModelMap, translators []*Translator) []*Element {
	var out []*Element
	for _, tr := range translators {
		if el, ok := tr.Decode(attrs); ok {
			out = append(out, el)
		}
	}
	return out
}

// EncodePropertiesByKey converts every child of node named xmlName into a
// keyed collection, keyed by the coerced discriminator value read from each
// decoded item. Children whose discriminator is missing or malformed are
// skipped; their siblings still encode. A duplicate discriminator keeps the
// later element's data in the original position. When no child matches, the
// result is absent, never an empty collection.
func EncodePropertiesByKey(node *Element, xmlName, discKey string, item *Translator) (any, bool) {
	children := node.ChildrenNamed(xmlName)
	if len(children) == 0 {
		return nil, false
	}

	coll := NewKeyed()
	for _, child := range children {
		v, ok := item.Encode([]*Element{child})
		if !ok {
			continue
		}
		obj, ok := asModelMap(v)
		if !ok {
			continue
		}
		key, ok := obj[discKey]
		if !ok {
			continue
		}
		if !validDiscriminator(item, discKey, key) {
			continue
		}
		coll.Set(key, obj)
	}
	if coll.Len() == 0 {
		return nil, false
	}
	return coll, true
}

// validDiscriminator rejects keys whose coercion failed: an integer
// discriminator that came through as its raw malformed string suppresses
// the whole item.
func validDiscriminator(item *Translator, discKey string, key any) bool {
	h, ok := item.handlerForKey(discKey)
	if !ok {
		return true
	}
	switch h.kind {
	case attrInt:
		_, isInt := asInt(key)
		return isInt
	case attrString:
		_, isString := key.(string)
		return isString
	default:
		return true
	}
}

// DecodePropertiesByKey inverts a keyed collection back into repeated XML
// elements, in the collection's insertion order. The discriminator value is
// re-injected into each item's attrs under discKey before decoding, so an
// item edited without its discriminator still round-trips.
func DecodePropertiesByKey(attrs ModelMap, modelKey, discKey string, item *Translator) []*Element {
	coll, ok := attrs.Collection(modelKey)
	if !ok {
		return nil
	}

	var out []*Element
	coll.Each(func(key any, obj ModelMap) {
		itemAttrs := make(ModelMap, len(obj)+1)
		for k, v := range obj {
			itemAttrs[k] = v
		}
		itemAttrs[discKey] = key
		if el, decoded := item.Decode(ModelMap{item.ModelKey: itemAttrs}); decoded {
			out = append(out, el)
		}
	})
	return out
}
