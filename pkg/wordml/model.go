package wordml

// ModelMap is the attribute bag of a document-model node. A key that is
// missing from the map means "this property was not present in the source
// XML"; encode never default-populates a key, and decode treats a missing
// key as "omit this element". Values are scalars (bool, int, string),
// nested ModelMap objects, or *Keyed collections.
type ModelMap map[string]any

// ModelNode is a document-model node: a type tag plus an attribute bag.
type ModelNode struct {
	Type  string
	Attrs ModelMap
}

// Has reports whether the key is present in the bag.
func (m ModelMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Bool returns the value at key as a bool, if present and boolean.
func (m ModelMap) Bool(key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Int returns the value at key as an int, if present and integral.
func (m ModelMap) Int(key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return asInt(v)
}

// String returns the value at key as a string, if present and a string.
func (m ModelMap) String(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Object returns the value at key as a nested ModelMap, if present.
func (m ModelMap) Object(key string) (ModelMap, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return asModelMap(v)
}

// Collection returns the value at key as a keyed collection, if present.
func (m ModelMap) Collection(key string) (*Keyed, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	k, ok := v.(*Keyed)
	return k, ok
}

func asModelMap(v any) (ModelMap, bool) {
	switch m := v.(type) {
	case ModelMap:
		return m, true
	case map[string]any:
		return ModelMap(m), true
	default:
		return nil, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
