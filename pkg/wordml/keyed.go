package wordml

// Keyed is the model representation of a repeated XML element keyed by a
// discriminator attribute (ilvl, numId, styleId, ...). Iteration follows
// first-seen key order; setting an existing key replaces the value without
// moving the key (last-write-wins for value, first-seen-wins for order).
// Go maps are unordered, so the ordering contract needs an explicit type.
type Keyed struct {
	order []any
	items map[any]ModelMap
}

// NewKeyed creates an empty keyed collection.
func NewKeyed() *Keyed {
	return &Keyed{
		items: make(map[any]ModelMap),
	}
}

// Set stores the value under key. A duplicate key overwrites the previous
// value but keeps the original position.
func (k *Keyed) Set(key any, value ModelMap) {
	if _, exists := k.items[key]; !exists {
		k.order = append(k.order, key)
	}
	k.items[key] = value
}

// Get returns the value stored under key.
func (k *Keyed) Get(key any) (ModelMap, bool) {
	v, ok := k.items[key]
	return v, ok
}

// Len returns the number of entries.
func (k *Keyed) Len() int {
	return len(k.items)
}

// Keys returns the keys in insertion order.
func (k *Keyed) Keys() []any {
	out := make([]any, len(k.order))
	copy(out, k.order)
	return out
}

// Each calls fn for every entry in insertion order.
func (k *Keyed) Each(fn func(key any, value ModelMap)) {
	for _, key := range k.order {
		fn(key, k.items[key])
	}
}
