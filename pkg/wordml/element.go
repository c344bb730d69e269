package wordml

import (
	"github.com/samber/lo"
)

// Element represents a single node of an OOXML part's XML tree.
// Names are fully qualified ("w:lvl", "w:val"); attribute order is not
// significant, child order is.
type Element struct {
	Name     string
	Attrs    map[string]string
	Children []*Element
	Text     string
}

// NewElement creates an element with the given qualified name and no
// attributes or children. An element with empty Attrs and Children is
// still "present" — presence and emptiness are distinct states.
func NewElement(name string) *Element {
	return &Element{
		Name:  name,
		Attrs: make(map[string]string),
	}
}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// SetAttr sets an attribute value, replacing any previous value.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attrs[name] = value
	return e
}

// AppendChild appends a child element, preserving insertion order.
func (e *Element) AppendChild(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// ChildrenNamed returns all direct children with the given qualified name,
// in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	return lo.Filter(e.Children, func(child *Element, _ int) bool {
		return child.Name == name
	})
}

// FirstChild returns the first direct child with the given qualified name.
func (e *Element) FirstChild(name string) (*Element, bool) {
	return lo.Find(e.Children, func(child *Element) bool {
		return child.Name == name
	})
}

// Walk visits every descendant of the element depth-first.
func (e *Element) Walk(fn func(*Element)) {
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		fn(child)
		if len(child.Children) > 0 {
			child.Walk(fn)
		}
	}
}

// Clone returns a deep copy of the element tree.
func (e *Element) Clone() *Element {
	out := &Element{
		Name:  e.Name,
		Attrs: make(map[string]string, len(e.Attrs)),
		Text:  e.Text,
	}
	for k, v := range e.Attrs {
		out.Attrs[k] = v
	}
	for _, child := range e.Children {
		out.Children = append(out.Children, child.Clone())
	}
	return out
}
