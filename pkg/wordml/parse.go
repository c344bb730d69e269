package wordml

import (
	"bytes"
	"encoding/xml"
	"io"
	"sort"
	"strings"
)

// xmlHeader is emitted in front of every serialized part, matching what
// Word writes.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// ParseElement reads an XML part and builds the generic element tree the
// translator framework operates on. Names come back fully qualified with
// their declared prefixes ("w:lvl", "w:val"); namespace declarations stay
// in the tree as ordinary xmlns attributes so nothing is lost.
func ParseElement(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	prefixes := make(map[string]string)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, NewParseError("document contains no elements", nil)
		}
		if err != nil {
			return nil, NewParseError("failed to read XML token", err)
		}
		if start, ok := token.(xml.StartElement); ok {
			root, err := parseElement(decoder, start, prefixes)
			if err != nil {
				return nil, err
			}
			return root, nil
		}
	}
}

func parseElement(decoder *xml.Decoder, start xml.StartElement, prefixes map[string]string) (*Element, error) {
	// Namespace declarations must register before the element's own name
	// can be qualified.
	for _, attr := range start.Attr {
		if attr.Name.Space == "xmlns" {
			prefixes[attr.Value] = attr.Name.Local
		}
	}

	el := NewElement(qualifyName(start.Name, prefixes))
	for _, attr := range start.Attr {
		el.Attrs[qualifyAttr(attr.Name, prefixes)] = attr.Value
	}

	var text strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, NewParseError("unexpected end of element "+el.Name, err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			child, err := parseElement(decoder, t, prefixes)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			// Whitespace between child elements is formatting, not
			// content.
			if s := text.String(); strings.TrimSpace(s) != "" {
				el.Text = s
			}
			return el, nil
		}
	}
}

func qualifyName(name xml.Name, prefixes map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	if prefix, ok := prefixes[name.Space]; ok {
		return prefix + ":" + name.Local
	}
	if strings.ContainsAny(name.Space, "/.") {
		// An undeclared URI; nothing better to qualify with.
		return name.Local
	}
	// The decoder passes unresolvable prefixes through verbatim.
	return name.Space + ":" + name.Local
}

func qualifyAttr(name xml.Name, prefixes map[string]string) string {
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	if name.Space == "" && name.Local == "xmlns" {
		return "xmlns"
	}
	return qualifyName(name, prefixes)
}

// Marshal serializes the element tree back to part bytes, children in
// order, leaves self-closing, with the standard XML header.
func Marshal(el *Element) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	writeElement(&buf, el)
	return buf.Bytes()
}

// WriteTo serializes the element tree without the XML header.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	writeElement(&buf, e)
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func writeElement(buf *bytes.Buffer, el *Element) {
	buf.WriteByte('<')
	buf.WriteString(el.Name)

	// Attribute order carries no meaning; sorted output keeps
	// serialization deterministic, namespace declarations first.
	names := make([]string, 0, len(el.Attrs))
	for name := range el.Attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.HasPrefix(names[i], "xmlns"), strings.HasPrefix(names[j], "xmlns")
		if li != lj {
			return li
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		buf.WriteByte(' ')
		buf.WriteString(name)
		buf.WriteString(`="`)
		escapeTo(buf, el.Attrs[name])
		buf.WriteByte('"')
	}

	if len(el.Children) == 0 && el.Text == "" {
		buf.WriteString("/>")
		return
	}

	buf.WriteByte('>')
	if el.Text != "" {
		escapeTo(buf, el.Text)
	}
	for _, child := range el.Children {
		writeElement(buf, child)
	}
	buf.WriteString("</")
	buf.WriteString(el.Name)
	buf.WriteByte('>')
}

func escapeTo(buf *bytes.Buffer, s string) {
	// xml.EscapeText never fails on a bytes.Buffer.
	_ = xml.EscapeText(buf, []byte(s))
}
