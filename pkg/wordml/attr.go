package wordml

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// attrKind selects the coercion rule an AttrHandler applies.
type attrKind int

const (
	attrString attrKind = iota
	attrInt
	attrBool
	attrWidth
)

// AttrHandler converts a single scalar XML attribute to and from a typed
// model value. Handlers are pure data, owned by exactly one translator and
// immutable after construction.
type AttrHandler struct {
	// Attr is the qualified XML attribute name, e.g. "w:val".
	Attr string
	// Key is the model property name the value is stored under.
	Key string

	kind attrKind
	// implicit marks ST_OnOff semantics: an absent attribute decodes to
	// true because presence of the owning element already means "on".
	implicit bool
}

// BoolAttr creates an ST_OnOff boolean handler: absent means true, the
// literals "0"/"false"/"off" mean false, everything else means true.
func BoolAttr(attr, key string) AttrHandler {
	return AttrHandler{Attr: attr, Key: key, kind: attrBool, implicit: true}
}

// OptionalBoolAttr creates a boolean handler without the presence-implies-on
// rule: an absent attribute stays absent. Used for secondary flags such as
// w:default on w:style.
func OptionalBoolAttr(attr, key string) AttrHandler {
	return AttrHandler{Attr: attr, Key: key, kind: attrBool}
}

// IntAttr creates a base-10 integer handler.
func IntAttr(attr, key string) AttrHandler {
	return AttrHandler{Attr: attr, Key: key, kind: attrInt}
}

// StringAttr creates a passthrough string handler.
func StringAttr(attr, key string) AttrHandler {
	return AttrHandler{Attr: attr, Key: key, kind: attrString}
}

// WidthAttr creates a percentage-aware width handler. When the sibling
// w:type attribute is "pct" and the value is a percentage literal, encode
// converts it to integer fiftieths ("100%" -> 5000). Any other type keeps
// the numeric prefix of the literal as a plain integer ("100%" with
// type "dxa" -> 100). Decode emits the stored integer as-is; the "%"
// literal is never reconstructed.
func WidthAttr(attr, key string) AttrHandler {
	return AttrHandler{Attr: attr, Key: key, kind: attrWidth}
}

var (
	percentLiteral = regexp.MustCompile(`^(\d+(?:\.\d+)?)%$`)
	leadingInt     = regexp.MustCompile(`^-?\d+`)
)

// Encode reads the handler's attribute out of the element's attribute map
// and coerces it to the model value. The second result is false when the
// property is absent. A malformed integer literal passes through as its
// raw string; the enclosing translator decides whether that suppresses the
// element or survives as-is.
func (h AttrHandler) Encode(attrs map[string]string) (any, bool) {
	raw, present := attrs[h.Attr]

	switch h.kind {
	case attrBool:
		if !present {
			if h.implicit {
				return true, true
			}
			return nil, false
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "0", "false", "off":
			return false, true
		default:
			// Lenient by the ST_OnOff convention: any unrecognized
			// literal, "1", "true", "on" included, means on.
			return true, true
		}

	case attrInt:
		if !present {
			return nil, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return raw, true
		}
		return n, true

	case attrWidth:
		if !present {
			return nil, false
		}
		trimmed := strings.TrimSpace(raw)
		if attrs["w:type"] == "pct" {
			if m := percentLiteral.FindStringSubmatch(trimmed); m != nil {
				pct, err := strconv.ParseFloat(m[1], 64)
				if err == nil {
					return int(math.Round(pct * 50)), true
				}
			}
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n, true
		}
		// Outside pct a "%" or unit suffix does not invalidate the value;
		// the leading digits alone are the width.
		if m := leadingInt.FindString(trimmed); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				return n, true
			}
		}
		return raw, true

	default:
		if !present {
			return nil, false
		}
		return raw, true
	}
}

// Decode turns a model value back into the attribute literal. The second
// result is false when no attribute should be emitted: boolean true emits
// nothing, because element presence alone re-encodes to true.
func (h AttrHandler) Decode(value any) (string, bool) {
	switch h.kind {
	case attrBool:
		b, ok := value.(bool)
		if !ok {
			return stringify(value)
		}
		if b {
			if h.implicit {
				return "", false
			}
			return "1", true
		}
		return "0", true

	case attrInt, attrWidth:
		if n, ok := asInt(value); ok {
			return strconv.Itoa(n), true
		}
		return stringify(value)

	default:
		return stringify(value)
	}
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "1", true
		}
		return "0", true
	case int:
		return strconv.Itoa(v), true
	case nil:
		return "", false
	default:
		return fmt.Sprintf("%v", v), true
	}
}
