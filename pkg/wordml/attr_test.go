package wordml

import (
	"testing"
)

func TestBoolAttrEncode(t *testing.T) {
	handler := BoolAttr("w:val", "bold")

	tests := []struct {
		name  string
		attrs map[string]string
		want  bool
	}{
		{
			name:  "absent attribute implies on",
			attrs: map[string]string{},
			want:  true,
		},
		{name: "literal 0", attrs: map[string]string{"w:val": "0"}, want: false},
		{name: "literal false", attrs: map[string]string{"w:val": "false"}, want: false},
		{name: "literal off", attrs: map[string]string{"w:val": "off"}, want: false},
		{name: "literal 1", attrs: map[string]string{"w:val": "1"}, want: true},
		{name: "literal true", attrs: map[string]string{"w:val": "true"}, want: true},
		{name: "literal on", attrs: map[string]string{"w:val": "on"}, want: true},
		{name: "mixed case FALSE", attrs: map[string]string{"w:val": "FALSE"}, want: false},
		{name: "padded off", attrs: map[string]string{"w:val": "  off  "}, want: false},
		{
			// The lenient fallback is part of the contract, not a bug.
			name:  "unrecognized literal defaults to on",
			attrs: map[string]string{"w:val": "maybe"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := handler.Encode(tt.attrs)
			if !ok {
				t.Fatal("expected a value, got absent")
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOptionalBoolAttrEncode(t *testing.T) {
	handler := OptionalBoolAttr("w:default", "default")

	if _, ok := handler.Encode(map[string]string{}); ok {
		t.Error("expected absent for missing secondary flag")
	}
	got, ok := handler.Encode(map[string]string{"w:default": "0"})
	if !ok || got != false {
		t.Errorf("expected false, got %v (present=%v)", got, ok)
	}
}

func TestBoolAttrDecode(t *testing.T) {
	handler := BoolAttr("w:val", "bold")

	if lit, emit := handler.Decode(true); emit {
		t.Errorf("true should emit no attribute, got %q", lit)
	}
	lit, emit := handler.Decode(false)
	if !emit || lit != "0" {
		t.Errorf("false should emit \"0\", got %q (emit=%v)", lit, emit)
	}
}

func TestIntAttrEncode(t *testing.T) {
	handler := IntAttr("w:ilvl", "ilvl")

	tests := []struct {
		name  string
		attrs map[string]string
		want  any
		ok    bool
	}{
		{name: "absent", attrs: map[string]string{}, ok: false},
		{name: "zero", attrs: map[string]string{"w:ilvl": "0"}, want: 0, ok: true},
		{name: "positive", attrs: map[string]string{"w:ilvl": "42"}, want: 42, ok: true},
		{name: "negative", attrs: map[string]string{"w:ilvl": "-3"}, want: -3, ok: true},
		{
			// Malformed integers pass through raw; the enclosing
			// translator decides whether to suppress.
			name:  "malformed passes through",
			attrs: map[string]string{"w:ilvl": "twelve"},
			want:  "twelve",
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := handler.Encode(tt.attrs)
			if ok != tt.ok {
				t.Fatalf("expected present=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestIntAttrDecode(t *testing.T) {
	handler := IntAttr("w:ilvl", "ilvl")

	lit, emit := handler.Decode(7)
	if !emit || lit != "7" {
		t.Errorf("expected \"7\", got %q (emit=%v)", lit, emit)
	}
	lit, emit = handler.Decode("twelve")
	if !emit || lit != "twelve" {
		t.Errorf("malformed passthrough should decode as-is, got %q", lit)
	}
}

func TestWidthAttrEncode(t *testing.T) {
	handler := WidthAttr("w:w", "value")

	tests := []struct {
		name  string
		attrs map[string]string
		want  any
	}{
		{
			name:  "100 percent to fiftieths",
			attrs: map[string]string{"w:w": "100%", "w:type": "pct"},
			want:  5000,
		},
		{
			name:  "50 percent to fiftieths",
			attrs: map[string]string{"w:w": "50%", "w:type": "pct"},
			want:  2500,
		},
		{
			name:  "decimal percent rounds",
			attrs: map[string]string{"w:w": "62.5%", "w:type": "pct"},
			want:  3125,
		},
		{
			name:  "percent literal outside pct keeps the numeric prefix",
			attrs: map[string]string{"w:w": "100%", "w:type": "dxa"},
			want:  100,
		},
		{
			name:  "no fiftieths conversion outside pct",
			attrs: map[string]string{"w:w": "50%", "w:type": "dxa"},
			want:  50,
		},
		{
			name:  "non-numeric literal passes through",
			attrs: map[string]string{"w:w": "auto", "w:type": "auto"},
			want:  "auto",
		},
		{
			name:  "already-fiftieths numeric form is idempotent",
			attrs: map[string]string{"w:w": "5000", "w:type": "pct"},
			want:  5000,
		},
		{
			name:  "plain dxa value",
			attrs: map[string]string{"w:w": "2840", "w:type": "dxa"},
			want:  2840,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := handler.Encode(tt.attrs)
			if !ok {
				t.Fatal("expected a value, got absent")
			}
			if got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}

	if _, ok := handler.Encode(map[string]string{"w:type": "pct"}); ok {
		t.Error("expected absent when the width attribute is missing")
	}
}

func TestWidthAttrDecodeIsOneWay(t *testing.T) {
	handler := WidthAttr("w:w", "value")

	// Decode emits the stored fiftieths integer as-is; the "%" literal is
	// never reconstructed.
	lit, emit := handler.Decode(5000)
	if !emit || lit != "5000" {
		t.Errorf("expected \"5000\", got %q (emit=%v)", lit, emit)
	}
}

func TestStringAttr(t *testing.T) {
	handler := StringAttr("w:val", "color")

	if _, ok := handler.Encode(map[string]string{}); ok {
		t.Error("expected absent for missing attribute")
	}
	got, ok := handler.Encode(map[string]string{"w:val": "FF0000"})
	if !ok || got != "FF0000" {
		t.Errorf("expected FF0000, got %v", got)
	}
	lit, emit := handler.Decode("FF0000")
	if !emit || lit != "FF0000" {
		t.Errorf("expected FF0000 back, got %q", lit)
	}
}
