package wordml

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below the level must be suppressed: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("messages at or above the level must be written: %s", out)
	}
}

func TestDebugElement(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogDebug)

	el := NewElement("w:rPr")
	el.AppendChild(NewElement("w:b"))
	logger.DebugElement(el)
	logger.DebugElement(nil)

	out := buf.String()
	if !strings.Contains(out, "w:rPr") || !strings.Contains(out, "children=1") {
		t.Errorf("expected the subtree summary, got %s", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("a nil element must log nothing: %s", out)
	}

	buf.Reset()
	quiet := NewLogger(&buf, LogInfo)
	quiet.DebugElement(el)
	if buf.Len() != 0 {
		t.Errorf("below debug level nothing is written: %s", buf.String())
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo).WithFields(Fields{"part": "numbering"})

	logger.Info("encoded")

	out := buf.String()
	if !strings.Contains(out, "part=numbering") {
		t.Errorf("expected the field in the output: %s", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("expected the level tag: %s", out)
	}
}

func TestLoggerWithFieldCopies(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, LogInfo)
	derived := base.WithField("key", "value")

	if len(base.fields) != 0 {
		t.Error("WithField must not mutate the parent logger")
	}
	if derived.fields["key"] != "value" {
		t.Error("expected the field on the derived logger")
	}
}

func TestLoggerNilWriter(t *testing.T) {
	logger := NewLogger(nil, LogDebug)
	// Must not panic.
	logger.Info("discarded")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogDebug},
		{"info", LogInfo},
		{"warn", LogWarn},
		{"error", LogError},
		{"off", LogOff},
		{"unknown", LogInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
