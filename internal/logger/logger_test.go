package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"WARN", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn", "text")

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("Lines below warn must be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] warn line") {
		t.Errorf("Expected warn line, got:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] error line") {
		t.Errorf("Expected error line, got:\n%s", out)
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", "text")

	l.Info("collected %d articles for %s", 20, "2024-03-01")

	if !strings.Contains(buf.String(), "collected 20 articles for 2024-03-01") {
		t.Errorf("Expected formatted message, got:\n%s", buf.String())
	}
}
