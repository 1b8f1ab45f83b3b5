package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesKeepText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name  string
		style func(string) string
		text  string
	}{
		{"Success", styles.Success, "parsed"},
		{"Error", styles.Error, "parse error"},
		{"FilePath", styles.FilePath, "/path/to/input.why"},
		{"Identifier", styles.Identifier, "b_1"},
		{"Number", styles.Number, "-42"},
		{"Operator", styles.Operator, "*"},
		{"Keyword", styles.Keyword, "extern"},
		{"Dim", styles.Dim, "1:4"},
		{"Warning", styles.Warning, "overwriting output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.style(tt.text)
			if !strings.Contains(result, tt.text) {
				t.Errorf("%s() result should contain %q, got: %s", tt.name, tt.text, result)
			}
		})
	}
}

func TestStylesTiming(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	t.Run("FastOperation", func(t *testing.T) {
		result := styles.Timing("5ms", false)

		if !strings.Contains(result, "5ms") {
			t.Errorf("Timing() result should contain timing, got: %s", result)
		}
	})

	t.Run("SlowOperation", func(t *testing.T) {
		result := styles.Timing("500ms", true)

		if !strings.Contains(result, "500ms") {
			t.Errorf("Timing() result should contain timing, got: %s", result)
		}
	})
}

func TestStylesOutput(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles.Output() == nil {
		t.Error("Output() should return non-nil termenv.Output")
	}
}
