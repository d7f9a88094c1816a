package errors

import (
	"strings"
	"testing"
)

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"sparse default", "esparso_1.txt", false},
		{"dense default", "denso_4.txt", false},
		{"no extension", "graph", false},
		{"hidden file", ".graph.txt", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"slash", "out/graph.txt", true},
		{"backslash", "out\\graph.txt", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"null byte", "graph\x00.txt", true},
		{"newline", "graph\n.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateFileName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "graph.txt", false},
		{"nested", "out/graphs/graph.txt", false},
		{"absolute", "/tmp/graph.txt", false},

		{"empty", "", true},
		{"directory", "out/", true},
		{"control char", "graph\x01.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWeightRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{"default range", 1, 20, false},
		{"single value", 7, 7, false},

		{"zero minimum", 0, 20, true},
		{"negative minimum", -3, 20, true},
		{"inverted", 20, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeightRange(tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWeightRange(%d, %d) error = %v, wantErr %v", tt.min, tt.max, err, tt.wantErr)
			}
			if err != nil && !IsFatal(err) {
				t.Errorf("ValidateWeightRange(%d, %d) should be a configuration error, got %v", tt.min, tt.max, err)
			}
		})
	}
}
