package cmd

import (
	"strings"
	"testing"
)

func TestPromptSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  int
	}{
		{"first option", "1\n", 3, 1},
		{"last option", "3\n", 3, 3},
		{"retries after junk", "abc\n0\n9\n2\n", 3, 2},
		{"trims whitespace", "  2 \n", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := promptSelect(strings.NewReader(tt.input), "Select", tt.max)
			if err != nil {
				t.Fatalf("promptSelect: %v", err)
			}
			if got != tt.want {
				t.Errorf("promptSelect = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPromptSelectEOF(t *testing.T) {
	_, err := promptSelect(strings.NewReader(""), "Select", 3)
	if err == nil {
		t.Fatal("expected error on closed input, got nil")
	}
}
