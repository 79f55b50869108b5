package ansible

import (
	"testing"

	apperrors "hubver/pkg/errors"
)

func TestMinorVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lower bound only", ">=2.10", "2.10"},
		{"lower and upper bound", ">=2.9,<2.17", "2.9"},
		{"plain version with patch", "2.9.0", "2.9"},
		{"plain minor version", "2.9", "2.9"},
		{"strict lower bound", ">2.11", "2.11"},
		{"upper bound operator", "<=2.15", "2.15"},
		{"spaces around token", ">= 2.14 , < 2.18", "2.14"},
		{"equality operator", "==2.12.3", "2.12"},
		{"major only", "2", "2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinorVersion(tt.input)
			if err != nil {
				t.Fatalf("MinorVersion(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("MinorVersion(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinorVersionIdempotent(t *testing.T) {
	first, err := MinorVersion(">=2.9,<2.17")
	if err != nil {
		t.Fatalf("MinorVersion() error: %v", err)
	}
	second, err := MinorVersion(first)
	if err != nil {
		t.Fatalf("MinorVersion(%q) error: %v", first, err)
	}
	if second != first {
		t.Errorf("MinorVersion(%q) = %q, want %q", first, second, first)
	}
}

func TestMinorVersionInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"word", "latest"},
		{"operators only", ">="},
		{"leading comma", ",<2.17"},
		{"garbage", "2.x.y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinorVersion(tt.input)
			if err == nil {
				t.Fatalf("MinorVersion(%q) = %q, want error", tt.input, got)
			}
			if !apperrors.Is(err, apperrors.ErrCodeVersionParse) {
				t.Errorf("MinorVersion(%q) error code = %q, want %q", tt.input, apperrors.GetCode(err), apperrors.ErrCodeVersionParse)
			}
		})
	}
}
