package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "Loves robotics and coffee",
			maxLen:   30,
			expected: "Loves robotics and coffee",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long introduction truncated",
			input:    "I build compilers for fun",
			maxLen:   10,
			expected: "I build...",
		},
		{
			name:     "very small maxLen returns ellipsis",
			input:    "hello",
			maxLen:   3,
			expected: "...",
		},
		{
			name:     "zero maxLen returns ellipsis",
			input:    "hello",
			maxLen:   0,
			expected: "...",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "unicode counted by runes",
			input:    "日本語テスト",
			maxLen:   5,
			expected: "日本...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)

	t.Run("plain string truncated to width", func(t *testing.T) {
		got := TruncateANSI("hello world", 8)
		if got != "hello..." {
			t.Errorf("TruncateANSI() = %q, want %q", got, "hello...")
		}
	})

	t.Run("styled string within width unchanged", func(t *testing.T) {
		input := style.Render("hi")
		if got := TruncateANSI(input, 10); got != input {
			t.Errorf("TruncateANSI() modified a string within the width")
		}
	})

	t.Run("styled string respects visual width", func(t *testing.T) {
		got := TruncateANSI(style.Render("hello world"), 8)
		if width := lipgloss.Width(got); width > 8 {
			t.Errorf("result width %d exceeds 8", width)
		}
	})

	t.Run("wide characters counted by visual width", func(t *testing.T) {
		got := TruncateANSI("日本語テスト", 8)
		if width := lipgloss.Width(got); width > 8 {
			t.Errorf("result width %d exceeds 8", width)
		}
	})

	t.Run("tiny width returns ellipsis", func(t *testing.T) {
		if got := TruncateANSI("hello", 2); got != "..." {
			t.Errorf("TruncateANSI() = %q, want %q", got, "...")
		}
	})
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "0 members"},
		{1, "1 member"},
		{4, "4 members"},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.n, "member", "members"); got != tt.expected {
			t.Errorf("Pluralize(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}
