package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "under limit", input: "abc", limit: 5, expected: "abc"},
		{name: "cut to limit", input: "abc", limit: 2, expected: "ab"},
		{name: "multibyte runes stay whole", input: "ééé", limit: 2, expected: "éé"},
		{name: "zero limit disables truncation", input: "abc", limit: 0, expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateRunes(tt.input, tt.limit); got != tt.expected {
				t.Fatalf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestOptionalString(t *testing.T) {
	t.Parallel()

	if got := OptionalString(""); got != nil {
		t.Fatalf("OptionalString(\"\") = %v, want nil", *got)
	}
	if got := OptionalString("x"); got == nil || *got != "x" {
		t.Fatalf("OptionalString(\"x\") = %v, want x", got)
	}
	if got := DerefString(nil); got != "" {
		t.Fatalf("DerefString(nil) = %q, want empty", got)
	}
}
