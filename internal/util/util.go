package util

import "unicode/utf8"

// TruncateRunes cuts s to at most limit runes. A non-positive limit disables truncation.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return string(runes[:limit])
}

// OptionalString maps "" to nil for nullable text columns.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// DerefString returns "" for a nil pointer.
func DerefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

