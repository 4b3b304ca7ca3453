package middleware

import (
	"strings"
)

// Input sanitization utilities

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// SanitizeScanType bounds the free-text scan-type hint that gets embedded in
// the model prompt.
func SanitizeScanType(scanType string) string {
	s := SanitizeString(scanType)
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 64 {
		s = s[:64]
	}
	return s
}
