// Package strcase converts Go identifiers into the snake_case keys used in
// API payloads.
package strcase

import (
	"strings"
	"unicode"
)

// Words splits an identifier into words. Spaces, hyphens and underscores
// separate words, as do lower-to-upper transitions and the end of an acronym
// ("HTTPServer" gives "HTTP", "Server").
func Words(s string) []string {
	runes := []rune(s)

	var words []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if r == ' ' || r == '-' || r == '_' {
			flush(i)
			continue
		}

		if start >= 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush(i)
			}
		}

		if start < 0 {
			start = i
		}
	}
	flush(len(runes))

	return words
}

// ToLowerSnake converts s to lower snake_case, e.g. "ConfirmPassword" to
// "confirm_password" and "PinKey" to "pin_key".
func ToLowerSnake(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}
