package domain

import "unicode/utf8"

// MaxDescriptionLength is the maximum number of characters kept from a
// source description.
const MaxDescriptionLength = 400

// TruncateDescription cuts text to MaxDescriptionLength characters.
// Cutting counts runes, so multi-byte scripts are never split mid-character.
func TruncateDescription(text string) string {
	if utf8.RuneCountInString(text) <= MaxDescriptionLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:MaxDescriptionLength])
}
