package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxWordLength is the maximum accepted word length in bytes.
// Longer inputs are almost certainly malformed lines, not words.
const MaxWordLength = 256

// ValidateWord checks that a word is acceptable as graph input.
// Returns nil for valid words, or an *Error describing the problem.
//
// A valid word is non-empty, at most MaxWordLength bytes, valid UTF-8,
// and contains no control characters.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeEmptyWord, "word is empty")
	}
	if len(word) > MaxWordLength {
		return New(ErrCodeInvalidWord, "word exceeds %d bytes", MaxWordLength)
	}
	if !utf8.ValidString(word) {
		return New(ErrCodeInvalidWord, "word is not valid UTF-8")
	}
	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWord, "word contains control character %q", r)
		}
	}
	return nil
}
