// Package textnorm provides Turkish-aware text cleaning for complaint
// processing. Normalize produces the canonical model input; Clean is the
// lighter collection-time pass that keeps punctuation.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minCleanLength is the minimum length a cleaned text must have to be
// considered usable for collection.
const minCleanLength = 5

// turkish letters outside ASCII a-z that survive normalization.
var turkishLetters = map[rune]bool{
	'ğ': true, 'ü': true, 'ş': true, 'ı': true, 'ö': true, 'ç': true,
}

// Lower lower-cases text with Turkish casing rules ("İ" maps to "i",
// "I" to "ı") without altering any other character. A cases.Caser carries
// per-call state and must not be shared between goroutines, so each call
// builds its own.
func Lower(text string) string {
	return cases.Lower(language.Turkish).String(text)
}

// Normalize lower-cases text with Turkish casing rules, strips every
// character outside the Turkish alphabet and whitespace, collapses runs of
// whitespace to a single space, and trims. Empty or unusable input yields
// the empty string; callers must treat that as "no usable text".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := Lower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || turkishLetters[r] {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		// Any rejected rune acts as a word boundary.
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

// Clean collapses whitespace and strips characters outside letters, digits,
// basic punctuation, and whitespace. Texts shorter than 5 characters after
// cleaning are rejected with an empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' ||
			r == '.' || r == ',' || r == '!' || r == '?':
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}

	cleaned := strings.TrimSpace(b.String())
	if len([]rune(cleaned)) < minCleanLength {
		return ""
	}
	return cleaned
}

// WordCount returns the number of whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
