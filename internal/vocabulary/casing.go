package vocabulary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchCase shapes replacement after the capitalization of surface:
// all upper-case surface text upper-cases the whole replacement, a leading
// capital upper-cases only the first rune of the replacement, anything else
// leaves the replacement untouched.
func MatchCase(surface, replacement string) string {
	switch {
	case isAllUpper(surface):
		return strings.ToUpper(replacement)
	case startsUpper(surface):
		return upperFirst(replacement)
	default:
		return replacement
	}
}

// isAllUpper reports whether s has at least one cased rune and no
// lower-case ones.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r) || unicode.IsTitle(r)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// isWordRune matches the runes that make up a word for boundary checks.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
