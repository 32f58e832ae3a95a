package models

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// NormalizeItemName strips one layer of matching quotes, collapses runs of
// whitespace and capitalizes each word: " 'millet seed' " -> "Millet Seed".
// Only the first character of a word is upper-cased, so "millet-seed"
// becomes "Millet-seed". A lone quote normalizes to "".
func NormalizeItemName(raw string) string {
	s := strings.TrimSpace(raw)
	if s == `"` || s == "'" {
		return ""
	}
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = s[1 : len(s)-1]
		}
	}

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	return upper.String(word[:size]) + lower.String(word[size:])
}
