package keywords

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Stem reduces a word to its snowball stem, falling back to the word itself
// when the stemmer rejects it.
func Stem(word string) string {
	stem, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stem
}

// Tokenize lowercases text and splits it on non-alphanumeric runes.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// StemTokens tokenizes text and stems each token.
func StemTokens(text string) []string {
	tokens := Tokenize(text)
	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		stems = append(stems, Stem(tok))
	}
	return stems
}
