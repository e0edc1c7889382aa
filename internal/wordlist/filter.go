package wordlist

import (
	"strings"
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case English:
		return filterEnglishASCII
	case Polish:
		return filterPolish
	default:
		return func(string) bool { return true }
	}
}

// Filter keeps the words accepted by the filter for lang.
func Filter(lang string, words []string) []string {
	keep := FilterForLang(lang)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

func filterPolish(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return false
		}
		if r > unicode.MaxASCII && !strings.ContainsRune("ąćęłńóśźż", r) {
			return false
		}
	}
	return true
}
