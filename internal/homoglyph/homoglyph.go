// Package homoglyph folds visually confusable characters into a canonical Latin form.
package homoglyph

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// single maps look-alike runes to the Latin letter they imitate.
// The i/l/1 family collapses onto 'l'.
var single = map[rune]rune{ //nolint: gochecknoglobals
	'0': 'o', '1': 'l', '3': 'e', '4': 'a', '5': 's', '7': 't', '8': 'b', '9': 'g',
	'@': 'a', '$': 's', '!': 'l', '|': 'l', 'i': 'l',

	// cyrillic
	'а': 'a', 'в': 'b', 'е': 'e', 'ё': 'e', 'к': 'k', 'м': 'm', 'н': 'h', 'о': 'o', 'р': 'p',
	'с': 'c', 'т': 't', 'у': 'y', 'х': 'x', 'і': 'l', 'ї': 'l', 'ј': 'j', 'ѕ': 's', 'ԁ': 'd',
	'һ': 'h', 'ӏ': 'l', 'ԛ': 'q', 'ԝ': 'w',

	// latin extensions
	'ɡ': 'g', 'ı': 'l', 'ȷ': 'j',

	// greek
	'α': 'a', 'β': 'b', 'ε': 'e', 'η': 'n', 'ι': 'l', 'κ': 'k', 'ν': 'v', 'ο': 'o', 'ρ': 'p',
	'τ': 't', 'υ': 'u', 'χ': 'x', 'ω': 'w',
}

// multi is applied after single-rune folding, in order.
var multi = strings.NewReplacer("rn", "m", "vv", "w", "cl", "d") //nolint: gochecknoglobals

// Fold lower-cases s, strips diacritics through compatibility decomposition and
// maps confusable characters and sequences to their canonical Latin form.
// Folding the same string twice yields the same result.
func Fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		stripped = strings.ToLower(s)
	}

	folded := strings.Map(func(r rune) rune {
		if c, ok := single[r]; ok {
			return c
		}

		return r
	}, stripped)

	return multi.Replace(folded)
}

// ContainsConfusable reports whether s has a non-ASCII rune that imitates a Latin letter.
func ContainsConfusable(s string) bool {
	for _, r := range strings.ToLower(s) {
		if r <= unicode.MaxASCII {
			continue
		}
		if _, ok := single[r]; ok {
			return true
		}
	}

	return false
}

// MixedScript reports whether any label of host mixes letters from two or more scripts.
func MixedScript(host string) bool {
	for _, label := range strings.Split(host, ".") {
		scripts := make(map[string]struct{})
		for _, r := range label {
			script := detectScript(r)
			if script == "" {
				continue
			}
			scripts[script] = struct{}{}
			if len(scripts) >= 2 {
				return true
			}
		}
	}

	return false
}

func detectScript(r rune) string {
	switch {
	case unicode.In(r, unicode.Latin):
		return "latin"
	case unicode.In(r, unicode.Cyrillic):
		return "cyrillic"
	case unicode.In(r, unicode.Greek):
		return "greek"
	case unicode.In(r, unicode.Hiragana):
		return "hiragana"
	case unicode.In(r, unicode.Katakana):
		return "katakana"
	case unicode.In(r, unicode.Han):
		return "han"
	default:
		return ""
	}
}
