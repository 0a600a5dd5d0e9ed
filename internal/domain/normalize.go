package domain

import (
	"strings"
	"unicode"
)

// accentFold maps accented Latin letters to their base letter. It covers the
// Portuguese and Spanish alphabets used in category names and classifier labels.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// NormalizeLabel prepares free text for matching against category names:
//   - trims and lowercases
//   - folds accents ("Plástico" -> "plastico")
//   - turns punctuation into spaces
//   - compresses runs of whitespace into one space
func NormalizeLabel(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			if prevSpace || b.Len() == 0 {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
