package vowels

import (
	"strings"
	"unicode/utf8"
)

// IsVowel reports whether r is an ASCII vowel, upper or lower case.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}

	return false
}

// ReverseVowels returns s with its vowels in reverse order.
//
// The scan runs over bytes: every vowel is ASCII and no byte of a multibyte
// UTF-8 sequence is ASCII, so all other bytes, invalid ones included, are
// returned untouched.
//
// Example:
//
//	ReverseVowels("leetcode") // "leotcede"
//	ReverseVowels("")         // ""
func ReverseVowels(s string) string {
	if len(s) < 2 {
		return s
	}

	b := []byte(s)
	left, right := 0, len(b)-1
	for left < right {
		if !IsVowel(rune(b[left])) {
			left++
			continue
		}
		if !IsVowel(rune(b[right])) {
			right--
			continue
		}
		b[left], b[right] = b[right], b[left]
		left++
		right--
	}

	return string(b)
}

// ReverseMatching returns s with the runes satisfying match in reverse order
// among themselves. Runes that do not match keep their positions. A nil match
// returns s unchanged.
//
// Runes are decoded with utf8.DecodeRuneInString and moved as their original
// byte ranges, so an invalid byte is seen by match as utf8.RuneError but is
// never rewritten.
func ReverseMatching(s string, match func(rune) bool) string {
	if match == nil || len(s) < 2 {
		return s
	}

	// byte ranges of matching runes, in order
	var spans [][2]int
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if match(r) {
			spans = append(spans, [2]int{i, i + w})
		}
		i += w
	}
	if len(spans) < 2 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	prev := 0
	for k, at := range spans {
		from := spans[len(spans)-1-k]
		sb.WriteString(s[prev:at[0]])
		sb.WriteString(s[from[0]:from[1]])
		prev = at[1]
	}
	sb.WriteString(s[prev:])

	return sb.String()
}
