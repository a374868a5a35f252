package reversewords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reverse implements Reverser.
//
// The buffer holds one entry per decoded character: the original bytes of a
// rune, or a single byte where s is not valid UTF-8. Moving whole entries
// keeps every byte of s intact.
//
// Algorithm:
//  1. Trim whitespace from both ends and reverse the whole buffer. Word order
//     is now correct but every word is spelled backwards.
//  2. Walk the buffer and reverse each word back in place.
//  3. Compact: copy non-space entries from read to write, collapse each
//     whitespace run into a single " ", and truncate at the write index.
func (TwoPointer) Reverse(s string) string {
	chars := split(s)

	lo, hi := 0, len(chars)
	for lo < hi && isSpace(chars[lo]) {
		lo++
	}
	for hi > lo && isSpace(chars[hi-1]) {
		hi--
	}
	chars = chars[lo:hi]
	reverse(chars, 0, len(chars))

	n := len(chars)
	for start := 0; start < n; {
		for start < n && isSpace(chars[start]) {
			start++
		}
		end := start
		for end < n && !isSpace(chars[end]) {
			end++
		}
		reverse(chars, start, end)
		start = end + 1
	}

	write := 0
	for read := 0; read < n; {
		if !isSpace(chars[read]) {
			chars[write] = chars[read]
			write++
			read++
			continue
		}
		for read < n && isSpace(chars[read]) {
			read++
		}
		// Trimmed input never ends in whitespace, so a separator is always
		// followed by a word.
		if read < n {
			chars[write] = " "
			write++
		}
	}

	return strings.Join(chars[:write], "")
}

// split cuts s into its decoded characters, each a substring of s.
func split(s string) []string {
	chars := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, w := utf8.DecodeRuneInString(s[i:])
		chars = append(chars, s[i:i+w])
		i += w
	}

	return chars
}

// isSpace reports whether the character c is whitespace. Invalid bytes decode
// to utf8.RuneError, which is not.
func isSpace(c string) bool {
	r, _ := utf8.DecodeRuneInString(c)
	return unicode.IsSpace(r)
}

// reverse reverses chars[i:j] in place.
func reverse(chars []string, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
}
