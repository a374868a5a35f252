package stringgcd

import "strings"

// GCDOfStrings returns the longest string g such that a and b are both
// concatenations of g. It returns "" if no such string exists.
//
// Lengths are measured in bytes. Strings that commute under concatenation
// are powers of one primitive word, so the returned prefix always ends on a
// UTF-8 boundary. The empty string is zero copies of any tile, so
// GCDOfStrings("", s) == s.
//
// Example:
//
//	GCDOfStrings("ABCABC", "ABC") // "ABC"
//	GCDOfStrings("ABABAB", "ABAB") // "AB"
//	GCDOfStrings("LEET", "CODE")   // ""
func GCDOfStrings(a, b string) string {
	ab := a + b
	if ab != b+a {
		return ""
	}

	// Slicing ab rather than a keeps GCDOfStrings("", s) == s.
	return ab[:GCD(len(a), len(b))]
}

// GCD returns the greatest common divisor of a and b using the Euclidean
// remainder loop. GCD(0, n) == |n| and GCD(0, 0) == 0.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Repeats reports whether s is g repeated a whole number of times and, if so,
// how many. The empty string is zero copies of any tile, including "".
func Repeats(g, s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	if g == "" || len(s)%len(g) != 0 {
		return 0, false
	}

	k := len(s) / len(g)
	if strings.Repeat(g, k) != s {
		return 0, false
	}

	return k, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
