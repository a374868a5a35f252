// Package stringgcd finds the greatest common divisor of two strings: the
// longest string g such that both inputs are g repeated a whole number of times.
//
// What:
//
//   - GCDOfStrings returns that tiling string, or "" when none exists.
//   - GCD is the integer Euclidean algorithm it is built on.
//   - Repeats reports how many copies of g make up s.
//
// How:
//
//	A common tile exists iff a+b == b+a. When it does, the longest tile has
//	length gcd(len(a), len(b)) and is simply the prefix of a of that length.
//
// Complexity:
//
//   - GCDOfStrings: O(len(a)+len(b)) time and memory (two concatenations).
//   - GCD:          O(log(min(a, b))).
//   - Repeats:      O(len(s)).
//
// Errors: none. Every function is total over its inputs, including "".
package stringgcd
