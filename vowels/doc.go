// Package vowels reverses the order of the vowels in a string while leaving
// every other rune in place.
//
// Vowels are the ASCII letters a, e, i, o, u in either case. Each swapped
// vowel keeps its own case: "hEllo" becomes "hollE".
//
// ReverseMatching generalizes the two-pointer scan to any rune predicate;
// ReverseVowels is ReverseMatching(s, IsVowel).
//
// Complexity: O(n) time, O(n) memory for the rune buffer.
package vowels
