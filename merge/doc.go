// Package merge interleaves two strings character by character.
//
//	MergeAlternately("abc", "pqrs") // "apbqcrs"
//
// MergeAlternately works on runes and is correct for any UTF-8 input.
// MergeAlternatelyASCII works on bytes; it avoids the rune conversion but only
// gives the same answer when both inputs are ASCII.
package merge
