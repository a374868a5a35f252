// Package reversewords reverses the order of words in a string, normalizing
// whitespace on the way: the result has no leading or trailing whitespace and
// exactly one space between words.
//
// Two strategies implement the same Reverser contract:
//
//   - Fields (composition): strings.Fields, reverse the slice, strings.Join.
//   - TwoPointer (manual): trim, reverse every character, re-reverse each word in
//     place, then compact whitespace runs with a read/write pointer pair.
//
// Both decode s with the same UTF-8 rules, treat any unicode.IsSpace rune as
// whitespace, and produce identical output for every input. Bytes that are
// not valid UTF-8 belong to words and are copied through unchanged.
// ReverseWords uses TwoPointer.
//
// Complexity: O(n) time for both. Fields allocates one string per word;
// TwoPointer allocates one slice entry per character.
package reversewords
