// Package compress run-length encodes a character slice in place.
//
// Each maximal run of one character is replaced by the character followed by
// the run length in decimal, with the length omitted for runs of one:
//
//	[a a b b c c c] -> [a 2 b 2 c 3]
//	[a b b b b b b b b b b b b] -> [a b 1 2]
//
// Compress needs O(1) extra space: a run of k >= 2 characters never needs
// more than k-1 digits, so the write index never passes the read index.
package compress
