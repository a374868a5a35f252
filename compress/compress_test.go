package compress_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvpuzzles/compress"
)

// TestCompress covers single runs, multi-digit counts and multibyte characters.
func TestCompress(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"aabbccc", "a2b2c3"},
		{"a", "a"},
		{"abbbbbbbbbbbb", "ab12"},
		{"", ""},
		{"abc", "abc"},
		{"aaabaa", "a3ba2"},
		{strings.Repeat("z", 100), "z100"},
		{"ééé日", "é3日"},
	}
	for _, tt := range tests {
		chars := []rune(tt.in)
		n := compress.Compress(chars)
		assert.Equal(t, tt.want, string(chars[:n]), "Compress(%q)", tt.in)
		assert.LessOrEqual(t, n, len([]rune(tt.in)))
	}
}
