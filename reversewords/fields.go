package reversewords

import (
	"slices"
	"strings"
)

// Reverse implements Reverser.
func (Fields) Reverse(s string) string {
	words := strings.Fields(s)
	slices.Reverse(words)

	return strings.Join(words, " ")
}
