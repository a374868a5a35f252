package merge

import "strings"

// MergeAlternately returns a[0] b[0] a[1] b[1] ... followed by whatever is
// left of the longer string, counting in runes.
func MergeAlternately(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	merged := make([]rune, 0, len(ra)+len(rb))

	i := 0
	for ; i < len(ra) && i < len(rb); i++ {
		merged = append(merged, ra[i], rb[i])
	}
	merged = append(merged, ra[i:]...)
	merged = append(merged, rb[i:]...)

	return string(merged)
}

// MergeAlternatelyASCII is MergeAlternately counting in bytes.
func MergeAlternatelyASCII(a, b string) string {
	var sb strings.Builder
	sb.Grow(len(a) + len(b))

	i := 0
	for ; i < len(a) && i < len(b); i++ {
		sb.WriteByte(a[i])
		sb.WriteByte(b[i])
	}
	sb.WriteString(a[i:])
	sb.WriteString(b[i:])

	return sb.String()
}
