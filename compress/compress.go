package compress

import "strconv"

// Compress encodes chars in place and returns the encoded length. After the
// call chars[:n] holds the result; the rest of chars is unspecified.
func Compress(chars []rune) int {
	write := 0
	for read := 0; read < len(chars); {
		c := chars[read]
		end := read
		for end < len(chars) && chars[end] == c {
			end++
		}

		chars[write] = c
		write++
		if count := end - read; count > 1 {
			for _, d := range strconv.Itoa(count) {
				chars[write] = d
				write++
			}
		}
		read = end
	}

	return write
}
