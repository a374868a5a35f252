package reversewords

// Reverser reverses the word order of s. A word is a maximal run of
// non-whitespace runes. Implementations must return words separated by a
// single ' ' with no leading or trailing whitespace.
type Reverser interface {
	Reverse(s string) string
}

// Fields reverses words by splitting, reversing and joining.
type Fields struct{}

// TwoPointer reverses words inside a single rune buffer.
type TwoPointer struct{}

var (
	_ Reverser = Fields{}
	_ Reverser = TwoPointer{}
)

// Strategies returns every Reverser implementation in this package.
func Strategies() []Reverser {
	return []Reverser{Fields{}, TwoPointer{}}
}

// ReverseWords reverses the word order of s using TwoPointer.
func ReverseWords(s string) string {
	return TwoPointer{}.Reverse(s)
}
