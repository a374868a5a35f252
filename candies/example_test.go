package candies_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpuzzles/candies"
)

// ExampleKidsWithCandies marks which kids could reach the top count.
func ExampleKidsWithCandies() {
	ok, err := candies.KidsWithCandies([]int{2, 3, 5, 1, 3}, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)

	_, err = candies.KidsWithCandies(nil, 3)
	fmt.Println(errors.Is(err, candies.ErrEmptyInput))
	// Output:
	// [true true true false true]
	// true
}
