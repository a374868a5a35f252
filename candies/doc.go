// Package candies answers "Kids With the Greatest Number of Candies": for each
// kid, could they hold the most candies if given every extra candy?
//
// Usage:
//
//	ok, err := candies.KidsWithCandies([]int{2, 3, 5, 1, 3}, 3)
//	// ok == [true true true false true]
//
// Complexity: O(n) time (one pass for the maximum, one for the answer),
// O(n) memory for the result.
//
// Errors:
//
//   - ErrEmptyInput: the candies slice has no elements, so there is no maximum
//     to compare against.
package candies
