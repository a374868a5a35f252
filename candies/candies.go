package candies

import "errors"

// ErrEmptyInput indicates that the candies slice is empty.
var ErrEmptyInput = errors.New("candies: candies must contain at least one kid")

// KidsWithCandies returns a slice the same length as candies where entry i is
// true iff candies[i]+extra >= max(candies). The input is not modified.
func KidsWithCandies(candies []int, extra int) ([]bool, error) {
	most, err := Max(candies)
	if err != nil {
		return nil, err
	}

	result := make([]bool, len(candies))
	for i, count := range candies {
		result[i] = count+extra >= most
	}

	return result, nil
}

// Max returns the largest count in candies.
func Max(candies []int) (int, error) {
	if len(candies) == 0 {
		return 0, ErrEmptyInput
	}

	most := candies[0]
	for _, count := range candies[1:] {
		if count > most {
			most = count
		}
	}

	return most, nil
}
