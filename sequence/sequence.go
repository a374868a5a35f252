package sequence

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsorted indicates that an input expected to be non-decreasing is not.
var ErrUnsorted = errors.New("sequence: input must be sorted in non-decreasing order")

// ProductExceptSelf returns out where out[i] is the product of every element
// of nums except nums[i]. Overflow wraps like ordinary int multiplication.
func ProductExceptSelf(nums []int) []int {
	out := make([]int, len(nums))
	prefix := 1
	for i, v := range nums {
		out[i] = prefix
		prefix *= v
	}

	suffix := 1
	for i := len(nums) - 1; i >= 0; i-- {
		out[i] *= suffix
		suffix *= nums[i]
	}

	return out
}

// IncreasingTriplet reports whether nums holds a strictly increasing
// subsequence of length three.
func IncreasingTriplet(nums []int) bool {
	first, second := math.MaxInt, math.MaxInt
	for _, v := range nums {
		switch {
		case v <= first:
			first = v
		case v <= second:
			second = v
		default:
			return true
		}
	}

	return false
}

// SortedSquares returns the squares of nums in non-decreasing order.
// nums itself must be non-decreasing.
func SortedSquares(nums []int) ([]int, error) {
	for i := 1; i < len(nums); i++ {
		if nums[i] < nums[i-1] {
			return nil, fmt.Errorf("%w: nums[%d]=%d < nums[%d]=%d", ErrUnsorted, i, nums[i], i-1, nums[i-1])
		}
	}

	out := make([]int, len(nums))
	lo, hi := 0, len(nums)-1
	for w := len(nums) - 1; w >= 0; w-- {
		l, h := nums[lo]*nums[lo], nums[hi]*nums[hi]
		if l > h {
			out[w] = l
			lo++
		} else {
			out[w] = h
			hi--
		}
	}

	return out, nil
}
