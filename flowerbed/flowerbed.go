package flowerbed

import (
	"fmt"
	"math"
)

// CanPlaceFlowers reports whether at least n new flowers can be planted in
// flowerbed with no two flowers adjacent.
//
// n == 0 always succeeds, even for an empty bed. For n < 0 the Negative
// option decides the outcome. The bed is validated before planting starts.
//
// Example:
//
//	ok, _ := CanPlaceFlowers([]int{1, 0, 0, 0, 1}, 1) // true
//	ok, _ = CanPlaceFlowers([]int{1, 0, 0, 0, 1}, 2)  // false
func CanPlaceFlowers(flowerbed []int, n int, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	// |math.MinInt| does not fit in an int; no bed holds that many flowers.
	unbounded := false
	if n < 0 {
		switch o.Negative {
		case Magnitude:
			unbounded = n == math.MinInt
			n = -n
		case Vacuous:
			return true, nil
		default:
			return false, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
		}
	}
	if n == 0 {
		return true, nil
	}
	if err := validate(flowerbed); err != nil {
		return false, err
	}
	if unbounded || n > (len(flowerbed)+1)/2 {
		return false, nil
	}

	return plant(flowerbed, n) >= n, nil
}

// Placements returns, in ascending order, the plots a full greedy pass
// plants. Its length is the most flowers the greedy pass can add.
func Placements(flowerbed []int) ([]int, error) {
	if err := validate(flowerbed); err != nil {
		return nil, err
	}

	chosen := make([]bool, len(flowerbed))
	plantInto(flowerbed, chosen, len(flowerbed))

	var out []int
	for i, c := range chosen {
		if c {
			out = append(out, i)
		}
	}

	return out, nil
}

// validate checks that every plot is Empty or Occupied.
func validate(flowerbed []int) error {
	for i, v := range flowerbed {
		if v != Empty && v != Occupied {
			return fmt.Errorf("%w: plot %d holds %d", ErrInvalidSlot, i, v)
		}
	}

	return nil
}

// plant runs the greedy pass with a fresh scratch set and returns how many
// plots it chose, stopping once limit is reached.
func plant(flowerbed []int, limit int) int {
	return plantInto(flowerbed, make([]bool, len(flowerbed)), limit)
}

// plantInto marks chosen plots in chosen and returns their count.
func plantInto(flowerbed []int, chosen []bool, limit int) int {
	taken := func(i int) bool {
		return i >= 0 && i < len(flowerbed) && (flowerbed[i] == Occupied || chosen[i])
	}

	count := 0
	for i := range flowerbed {
		if count >= limit {
			break
		}
		if flowerbed[i] == Occupied || taken(i-1) || taken(i+1) {
			continue
		}
		chosen[i] = true
		count++
	}

	return count
}
