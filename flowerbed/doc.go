// Package flowerbed decides whether n new flowers fit into a flowerbed
// without any two flowers ending up in adjacent plots.
//
// What:
//
//   - A flowerbed is a []int of plots: 0 is empty, 1 holds a flower.
//   - CanPlaceFlowers reports whether at least n more flowers can be planted.
//   - Placements lists the plots a full greedy pass would plant.
//
// How:
//
//	One left-to-right greedy pass. A plot is plantable when it is empty and
//	neither neighbor (where one exists) holds a flower or was already chosen
//	in this pass. Choices live in a call-scoped scratch set; the caller's
//	slice is never modified. CanPlaceFlowers stops as soon as n plots are
//	chosen.
//
// Options:
//
//   - WithNegativeCount(policy): how a negative n is treated. The default,
//     RejectNegative, returns ErrNegativeCount.
//
// Complexity: O(len(flowerbed)) time and memory.
//
// Errors:
//
//   - ErrInvalidSlot:     a plot holds a value other than 0 or 1.
//   - ErrNegativeCount:   n < 0 under RejectNegative.
//   - ErrOptionViolation: an option was given a meaningless value.
package flowerbed
