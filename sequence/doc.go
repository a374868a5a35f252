// Package sequence holds single-pass solvers over integer slices.
//
//   - ProductExceptSelf: every position's product of all other elements,
//     without division, via a prefix pass and a suffix pass.
//   - IncreasingTriplet: whether some i < j < k has nums[i] < nums[j] < nums[k],
//     tracking the smallest and second-smallest tails seen so far.
//   - SortedSquares: squares of a sorted slice, kept sorted by merging from
//     both ends toward the middle.
//
// All run in O(n) time. None modify their input.
//
// Errors:
//
//   - ErrUnsorted: SortedSquares was given a slice that is not non-decreasing.
package sequence
