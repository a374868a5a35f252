// Package lvpuzzles is a collection of small, pure string and array puzzle
// solvers, one package per problem.
//
// Every operation is synchronous and works only on its arguments and local
// scratch memory: no package holds state, so any function may be called from
// any number of goroutines at once.
//
// Packages:
//
//	stringgcd/    — greatest common divisor of two strings
//	candies/      — kids who could hold the most candies
//	reversewords/ — word order reversal, composition and two-pointer strategies
//	vowels/       — two-pointer vowel reversal
//	flowerbed/    — greedy non-adjacent flower placement
//	merge/        — alternate-character merge of two strings
//	compress/     — in-place run-length string compression
//	sequence/     — product except self, increasing triplet, sorted squares
//
// Preconditions that would make an answer meaningless (an empty candies
// slice, a plot that is neither 0 nor 1, a negative flower count, unsorted
// input to SortedSquares) are reported as sentinel errors, checked with
// errors.Is. String operations are total and never fail.
//
//	go get github.com/katalvlaran/lvpuzzles
package lvpuzzles
