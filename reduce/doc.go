// Package reduce canonicalizes arbitrary integers into the arcana range
// [1,22], the value domain of every Destiny Matrix node.
//
// What:
//
//   - Modulo:   m = n mod 22, with 0 mapped to 22 and negatives wrapped.
//   - DigitSum: |n| if it already fits, otherwise the decimal digit sum,
//     summed a second time when the first sum still exceeds 22.
//   - SumDigits: the plain decimal digit sum used by date decomposition.
//
// Both strategies are total over int (0, negatives and math.MinInt included),
// keep the master number 22 as a fixed point, and are idempotent:
//
//	s.Reduce(s.Reduce(n)) == s.Reduce(n)
//
// The two strategies disagree on most inputs above 22 (Modulo(46) == 2,
// DigitSum(46) == 10) and are never mixed inside one evaluation; callers pick
// one through a Strategy value.
//
// Complexity: O(digits) time, O(1) memory, no allocations.
package reduce
