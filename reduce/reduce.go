package reduce

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Master is the master number: the upper bound of the range and the image of 0.
	Master = 22

	// Min is the lower bound of the range.
	Min = 1
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
var ErrUnknownStrategy = errors.New("reduce: unknown strategy")

// Strategy selects one of the two reduction rules.
// The zero value is not a valid strategy.
type Strategy uint8

const (
	// Modulo reduces by n mod 22.
	Modulo Strategy = iota + 1

	// DigitSum reduces by repeated decimal digit summation.
	DigitSum
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Modulo:
		return "modulo"
	case DigitSum:
		return "digitsum"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s == Modulo || s == DigitSum
}

// Reduce applies the strategy to n.
// It panics on an invalid Strategy; callers that accept external input
// validate with Valid or ParseStrategy first.
func (s Strategy) Reduce(n int) int {
	switch s {
	case Modulo:
		return ReduceModulo(n)
	case DigitSum:
		return ReduceDigitSum(n)
	default:
		panic(fmt.Sprintf("reduce: Reduce called on invalid %s", s))
	}
}

// ParseStrategy resolves a strategy by name, ignoring case and surrounding spaces.
// "digit-sum" and "digit_sum" are accepted as aliases of "digitsum".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "modulo", "mod":
		return Modulo, nil
	case "digitsum", "digit-sum", "digit_sum":
		return DigitSum, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ReduceModulo maps n into [1,22] by n mod 22.
// A zero remainder maps to 22; a negative remainder is wrapped by +22.
//
//	ReduceModulo(44) == 22, ReduceModulo(0) == 22, ReduceModulo(-1) == 21
func ReduceModulo(n int) int {
	m := n % Master
	if m == 0 {
		return Master
	}
	if m < 0 {
		// m is in [-21,-1], so m+22 is in [1,21]
		m += Master
	}

	return m
}

// ReduceDigitSum maps n into [1,22] by digit summation.
//
// 0 maps to 22; |n| <= 22 is returned as is; otherwise the decimal digits of
// |n| are summed, and summed once more if the first sum is still above 22.
//
//	ReduceDigitSum(1993) == 22, ReduceDigitSum(46) == 10, ReduceDigitSum(-7) == 7
func ReduceDigitSum(n int) int {
	if n == 0 {
		return Master
	}
	a := abs(n)
	if a <= Master {
		return int(a)
	}
	s := digitSum(a)
	if s <= Master {
		return int(s)
	}
	// an int has at most 19 digits, so s <= 171 and its digit sum is <= 17
	s = digitSum(s)
	if s == 0 {
		return Master
	}

	return int(s)
}

// SumDigits returns the decimal digit sum of |n|. SumDigits(0) == 0.
// It performs no range reduction.
func SumDigits(n int) int {
	return int(digitSum(abs(n)))
}

// abs returns |n| as uint64, which is exact for math.MinInt.
func abs(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}

func digitSum(a uint64) uint64 {
	var s uint64
	for a > 0 {
		s += a % 10
		a /= 10
	}

	return s
}
