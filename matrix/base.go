// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/destinymatrix/birthdate"
	"github.com/katalvlaran/destinymatrix/reduce"
)

// Base holds the primitives extracted from a birth date.
// Depending on the variant D and Y are raw or digit-summed; M is always the
// calendar month.
type Base struct {
	D int `json:"d" yaml:"d"`
	M int `json:"m" yaml:"m"`
	Y int `json:"y" yaml:"y"`
}

// Decompose extracts the base primitives of d for variant v.
//
//	VariantModulo:   D = SumDigits(day), M = month, Y = SumDigits(year)
//	VariantDigitSum: D = day,            M = month, Y = DigitSum(year)
//
// Under VariantDigitSum the day is not reduced: 31 stays 31 and flows into
// the tail and core sums as such. A year whose digit sum is 22 keeps 22.
func Decompose(d birthdate.Date, v Variant) (Base, error) {
	if d.IsZero() {
		return Base{}, zeroDateError()
	}
	t, err := tableFor(v)
	if err != nil {
		return Base{}, err
	}

	return t.decompose(d), nil
}

func decomposeModulo(d birthdate.Date) Base {
	return Base{
		D: reduce.SumDigits(d.Day()),
		M: d.Month(),
		Y: reduce.SumDigits(d.Year()),
	}
}

func decomposeDigitSum(d birthdate.Date) Base {
	return Base{
		D: d.Day(),
		M: d.Month(),
		Y: reduce.ReduceDigitSum(d.Year()),
	}
}

// field returns the primitive selected by f.
func (b Base) field(f baseField) int {
	switch f {
	case baseD:
		return b.D
	case baseM:
		return b.M
	default:
		return b.Y
	}
}

func zeroDateError() error {
	return &birthdate.FieldError{
		Field: birthdate.FieldDate,
		Value: "",
		Err:   birthdate.ErrInvalidDateFormat,
	}
}
