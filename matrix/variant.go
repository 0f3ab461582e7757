// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/destinymatrix/reduce"
)

// Variant selects one of the two independent algorithms.
// The zero value is invalid.
type Variant uint8

const (
	// VariantModulo digit-sums day and year once and reduces modulo 22.
	VariantModulo Variant = iota + 1

	// VariantDigitSum keeps the raw day and reduces by repeated digit sums.
	VariantDigitSum
)

// Variants returns all known variants in declaration order.
func Variants() []Variant {
	return []Variant{VariantModulo, VariantDigitSum}
}

// String returns the variant name used by ParseVariant.
func (v Variant) String() string {
	switch v {
	case VariantModulo:
		return "modulo"
	case VariantDigitSum:
		return "digitsum"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantModulo || v == VariantDigitSum
}

// Strategy returns the reduction strategy bound to v.
func (v Variant) Strategy() reduce.Strategy {
	switch v {
	case VariantModulo:
		return reduce.Modulo
	case VariantDigitSum:
		return reduce.DigitSum
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, errors.Wrapf(ErrUnknownVariant, "%d", uint8(v))
	}

	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

// ParseVariant resolves a variant by name, case-insensitively.
// Strategy aliases accepted by reduce.ParseStrategy work as well.
func ParseVariant(name string) (Variant, error) {
	s, err := reduce.ParseStrategy(name)
	if err != nil {
		return 0, errors.WithHint(
			errors.Wrapf(ErrUnknownVariant, "%q", strings.TrimSpace(name)),
			"known variants: modulo, digitsum",
		)
	}
	switch s {
	case reduce.Modulo:
		return VariantModulo, nil
	default:
		return VariantDigitSum, nil
	}
}
