// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/destinymatrix/birthdate"
	"github.com/katalvlaran/destinymatrix/node"
	"github.com/katalvlaran/destinymatrix/reduce"
)

// table is the static definition of one variant.
//
// Stages map onto the fields: seeds run in BasePrimitivesComputed; estimate,
// tail and core run twice in the core fixup; lines run last. Inside tail
// formulas a reference to node.XY0 reads the current anchor (the estimate on
// the first pass, the provisional center on the second), never a published
// value.
type table struct {
	variant   Variant
	strategy  reduce.Strategy
	decompose func(birthdate.Date) Base
	seeds     []formula
	estimate  []operand
	tail      []formula
	core      formula
	lines     []formula
	fallbacks []Fallback
}

// Shorthands for the tables below.
var (
	xy0 = node.XY0
	x   = node.X
	y   = node.Y
	z   = node.Z
	a   = node.A
	b   = node.B
	c   = node.C
	n   = node.N
)
