// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/destinymatrix/node"
	"github.com/katalvlaran/destinymatrix/reduce"
)

// moduloTable: arcana reduction (n mod 22), day and year summed once.
// The graph has no X(-1..-3) or Y(1..3); the health column reaches for
// them and resolves through the fallback list.
var moduloTable = &table{
	variant:   VariantModulo,
	strategy:  reduce.Modulo,
	decompose: decomposeModulo,
	seeds: []formula{
		{target: x(-4), line: LineBase, terms: []operand{prim(baseD, 2)}},
		{target: y(4), line: LineBase, terms: []operand{prim(baseM, 1)}},
		{target: x(5), line: LineBase, terms: []operand{prim(baseY, 4)}},
	},
	estimate: []operand{ref(x(-4))},
	tail: []formula{
		sum(LineTail, y(-1), xy0, y(4)),
		sum(LineTail, y(-3), y(-1), y(4)),
	},
	core: sum(LineCore, xy0, x(-4), y(4), x(5), y(-3)),
	lines: []formula{
		sum(LinePaternal, a(3), x(-4), y(4)),
		sum(LinePaternal, a(-4), x(5), y(-3)),
		sum(LinePaternal, a(1), xy0, a(3)),
		sum(LinePaternal, a(2), a(3), a(1)),
		sum(LinePaternal, a(-2), xy0, a(-4)),
		sum(LinePaternal, a(-3), a(-4), a(-2)),

		sum(LineMaternal, b(3), y(4), x(5)),
		sum(LineMaternal, b(-3), y(-3), x(-4)),
		sum(LineMaternal, b(1), xy0, b(3)),
		sum(LineMaternal, b(2), b(3), b(1)),
		sum(LineMaternal, b(-1), xy0, b(-3)),
		sum(LineMaternal, b(-2), b(-3), b(-1)),

		sum(LineSacral, x(3), xy0, x(5)),
		sum(LineSexuality, x(1), a(-3), a(3)),
		sum(LineSexuality, x(2), xy0, x(1)),
		sum(LineSacral, a(-1), x(3), y(-1)),
		sum(LineSacral, z(1), y(4), x(3)),
		sum(LineSacral, z(-1), y(-3), x(-4)),

		sum(LineHealth, c(1), x(5), y(-3)),
		sum(LineHealth, c(2), x(3), y(-1)),
		sum(LineHealth, c(3), xy0, xy0),
		sum(LineHealth, c(4), x(-1), y(1)),
		sum(LineHealth, c(5), x(-2), y(2)),
		sum(LineHealth, c(6), x(-3), y(3)),
		sum(LineHealth, c(7), x(-4), y(4)),
		sum(LineHealth, c(8), c(1), c(2), c(3), c(4), c(5)),
		sum(LineHealth, c(10), y(4), y(3), y(2), y(1), xy0, y(-1), y(-3)),

		sum(LinePurpose, n(1), x(-4), x(5)),
		sum(LinePurpose, n(2), y(4), y(-3)),
		sum(LinePurpose, n(3), n(1), n(2)),
	},
	fallbacks: []Fallback{
		{Node: c(4), Primary: x(-1), Fallback: x(-4)},
		{Node: c(4), Primary: y(1), Fallback: y(4)},
		{Node: c(5), Primary: x(-2), Fallback: x(-4)},
		{Node: c(5), Primary: y(2), Fallback: y(4)},
		{Node: c(6), Primary: x(-3), Fallback: x(-4)},
		{Node: c(6), Primary: y(3), Fallback: y(4)},
		// the energy aggregate sums the upper Y chain only where it exists
		{Node: c(10), Primary: y(3), Fallback: node.ID{}},
		{Node: c(10), Primary: y(2), Fallback: node.ID{}},
		{Node: c(10), Primary: y(1), Fallback: node.ID{}},
	},
}
