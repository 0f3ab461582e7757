// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/destinymatrix/reduce"

// digitSumTable: repeated digit-sum reduction over the raw day.
// Tail and core sum the base primitives directly, so a day of 31 enters
// them as 31 even though X(-4) shows its reduced form.
var digitSumTable = &table{
	variant:   VariantDigitSum,
	strategy:  reduce.DigitSum,
	decompose: decomposeDigitSum,
	seeds: []formula{
		{target: x(-4), line: LineBase, terms: []operand{prim(baseD, 1)}},
		{target: y(4), line: LineBase, terms: []operand{prim(baseM, 1)}},
		{target: x(5), line: LineBase, terms: []operand{prim(baseY, 1)}},
	},
	estimate: []operand{ref(x(-4)), ref(y(4)), ref(x(5))},
	tail: []formula{
		{target: y(-3), line: LineTail, terms: []operand{prim(baseD, 1), prim(baseM, 1), prim(baseY, 1)}},
		sum(LineTail, y(-1), xy0, y(-3)),
	},
	core: formula{
		target: xy0,
		line:   LineCore,
		terms:  []operand{prim(baseD, 1), prim(baseM, 1), prim(baseY, 1), ref(y(-3))},
	},
	lines: []formula{
		sum(LineSacral, x(4), x(5), xy0),
		sum(LineSacral, x(3), x(4), xy0),
		sum(LineSacral, y(-2), y(-3), y(-1)),
		sum(LineSacral, a(-1), x(3), y(-1)),
		sum(LineSacral, z(1), a(-1), x(3)),
		sum(LineSacral, z(-1), a(-1), y(-1)),

		sum(LineThroatHeartEye, x(-3), xy0, x(-4)),
		sum(LineThroatHeartEye, x(-2), xy0, x(-3)),
		sum(LineThroatHeartEye, x(-1), xy0, x(-2)),
		sum(LineThroatHeartEye, y(3), xy0, y(4)),
		sum(LineThroatHeartEye, y(2), xy0, y(3)),
		sum(LineThroatHeartEye, y(1), xy0, y(2)),

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

		sum(LineSexuality, x(1), a(3), a(-4), b(3), b(-3)),
		sum(LineSexuality, x(2), xy0, x(1)),

		sum(LinePurpose, n(1), y(4), y(-3)),
		sum(LinePurpose, n(2), x(-4), x(5)),
		sum(LinePurpose, n(3), n(1), n(2)),
		sum(LinePurpose, n(4), a(3), a(-4)),
		sum(LinePurpose, n(5), b(3), b(-3)),
		sum(LinePurpose, n(6), n(4), n(5)),
		sum(LinePurpose, n(7), n(3), n(6)),

		sum(LineHealth, c(1), x(5), y(-3)),
		sum(LineHealth, c(2), x(4), y(-2)),
		sum(LineHealth, c(3), xy0, xy0),
		sum(LineHealth, c(4), x(-1), y(1)),
		sum(LineHealth, c(5), x(-2), y(2)),
		sum(LineHealth, c(6), x(-3), y(3)),
		sum(LineHealth, c(7), x(-4), y(4)),
		sum(LineHealth, c(8), c(1), c(2), c(3), c(4), c(5), c(6), c(7)),
		sum(LineHealth, c(9), y(4), y(3), y(2), y(1), xy0, y(-1), y(-2), y(-3)),
	},
	// every referenced node is defined, so nothing falls back
	fallbacks: nil,
}
