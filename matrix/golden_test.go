package matrix_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/destinymatrix/matrix"
	"github.com/katalvlaran/destinymatrix/node"
)

// goldenCase is one published node map, written as "ID=value" pairs in
// evaluation order.
type goldenCase struct {
	date    string
	variant matrix.Variant
	base    matrix.Base
	nodes   string
}

var goldenCases = []goldenCase{
	{
		date: "1993-05-19", variant: matrix.VariantModulo, base: matrix.Base{D: 10, M: 5, Y: 22},
		nodes: `X(-4)=20 Y(4)=5 X(5)=22 Y(-1)=16 Y(-3)=21 XY(0)=2
			A(3)=3 A(-4)=21 A(1)=5 A(2)=8 A(-2)=1 A(-3)=22
			B(3)=5 B(-3)=19 B(1)=7 B(2)=12 B(-1)=21 B(-2)=18
			X(3)=2 X(1)=3 X(2)=5 A(-1)=18 Z(1)=7 Z(-1)=19
			C(1)=21 C(2)=18 C(3)=4 C(4)=3 C(5)=3 C(6)=3 C(7)=3 C(8)=5 C(10)=22
			N(1)=20 N(2)=4 N(3)=2`,
	},
	{
		date: "2005-05-31", variant: matrix.VariantModulo, base: matrix.Base{D: 4, M: 5, Y: 7},
		nodes: `X(-4)=8 Y(4)=5 X(5)=6 Y(-1)=20 Y(-3)=3 XY(0)=22
			A(3)=13 A(-4)=9 A(1)=13 A(2)=4 A(-2)=9 A(-3)=18
			B(3)=11 B(-3)=11 B(1)=11 B(2)=22 B(-1)=11 B(-2)=22
			X(3)=6 X(1)=9 X(2)=9 A(-1)=4 Z(1)=11 Z(-1)=11
			C(1)=9 C(2)=4 C(3)=22 C(4)=13 C(5)=13 C(6)=13 C(7)=13 C(8)=17 C(10)=6
			N(1)=14 N(2)=8 N(3)=22`,
	},
	{
		date: "2000-01-29", variant: matrix.VariantModulo, base: matrix.Base{D: 11, M: 1, Y: 2},
		nodes: `X(-4)=22 Y(4)=1 X(5)=8 Y(-1)=12 Y(-3)=13 XY(0)=22
			A(3)=1 A(-4)=21 A(1)=1 A(2)=2 A(-2)=21 A(-3)=20
			B(3)=9 B(-3)=13 B(1)=9 B(2)=18 B(-1)=13 B(-2)=4
			X(3)=8 X(1)=21 X(2)=21 A(-1)=20 Z(1)=9 Z(-1)=13
			C(1)=21 C(2)=20 C(3)=22 C(4)=1 C(5)=1 C(6)=1 C(7)=1 C(8)=21 C(10)=4
			N(1)=8 N(2)=14 N(3)=22`,
	},
	{
		date: "1993-05-19", variant: matrix.VariantDigitSum, base: matrix.Base{D: 19, M: 5, Y: 22},
		nodes: `X(-4)=19 Y(4)=5 X(5)=22 Y(-3)=10 Y(-1)=21 XY(0)=11
			X(4)=6 X(3)=17 Y(-2)=4 A(-1)=11 Z(1)=10 Z(-1)=5
			X(-3)=3 X(-2)=14 X(-1)=7 Y(3)=16 Y(2)=9 Y(1)=20
			A(3)=6 A(-4)=5 A(1)=17 A(2)=5 A(-2)=16 A(-3)=21
			B(3)=9 B(-3)=11 B(1)=20 B(2)=11 B(-1)=22 B(-2)=6
			X(1)=4 X(2)=15
			N(1)=15 N(2)=5 N(3)=20 N(4)=11 N(5)=20 N(6)=4 N(7)=6
			C(1)=5 C(2)=10 C(3)=22 C(4)=9 C(5)=5 C(6)=19 C(7)=6 C(8)=13 C(9)=15`,
	},
	{
		date: "2005-05-31", variant: matrix.VariantDigitSum, base: matrix.Base{D: 31, M: 5, Y: 7},
		nodes: `X(-4)=4 Y(4)=5 X(5)=7 Y(-3)=7 Y(-1)=12 XY(0)=5
			X(4)=12 X(3)=17 Y(-2)=19 A(-1)=11 Z(1)=10 Z(-1)=5
			X(-3)=9 X(-2)=14 X(-1)=19 Y(3)=10 Y(2)=15 Y(1)=20
			A(3)=9 A(-4)=14 A(1)=14 A(2)=5 A(-2)=19 A(-3)=6
			B(3)=12 B(-3)=11 B(1)=17 B(2)=11 B(-1)=16 B(-2)=9
			X(1)=10 X(2)=15
			N(1)=12 N(2)=11 N(3)=5 N(4)=5 N(5)=5 N(6)=10 N(7)=15
			C(1)=14 C(2)=4 C(3)=10 C(4)=12 C(5)=11 C(6)=19 C(7)=9 C(8)=16 C(9)=12`,
	},
	{
		date: "2000-01-29", variant: matrix.VariantDigitSum, base: matrix.Base{D: 29, M: 1, Y: 2},
		nodes: `X(-4)=11 Y(4)=1 X(5)=2 Y(-3)=5 Y(-1)=15 XY(0)=10
			X(4)=12 X(3)=22 Y(-2)=20 A(-1)=10 Z(1)=5 Z(-1)=7
			X(-3)=21 X(-2)=4 X(-1)=14 Y(3)=11 Y(2)=21 Y(1)=4
			A(3)=12 A(-4)=7 A(1)=22 A(2)=7 A(-2)=17 A(-3)=6
			B(3)=3 B(-3)=16 B(1)=13 B(2)=16 B(-1)=8 B(-2)=6
			X(1)=11 X(2)=21
			N(1)=6 N(2)=13 N(3)=19 N(4)=19 N(5)=19 N(6)=11 N(7)=3
			C(1)=7 C(2)=5 C(3)=20 C(4)=18 C(5)=7 C(6)=5 C(7)=12 C(8)=11 C(9)=15`,
	},
}

// entry is one expected (identifier, value) pair.
type entry struct {
	id    node.ID
	value int
}

// parseGolden splits a goldenCase.nodes string into ordered entries.
func parseGolden(t *testing.T, s string) []entry {
	t.Helper()
	var out []entry
	for _, field := range strings.Fields(s) {
		key, val, ok := strings.Cut(field, "=")
		require.Truef(t, ok, "malformed pair %q", field)
		v, err := strconv.Atoi(val)
		require.NoError(t, err)
		out = append(out, entry{id: node.MustParse(key), value: v})
	}

	return out
}
