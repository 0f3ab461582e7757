package matrix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/destinymatrix/birthdate"
	"github.com/katalvlaran/destinymatrix/dfs"
	"github.com/katalvlaran/destinymatrix/node"
)

// CompileSuite feeds broken copies of the shipped tables to compile.
type CompileSuite struct {
	suite.Suite
}

func TestCompileSuite(t *testing.T) {
	suite.Run(t, new(CompileSuite))
}

// clone returns a deep enough copy of t to edit its formula lists.
func clone(t *table) *table {
	out := *t
	out.seeds = append([]formula(nil), t.seeds...)
	out.tail = append([]formula(nil), t.tail...)
	out.lines = append([]formula(nil), t.lines...)
	out.fallbacks = append([]Fallback(nil), t.fallbacks...)
	out.estimate = append([]operand(nil), t.estimate...)

	return &out
}

func (s *CompileSuite) rejects(t *table, msg string) {
	_, err := compile(t)
	s.Require().Error(err, msg)
	s.ErrorIs(err, errTable, msg)
}

func (s *CompileSuite) TestShippedTablesCompile() {
	for _, v := range Variants() {
		p, err := compile(programs[v].table)
		s.Require().NoError(err)
		s.Equal(programs[v].order, p.order)
	}
	s.Len(programs[VariantModulo].order, 36)
	s.Len(programs[VariantDigitSum].order, 48)
}

func (s *CompileSuite) TestDuplicateTarget() {
	t := clone(digitSumTable)
	t.lines = append(t.lines, sum(LineHealth, c(1), x(5), y(4)))
	s.rejects(t, "C(1) twice")
}

func (s *CompileSuite) TestUnknownTarget() {
	t := clone(digitSumTable)
	t.lines = append(t.lines, sum(LineHealth, c(11), x(5)))
	s.rejects(t, "C(11) is not in the catalog")
}

func (s *CompileSuite) TestCoreShape() {
	t := clone(moduloTable)
	t.core = sum(LineCore, xy0, x(-4), y(4), x(5))
	s.rejects(t, "three inputs")

	t = clone(moduloTable)
	t.core = sum(LineCore, c(3), x(-4), y(4), x(5), y(-3))
	s.rejects(t, "core target must be XY(0)")
}

func (s *CompileSuite) TestMissingFallback() {
	t := clone(moduloTable)
	t.fallbacks = t.fallbacks[1:] // C(4) loses X(-1)
	s.rejects(t, "X(-1) unresolved")
}

func (s *CompileSuite) TestFallbackForDefinedNode() {
	t := clone(digitSumTable)
	t.fallbacks = append(t.fallbacks, Fallback{Node: c(4), Primary: x(-1), Fallback: x(-4)})
	s.rejects(t, "X(-1) is defined by the digit-sum graph")
}

func (s *CompileSuite) TestFallbackToUndefined() {
	t := clone(moduloTable)
	t.fallbacks[0] = Fallback{Node: c(4), Primary: x(-1), Fallback: x(-2)}
	s.rejects(t, "X(-2) is not defined either")
}

func (s *CompileSuite) TestUnusedFallback() {
	t := clone(moduloTable)
	t.fallbacks = append(t.fallbacks, Fallback{Node: c(7), Primary: y(2), Fallback: y(4)})
	s.rejects(t, "C(7) never reads Y(2)")
}

func (s *CompileSuite) TestOrderViolation() {
	t := clone(moduloTable)
	// A(1) reads A(3); swap them
	t.lines[0], t.lines[2] = t.lines[2], t.lines[0]
	s.rejects(t, "A(1) before A(3)")

	t = clone(digitSumTable)
	t.tail[0], t.tail[1] = t.tail[1], t.tail[0]
	s.rejects(t, "Y(-1) before Y(-3)")
}

func (s *CompileSuite) TestSeedReadsNode() {
	t := clone(moduloTable)
	t.seeds[1] = sum(LineBase, y(4), x(-4))
	s.rejects(t, "seeds read base primitives only")
}

func (s *CompileSuite) TestEstimateReadsLaterNode() {
	t := clone(moduloTable)
	t.estimate = []operand{ref(a(3))}
	s.rejects(t, "A(3) is not available before the fixup")
}

func (s *CompileSuite) TestCoreReadsItself() {
	t := clone(moduloTable)
	t.core = sum(LineCore, xy0, x(-4), y(4), x(5), xy0)
	s.rejects(t, "core self reference")
}

func (s *CompileSuite) TestLineCycle() {
	t := clone(moduloTable)
	// A(3) now reads A(2), which reads A(3)
	t.lines[0] = sum(LinePaternal, a(3), x(-4), a(2))
	s.rejects(t, "cycle outside the core/tail set")
}

// TestCheckGraph_CycleOutsideCore skips the stage replay and hands the
// graph check a line cycle directly.
func (s *CompileSuite) TestCheckGraph_CycleOutsideCore() {
	p, err := compile(clone(moduloTable))
	s.Require().NoError(err)
	p.lines = append([]formula(nil), p.lines...)
	p.lines[0] = sum(LinePaternal, a(3), x(-4), a(2))

	err = p.checkGraph()
	s.Require().ErrorIs(err, errTable)
	s.Contains(err.Error(), "A(1) lies on a cycle outside the core/tail set")
}

// TestGraphCycles checks the plain graphs: the modulo center and tail form
// one cycle, the digit-sum center feeds its tail without reading it back.
func TestGraphCycles(t *testing.T) {
	p := programs[VariantModulo]
	g, err := p.graph(false)
	require.NoError(t, err)
	cyclic, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, cyclic)
	assert.Equal(t, [][]string{{"XY(0)", "Y(-1)", "Y(-3)", "XY(0)"}}, cycles)

	p = programs[VariantDigitSum]
	g, err = p.graph(false)
	require.NoError(t, err)
	cyclic, _, err = dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.False(t, cyclic)

	for _, v := range Variants() {
		g, err = programs[v].graph(true)
		require.NoError(t, err)
		cyclic, _, err = dfs.DetectCycles(g)
		require.NoError(t, err)
		assert.Falsef(t, cyclic, "%s anchored graph", v)
		assert.True(t, g.HasVertex(anchorVertex))
	}
}

// settled runs seed and fixup for d and returns the run with a snapshot of
// the published center and tail.
func settled(t *testing.T, v Variant, d birthdate.Date) (*run, int, map[node.ID]int) {
	t.Helper()
	p := programs[v]
	r := newRun(p, p.table.decompose(d))
	r.seed()
	r.fixup()
	tail := make(map[node.ID]int, len(p.tail))
	for _, f := range p.tail {
		tail[f.target] = r.values[f.target]
	}

	return r, r.values[node.XY0], tail
}

// TestFixup_DigitSumConverges re-anchors the tail on the published center
// for a range of dates: neither the tail nor the center moves.
func TestFixup_DigitSumConverges(t *testing.T) {
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Year() < 2000; day = day.AddDate(0, 0, 3) {
		d, err := birthdate.FromTime(day)
		require.NoError(t, err)

		r, published, tail := settled(t, VariantDigitSum, d)
		assert.Equal(t, published, r.eval(r.prog.core, false), d)

		again := r.pass(published)
		require.Equalf(t, published, again, "%s: re-anchored pass moved the center", d)
		for id, want := range tail {
			require.Equalf(t, want, r.values[id], "%s: re-anchored pass moved %s", d, id)
		}
	}
}

// TestFixup_ModuloDoesNotConverge pins the modulo graph's behavior: Y(-1)
// reads XY(0) directly, so re-anchoring on the published center moves it.
// The published value is the one after exactly two passes.
func TestFixup_ModuloDoesNotConverge(t *testing.T) {
	r, published, tail := settled(t, VariantModulo, birthdate.MustNew(1993, 5, 19))
	assert.Equal(t, 11, r.provisional)
	assert.Equal(t, 2, published)
	assert.Equal(t, map[node.ID]int{node.Y(-1): 16, node.Y(-3): 21}, tail)

	assert.Equal(t, 15, r.pass(published))
	assert.Equal(t, 7, r.values[node.Y(-1)])
	assert.Equal(t, 12, r.values[node.Y(-3)])

	moved := 0
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Year() < 2000; day = day.AddDate(0, 0, 30) {
		d, err := birthdate.FromTime(day)
		require.NoError(t, err)
		r, published, _ := settled(t, VariantModulo, d)
		if r.pass(published) != published {
			moved++
		}
	}
	assert.Positive(t, moved)
}

// TestRun_StageOrder covers the stage assertions.
func TestRun_StageOrder(t *testing.T) {
	p := programs[VariantDigitSum]
	r := newRun(p, p.table.decompose(birthdate.MustNew(1993, 5, 19)))
	assert.Equal(t, StageUninitialized, r.stage)

	assert.Panics(t, func() { r.advance(StageFinalCoreComputed) })
	assert.Panics(t, func() { r.read(node.XY0) })
	assert.Panics(t, func() { r.nodeMap() })

	r.seed()
	assert.Equal(t, StageBasePrimitivesComputed, r.stage)
	r.fixup()
	assert.Equal(t, StageFinalCoreComputed, r.stage)
	assert.Panics(t, func() { r.nodeMap() }, "lines are not computed yet")
	r.derive()
	assert.Equal(t, StageAllNodesComputed, r.stage)
	assert.Equal(t, 48, r.nodeMap().Len())
	assert.Panics(t, func() { r.advance(StageAllNodesComputed) })
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "Uninitialized", StageUninitialized.String())
	assert.Equal(t, "ProvisionalCoreComputed", StageProvisionalCoreComputed.String())
	assert.Equal(t, "AllNodesComputed", StageAllNodesComputed.String())
	assert.Equal(t, "stage(9)", Stage(9).String())
}
