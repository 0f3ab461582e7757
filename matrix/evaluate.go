// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/destinymatrix/node"
)

// Stage is the progress of one evaluation.
type Stage uint8

// Stages in the only order an evaluation may take.
const (
	StageUninitialized Stage = iota
	StageBasePrimitivesComputed
	StageProvisionalCoreComputed
	StageFinalCoreComputed
	StageAllNodesComputed
)

var stageNames = [...]string{
	StageUninitialized:           "Uninitialized",
	StageBasePrimitivesComputed:  "BasePrimitivesComputed",
	StageProvisionalCoreComputed: "ProvisionalCoreComputed",
	StageFinalCoreComputed:       "FinalCoreComputed",
	StageAllNodesComputed:        "AllNodesComputed",
}

// String returns the stage name.
func (s Stage) String() string {
	if int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", uint8(s))
	}

	return stageNames[s]
}

// run is the working state of a single evaluation. It is never shared.
type run struct {
	prog   *program
	base   Base
	stage  Stage
	values map[node.ID]int

	anchor      int // value tail formulas read for XY(0)
	provisional int
}

func newRun(p *program, base Base) *run {
	return &run{prog: p, base: base, values: make(map[node.ID]int, len(p.order))}
}

// advance moves to next, which must directly follow the current stage.
func (r *run) advance(next Stage) {
	if next != r.stage+1 {
		panic(fmt.Sprintf("matrix: stage %s cannot follow %s", next, r.stage))
	}
	r.stage = next
}

// read returns a computed node value. A missing value means the compiled
// order was violated, which compile rules out.
func (r *run) read(id node.ID) int {
	v, ok := r.values[id]
	if !ok {
		panic(fmt.Sprintf("matrix: %s read before it was computed (stage %s)", id, r.stage))
	}

	return v
}

// eval sums the terms of f and reduces the total. When anchored, a
// reference to XY(0) reads r.anchor.
func (r *run) eval(f formula, anchored bool) int {
	total := 0
	for _, op := range f.terms {
		switch {
		case op.isBase():
			total += op.coef * r.base.field(op.base)
		case anchored && op.node == node.XY0:
			total += r.anchor
		default:
			total += r.read(op.node)
		}
	}

	return r.prog.table.strategy.Reduce(total)
}

// seed computes the nodes that depend on the base primitives only.
func (r *run) seed() {
	for _, f := range r.prog.seeds {
		r.values[f.target] = r.eval(f, false)
	}
	r.advance(StageBasePrimitivesComputed)
}

// pass evaluates the tail against anchor and returns the center it implies.
// Tail values are overwritten on every pass.
func (r *run) pass(anchor int) int {
	r.anchor = anchor
	for _, f := range r.prog.tail {
		r.values[f.target] = r.eval(f, true)
	}

	return r.eval(r.prog.core, false)
}

// estimate is the first-pass anchor: the reduced sum of the estimate inputs.
func (r *run) estimate() int {
	total := 0
	for _, op := range r.prog.estimate {
		if op.isBase() {
			total += op.coef * r.base.field(op.base)
			continue
		}
		total += r.read(op.node)
	}

	return r.prog.table.strategy.Reduce(total)
}

// fixup resolves the center and its tail in two passes:
// the estimate anchors the provisional center, the provisional center
// anchors the final tail, and the final tail yields the published center.
func (r *run) fixup() {
	r.provisional = r.pass(r.estimate())
	r.advance(StageProvisionalCoreComputed)

	r.values[node.XY0] = r.pass(r.provisional)
	r.advance(StageFinalCoreComputed)
}

// derive computes every line formula in compiled order.
func (r *run) derive() {
	for _, f := range r.prog.lines {
		r.values[f.target] = r.eval(f, false)
	}
	r.advance(StageAllNodesComputed)
}

// nodeMap freezes the values. Only a completed run can be published.
func (r *run) nodeMap() NodeMap {
	if r.stage != StageAllNodesComputed {
		panic(fmt.Sprintf("matrix: publishing at stage %s", r.stage))
	}
	values := make([]int, len(r.prog.order))
	for i, id := range r.prog.order {
		values[i] = r.read(id)
	}

	return NodeMap{variant: r.prog.table.variant, ids: r.prog.order, values: values}
}

// compute runs all stages for base.
func (p *program) compute(base Base) NodeMap {
	r := newRun(p, base)
	r.seed()
	r.fixup()
	r.derive()

	return r.nodeMap()
}
