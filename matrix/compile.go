// SPDX-License-Identifier: MIT

package matrix

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/destinymatrix/depgraph"
	"github.com/katalvlaran/destinymatrix/dfs"
	"github.com/katalvlaran/destinymatrix/node"
)

// coreArity is the number of upstream inputs of the center XY(0).
const coreArity = 4

// Synthetic vertices used when checking a table as a dependency graph.
const (
	anchorVertex = "~XY(0)" // the anchor the tail reads in place of XY(0)
	basePrefix   = "base:"
)

// program is a compiled, validated table.
type program struct {
	table    *table
	seeds    []formula
	estimate []operand
	tail     []formula
	core     formula
	lines    []formula
	order    []node.ID // publication order: seeds, tail, core, lines
	tailSet  map[node.ID]bool
	deps     *depgraph.Graph // plain dependency graph, read-only after compile
}

var programs = map[Variant]*program{
	VariantModulo:   mustCompile(moduloTable),
	VariantDigitSum: mustCompile(digitSumTable),
}

func tableFor(v Variant) (*table, error) {
	p, err := programFor(v)
	if err != nil {
		return nil, err
	}

	return p.table, nil
}

func programFor(v Variant) (*program, error) {
	p, ok := programs[v]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "%s", v)
	}

	return p, nil
}

func mustCompile(t *table) *program {
	p, err := compile(t)
	if err != nil {
		panic(err)
	}

	return p
}

// compile resolves fallbacks and validates t.
//
// Checks, in order:
//  1. every target is a catalog node and is defined exactly once
//  2. the center has exactly coreArity inputs and XY(0) is the core target
//  3. every reference is defined, or resolved by a Fallback entry; every
//     Fallback entry is used and names an absent primary
//  4. declared order is dependency-first stage by stage
//  5. the anchored dependency graph is acyclic, the declared order is one
//     of its topological orders, and the only cycles of the plain graph
//     run through XY(0) and the tail
func compile(t *table) (*program, error) {
	p := &program{table: t, tailSet: make(map[node.ID]bool, len(t.tail))}

	// 1. Definitions
	defined := make(map[node.ID]bool)
	all := make([]formula, 0, len(t.seeds)+len(t.tail)+1+len(t.lines))
	all = append(all, t.seeds...)
	all = append(all, t.tail...)
	all = append(all, t.core)
	all = append(all, t.lines...)
	for _, f := range all {
		if !node.Known(f.target) {
			return nil, errors.Wrapf(errTable, "%s: %s is not a catalog node", t.variant, f.target)
		}
		if defined[f.target] {
			return nil, errors.Wrapf(errTable, "%s: %s defined twice", t.variant, f.target)
		}
		defined[f.target] = true
		p.order = append(p.order, f.target)
	}
	for _, f := range t.tail {
		p.tailSet[f.target] = true
	}

	// 2. Center shape
	if t.core.target != node.XY0 {
		return nil, errors.Wrapf(errTable, "%s: core target is %s", t.variant, t.core.target)
	}
	if len(t.core.terms) != coreArity {
		return nil, errors.Wrapf(errTable, "%s: core has %d inputs, want %d", t.variant, len(t.core.terms), coreArity)
	}

	// 3. Fallback resolution
	fallbacks := make(map[fallbackKey]Fallback, len(t.fallbacks))
	for _, fb := range t.fallbacks {
		if defined[fb.Primary] {
			return nil, errors.Wrapf(errTable, "%s: fallback for %s in %s but %s is defined",
				t.variant, fb.Primary, fb.Node, fb.Primary)
		}
		if !fb.Drop() && !defined[fb.Fallback] {
			return nil, errors.Wrapf(errTable, "%s: fallback %s is not defined", t.variant, fb.Fallback)
		}
		fallbacks[fb.key()] = fb
	}
	used := make(map[fallbackKey]bool, len(fallbacks))
	resolve := func(f formula) (formula, error) {
		out := formula{target: f.target, line: f.line, terms: make([]operand, 0, len(f.terms))}
		for _, op := range f.terms {
			if op.isBase() || defined[op.node] {
				out.terms = append(out.terms, op)
				continue
			}
			fb, ok := fallbacks[fallbackKey{f.target, op.node}]
			if !ok {
				return formula{}, errors.Wrapf(errTable, "%s: %s reads %s, which is neither defined nor covered by a fallback",
					t.variant, f.target, op.node)
			}
			used[fb.key()] = true
			if !fb.Drop() {
				out.terms = append(out.terms, ref(fb.Fallback))
			}
		}
		if len(out.terms) == 0 {
			return formula{}, errors.Wrapf(errTable, "%s: %s has no inputs left", t.variant, f.target)
		}

		return out, nil
	}
	var err error
	if p.seeds, err = resolveAll(t.seeds, resolve); err != nil {
		return nil, err
	}
	if p.tail, err = resolveAll(t.tail, resolve); err != nil {
		return nil, err
	}
	if p.core, err = resolve(t.core); err != nil {
		return nil, err
	}
	if p.lines, err = resolveAll(t.lines, resolve); err != nil {
		return nil, err
	}
	for _, op := range t.estimate {
		if !op.isBase() && !defined[op.node] {
			return nil, errors.Wrapf(errTable, "%s: estimate reads undefined %s", t.variant, op.node)
		}
	}
	p.estimate = t.estimate
	for k := range fallbacks {
		if !used[k] {
			return nil, errors.Wrapf(errTable, "%s: unused fallback %s in %s", t.variant, k.primary, k.target)
		}
	}

	// 4. Stage order
	if err = p.checkStages(); err != nil {
		return nil, err
	}

	// 5. Graph checks
	if err = p.checkGraph(); err != nil {
		return nil, err
	}

	return p, nil
}

func resolveAll(fs []formula, resolve func(formula) (formula, error)) ([]formula, error) {
	out := make([]formula, len(fs))
	for i, f := range fs {
		r, err := resolve(f)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// checkStages replays the evaluation order and verifies each formula only
// reads nodes that an earlier stage or an earlier formula produced.
func (p *program) checkStages() error {
	v := p.table.variant
	ready := make(map[node.ID]bool, len(p.order))
	step := func(stage string, f formula, anchor bool) error {
		for _, op := range f.terms {
			if op.isBase() {
				continue
			}
			if op.node == node.XY0 && anchor {
				continue
			}
			if !ready[op.node] {
				return errors.Wrapf(errTable, "%s: %s %s reads %s before it is computed", v, stage, f.target, op.node)
			}
		}
		ready[f.target] = true

		return nil
	}

	for _, f := range p.seeds {
		for _, op := range f.terms {
			if !op.isBase() {
				return errors.Wrapf(errTable, "%s: seed %s reads node %s", v, f.target, op.node)
			}
		}
		ready[f.target] = true
	}
	for _, op := range p.estimate {
		if !op.isBase() && !ready[op.node] {
			return errors.Wrapf(errTable, "%s: estimate reads %s before it is computed", v, op.node)
		}
	}
	for _, f := range p.tail {
		if err := step("tail", f, true); err != nil {
			return err
		}
	}
	for _, op := range p.core.terms {
		if !op.isBase() && op.node == node.XY0 {
			return errors.Wrapf(errTable, "%s: core reads itself", v)
		}
	}
	if err := step("core", p.core, false); err != nil {
		return err
	}
	for _, f := range p.lines {
		if err := step(f.line.String(), f, false); err != nil {
			return err
		}
	}

	return nil
}

// checkGraph builds the dependency graph twice: once as written (the tail
// reads XY(0)) and once anchored (the tail reads anchorVertex).
func (p *program) checkGraph() error {
	v := p.table.variant

	plain, err := p.graph(false)
	if err != nil {
		return err
	}
	p.deps = plain
	_, cycles, err := dfs.DetectCycles(plain)
	if err != nil {
		return errors.Wrapf(errTable, "%s: %v", v, err)
	}
	for _, id := range dfs.Members(cycles) {
		if id != node.XY0.String() && !p.tailSet[node.MustParse(id)] {
			return errors.Wrapf(errTable, "%s: %s lies on a cycle outside the core/tail set", v, id)
		}
	}
	for _, cyc := range cycles {
		if !slices.Contains(cyc, node.XY0.String()) {
			return errors.Wrapf(errTable, "%s: cycle %s does not pass through XY(0)", v, dfs.JoinSig(cyc))
		}
	}

	anchored, err := p.graph(true)
	if err != nil {
		return err
	}
	if _, err = dfs.TopologicalSort(anchored); err != nil {
		return errors.Wrapf(errTable, "%s: anchored graph: %v", v, err)
	}
	declared := []string{basePrefix + baseD.String(), basePrefix + baseM.String(), basePrefix + baseY.String()}
	for i, id := range p.order {
		if i == len(p.seeds) {
			declared = append(declared, anchorVertex)
		}
		declared = append(declared, id.String())
	}
	ok, err := dfs.IsTopological(anchored, declared)
	if err != nil {
		return errors.Wrapf(errTable, "%s: %v", v, err)
	}
	if !ok {
		return errors.Wrapf(errTable, "%s: declared order is not topological", v)
	}

	return nil
}

// graph returns the dependency graph of the program. With anchored set,
// tail references to XY(0) point at anchorVertex, which in turn depends on
// the estimate inputs.
func (p *program) graph(anchored bool) (*depgraph.Graph, error) {
	g := depgraph.NewGraph()
	for _, f := range []baseField{baseD, baseM, baseY} {
		if err := g.AddVertex(basePrefix + f.String()); err != nil {
			return nil, err
		}
	}
	if anchored {
		if err := g.AddVertex(anchorVertex); err != nil {
			return nil, err
		}
		for _, op := range p.estimate {
			if err := g.AddEdge(vertexOf(op), anchorVertex); err != nil {
				return nil, err
			}
		}
	}
	add := func(f formula, inTail bool) error {
		if err := g.AddVertex(f.target.String()); err != nil {
			return err
		}
		for _, op := range f.terms {
			from := vertexOf(op)
			if anchored && inTail && !op.isBase() && op.node == node.XY0 {
				from = anchorVertex
			}
			if err := g.AddEdge(from, f.target.String()); err != nil {
				return errors.Wrapf(errTable, "%s: edge %s→%s: %v", p.table.variant, from, f.target, err)
			}
		}

		return nil
	}
	for _, f := range p.seeds {
		if err := add(f, false); err != nil {
			return nil, err
		}
	}
	for _, f := range p.tail {
		if err := add(f, true); err != nil {
			return nil, err
		}
	}
	if err := add(p.core, false); err != nil {
		return nil, err
	}
	for _, f := range p.lines {
		if err := add(f, false); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func vertexOf(op operand) string {
	if op.isBase() {
		return basePrefix + op.base.String()
	}

	return op.node.String()
}
