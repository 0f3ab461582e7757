// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/destinymatrix/bfs"
	"github.com/katalvlaran/destinymatrix/node"
)

var (
	// ErrNodeNotInVariant indicates a node the variant's graph does not define.
	ErrNodeNotInVariant = errors.New("matrix: node not defined by variant")

	// ErrNoPath indicates that one node is not computed from another.
	ErrNoPath = errors.New("matrix: no dependency path")
)

// Trace is one node reached from a traced node, with its distance in
// formula steps.
type Trace struct {
	Node  node.ID `json:"node" yaml:"node"`
	Depth int     `json:"depth" yaml:"depth"`
}

// TraceOption configures Dependents, Dependencies and Path.
type TraceOption func(*traceConfig)

type traceConfig struct {
	ctx   context.Context
	depth int
}

// WithTraceContext lets ctx cancel the walk.
func WithTraceContext(ctx context.Context) TraceOption {
	return func(c *traceConfig) { c.ctx = ctx }
}

// WithDepth stops the walk n formula steps away from the traced node.
// 0 means no limit. Panics if n < 0.
func WithDepth(n int) TraceOption {
	if n < 0 {
		panic("matrix: WithDepth must not be negative")
	}

	return func(c *traceConfig) { c.depth = n }
}

// Dependents returns every node whose value is computed, directly or
// transitively, from id under v, nearest first. id itself is excluded.
// Through the center and its tail the walk follows the written formulas,
// so for VariantModulo the tail reaches back to XY(0).
func Dependents(v Variant, id node.ID, opts ...TraceOption) ([]Trace, error) {
	return trace(v, id, false, opts)
}

// Dependencies returns every node id reads, directly or transitively,
// nearest first. Base primitives are not nodes and are omitted.
func Dependencies(v Variant, id node.ID, opts ...TraceOption) ([]Trace, error) {
	return trace(v, id, true, opts)
}

// Path returns the shortest chain of formulas through which from feeds
// to, both ends included. It fails with ErrNoPath when to is not computed
// from from.
func Path(v Variant, from, to node.ID, opts ...TraceOption) ([]node.ID, error) {
	p, err := traceable(v, from, to)
	if err != nil {
		return nil, err
	}
	if from == to {
		return []node.ID{from}, nil
	}
	res, err := bfs.BFS(p.deps, from.String(), walkOptions(false, opts, nil)...)
	if err != nil {
		return nil, err
	}
	chain, err := res.PathTo(to.String())
	if err != nil {
		return nil, errors.Wrapf(ErrNoPath, "%s to %s in %s", from, to, v)
	}

	out := make([]node.ID, len(chain))
	for i, s := range chain {
		out[i] = node.MustParse(s)
	}

	return out, nil
}

func trace(v Variant, id node.ID, reverse bool, opts []TraceOption) ([]Trace, error) {
	p, err := traceable(v, id)
	if err != nil {
		return nil, err
	}

	var out []Trace
	start := id.String()
	collect := func(vid string, depth int) error {
		if vid != start {
			out = append(out, Trace{Node: node.MustParse(vid), Depth: depth})
		}
		return nil
	}
	if _, err = bfs.BFS(p.deps, start, walkOptions(reverse, opts, collect)...); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Trace{}
	}

	return out, nil
}

// traceable resolves v and checks that it defines every id.
func traceable(v Variant, ids ...node.ID) (*program, error) {
	p, err := programFor(v)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if !p.deps.HasVertex(id.String()) {
			return nil, errors.Wrapf(ErrNodeNotInVariant, "%s in %s", id, v)
		}
	}

	return p, nil
}

// walkOptions translates trace options to a bfs walk that never enters
// the base primitive vertices.
func walkOptions(reverse bool, opts []TraceOption, visit func(string, int) error) []bfs.Option {
	cfg := traceConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := []bfs.Option{
		bfs.WithContext(cfg.ctx),
		bfs.WithMaxDepth(cfg.depth),
		bfs.WithFilterNeighbor(func(_, nbr string) bool {
			return !strings.HasPrefix(nbr, basePrefix)
		}),
	}
	if reverse {
		out = append(out, bfs.WithReverse())
	}
	if visit != nil {
		out = append(out, bfs.WithOnVisit(visit))
	}

	return out
}
