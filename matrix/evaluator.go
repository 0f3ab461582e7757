// SPDX-License-Identifier: MIT

package matrix

import (
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/katalvlaran/destinymatrix/birthdate"
	"github.com/katalvlaran/destinymatrix/node"
)

// Report describes one completed evaluation.
type Report struct {
	Variant Variant
	Date    birthdate.Date
	Base    Base
	Nodes   NodeMap
	Cached  bool // served from the evaluator's cache
}

// Observer receives a Report after every successful evaluation.
// It runs synchronously on the evaluating goroutine and must not block.
// Failed evaluations are never reported.
type Observer interface {
	Observe(Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Report)

// Observe calls f(r).
func (f ObserverFunc) Observe(r Report) { f(r) }

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithObserver registers o. Panics if o is nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("matrix: WithObserver(nil)")
	}

	return func(e *Evaluator) { e.observers = append(e.observers, o) }
}

// WithCache memoizes up to size results per evaluator. Panics if size <= 0.
func WithCache(size int) Option {
	if size <= 0 {
		panic("matrix: WithCache size must be positive")
	}

	return func(e *Evaluator) { e.cacheSize = size }
}

// Evaluator computes node maps. It is safe for concurrent use.
type Evaluator struct {
	observers []Observer
	cacheSize int
	cache     *lru.Cache // nil without WithCache
}

type cacheKey struct {
	date    birthdate.Date
	variant Variant
}

type cached struct {
	base  Base
	nodes NodeMap
}

// New returns an Evaluator configured by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.cacheSize > 0 {
		// lru.New only fails for a non-positive size, which WithCache rejects.
		c, err := lru.New(e.cacheSize)
		if err != nil {
			panic(err)
		}
		e.cache = c
	}

	return e
}

var defaultEvaluator = New()

// Evaluate computes the node map of d under v. See EvaluateReport.
func (e *Evaluator) Evaluate(d birthdate.Date, v Variant) (NodeMap, error) {
	r, err := e.EvaluateReport(d, v)
	if err != nil {
		return NodeMap{}, err
	}

	return r.Nodes, nil
}

// EvaluateReport computes the node map of d under v and returns it with
// the base primitives it was derived from, as observers see it.
//
// Steps:
//  1. Reject the zero Date (ErrInvalidDateFormat on field "date").
//  2. Resolve the compiled table of v (ErrUnknownVariant).
//  3. Serve from the cache if one is configured and holds (d, v).
//  4. Decompose d and run every stage; the result is all-or-nothing.
//  5. Store in the cache, then notify observers.
func (e *Evaluator) EvaluateReport(d birthdate.Date, v Variant) (Report, error) {
	// 1. Date
	if d.IsZero() {
		return Report{}, zeroDateError()
	}

	// 2. Variant
	p, err := programFor(v)
	if err != nil {
		return Report{}, err
	}

	// 3. Cache
	key := cacheKey{date: d, variant: v}
	if e.cache != nil {
		if hit, ok := e.cache.Get(key); ok {
			res := hit.(cached)
			r := Report{Variant: v, Date: d, Base: res.base, Nodes: res.nodes, Cached: true}
			e.notify(r)

			return r, nil
		}
	}

	// 4. Compute
	base := p.table.decompose(d)
	nodes := p.compute(base)

	// 5. Publish
	if e.cache != nil {
		e.cache.Add(key, cached{base: base, nodes: nodes})
	}
	r := Report{Variant: v, Date: d, Base: base, Nodes: nodes}
	e.notify(r)

	return r, nil
}

// EvaluateISO parses s with birthdate.Parse and evaluates it.
func (e *Evaluator) EvaluateISO(s string, v Variant) (NodeMap, error) {
	d, err := birthdate.Parse(s)
	if err != nil {
		return NodeMap{}, err
	}

	return e.Evaluate(d, v)
}

// EvaluateTime converts t to its UTC calendar date and evaluates it.
func (e *Evaluator) EvaluateTime(t time.Time, v Variant) (NodeMap, error) {
	d, err := birthdate.FromTime(t)
	if err != nil {
		return NodeMap{}, err
	}

	return e.Evaluate(d, v)
}

func (e *Evaluator) notify(r Report) {
	for _, o := range e.observers {
		o.Observe(r)
	}
}

// Evaluate computes the node map of d under v without cache or observers.
func Evaluate(d birthdate.Date, v Variant) (NodeMap, error) {
	return defaultEvaluator.Evaluate(d, v)
}

// EvaluateISO parses s and evaluates it under v.
func EvaluateISO(s string, v Variant) (NodeMap, error) {
	return defaultEvaluator.EvaluateISO(s, v)
}

// EvaluateTime evaluates the UTC calendar date of t under v.
func EvaluateTime(t time.Time, v Variant) (NodeMap, error) {
	return defaultEvaluator.EvaluateTime(t, v)
}

// NodeIDs returns the identifiers v defines, in evaluation order.
func NodeIDs(v Variant) ([]node.ID, error) {
	p, err := programFor(v)
	if err != nil {
		return nil, err
	}
	out := make([]node.ID, len(p.order))
	copy(out, p.order)

	return out, nil
}

// Formulas describes the compiled table of v, fallbacks already applied,
// in evaluation order. Base inputs are rendered as "D", "M", "Y" with an
// optional multiplier ("2·D").
func Formulas(v Variant) ([]Formula, error) {
	p, err := programFor(v)
	if err != nil {
		return nil, err
	}
	all := make([]formula, 0, len(p.order))
	all = append(all, p.seeds...)
	all = append(all, p.tail...)
	all = append(all, p.core)
	all = append(all, p.lines...)

	out := make([]Formula, len(all))
	for i, f := range all {
		inputs := make([]string, len(f.terms))
		for j, op := range f.terms {
			inputs[j] = op.String()
		}
		out[i] = Formula{Node: f.target, Line: f.line, Inputs: inputs}
	}

	return out, nil
}

// Fallbacks returns the declared fallback entries of v.
func Fallbacks(v Variant) ([]Fallback, error) {
	p, err := programFor(v)
	if err != nil {
		return nil, err
	}
	out := make([]Fallback, len(p.table.fallbacks))
	copy(out, p.table.fallbacks)

	return out, nil
}
