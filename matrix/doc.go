// SPDX-License-Identifier: MIT

// Package matrix derives the Destiny Matrix node map from a birth date.
//
// What:
//
//   - Decompose: birth date → base primitives (D, M, Y), per variant.
//   - Evaluate:  base primitives → NodeMap, every value in [1,22].
//
// The engine is a pure function of (date, variant). It keeps no state across
// calls, performs no I/O and never logs; observability is an optional
// Observer invoked after a completed evaluation.
//
// Variants:
//
// Two incompatible algorithms exist for the same computation and both are
// kept, each behind its own Variant value with its own formula table:
//
//	VariantModulo    day and year digit-summed once, reduce = n mod 22,
//	                 36 nodes, health aggregate C(10), purpose ends at N(3)
//	VariantDigitSum  raw day, reduce = repeated digit sum,
//	                 48 nodes, health aggregate C(9), purpose ends at N(7)
//
// Evaluation order:
//
// Each table is a static list of formulas grouped into lines (core, sacral,
// throat/heart/eye, paternal, maternal, sexuality, purpose, health). The
// center XY(0) and its tail (Y(-1), Y(-3)) reference each other, so they are
// resolved by an explicit two-pass fixup:
//
//  1. tail from a provisional estimate of the center
//  2. provisional XY(0) from base + tail
//  3. tail again, anchored on the provisional XY(0)
//  4. final XY(0) from base + final tail (published)
//
// Under VariantDigitSum a further pass anchored on the published XY(0)
// changes nothing. Under VariantModulo it usually does: Y(-1) reads XY(0)
// directly, so the center keeps moving, and the two fixed passes are what
// define the published value. The provisional value never appears in a
// NodeMap.
//
// Every evaluation walks the stages Uninitialized → BasePrimitivesComputed →
// ProvisionalCoreComputed → FinalCoreComputed → AllNodesComputed, and each
// formula is read only after its inputs exist. The tables are compiled and
// checked once at package initialization (declared order is topological,
// every reference resolves, the only cycles run through the core/tail set),
// so a bad table fails at start-up rather than at evaluation time.
//
// Fallbacks:
//
// A formula may reference a node its variant never defines (the modulo
// health column uses X(-1..-3) and Y(1..3)). Such references resolve through
// the variant's explicit Fallback list, either to a sibling node or, when
// declared so, by dropping the term. There is no implicit zero: a missing
// reference without a Fallback entry is a table error.
//
// Concurrency:
//
// Evaluate is safe for concurrent use. An Evaluator built WithCache memoizes
// results in a private LRU; cached and fresh results are indistinguishable
// apart from Report.Cached.
//
// Errors:
//
//	birthdate.ErrInvalidDateFormat, birthdate.ErrOutOfRangeDate  (propagated)
//	ErrUnknownVariant                                            (bad selector)
//	ErrNodeNotInVariant, ErrNoPath                               (tracing)
package matrix
