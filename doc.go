// Package destinymatrix is a pure-Go engine that turns a birth date into
// the Destiny Matrix: a fixed set of named nodes, each an arcana in [1,22].
//
// What is in the box
//
//	reduce/     the reduction to [1,22]: modulo 22 or repeated digit sums
//	node/       node identifiers X(-4) … N(7) and the closed catalog
//	birthdate/  UTC calendar dates validated once at the boundary
//	matrix/     variants, formula tables, two-pass core fixup, NodeMap
//	dimension/  node → dimension key table for interpretation lookups
//	observe/    zap-backed evaluation hook
//	depgraph/   directed dependency graph used to check formula tables
//	dfs/, bfs/  topological order, cycle detection and reachability
//	cmd/destiny command-line front end
//
// Quick example:
//
//	m, err := matrix.EvaluateISO("1993-05-19", matrix.VariantDigitSum)
//	if err != nil {
//		// birthdate.ErrInvalidDateFormat or birthdate.ErrOutOfRangeDate
//	}
//	center := m.Value(node.XY0) // 11
//
// The engine performs no I/O, keeps no state between calls and is safe for
// concurrent use.
package destinymatrix
