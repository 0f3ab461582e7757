// Package dfs implements depth-first algorithms over a depgraph.Graph:
// topological sort and simple-cycle enumeration.
//
// What:
//
//   - TopologicalSort: a linear order in which every vertex follows all of
//     its dependencies; ErrCycleDetected if the graph is not a DAG.
//   - DetectCycles: every simple directed cycle, each rotated to start at
//     its smallest vertex and closed by repeating it, sorted for
//     deterministic output.
//
// Why:
//
//   - The matrix formula tables are checked once at start-up: the declared
//     evaluation order must be a valid topological order, and the only
//     cycles allowed are the ones the two-pass core resolution breaks.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V + L_max)
//     (C = number of cycles found, L = average cycle length)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle discovered by TopologicalSort
//   - ErrNeighborFetch  neighbor lookup failed (wrapped)
package dfs
