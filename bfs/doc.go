// Package bfs provides breadth-first search over a depgraph.Graph,
// returning edge-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance from a start vertex.
//   - Follow edges forward (dependents) or, WithReverse, backward
//     (dependencies).
//   - Returns a BFSResult with Order, Depth and Parent.
//   - Honors MaxDepth (d>0) or explicit "no limit" (d==0), a per-edge
//     filter and an OnVisit hook that may abort the search.
//
// Why
//
//   - Answer "which nodes change when this one changes" and "which nodes
//     does this one read" over a formula dependency graph.
//
// Determinism
//
//	depgraph returns neighbors sorted by ID and BFS enqueues them in that
//	order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if a neighbor lookup fails.
//   - Wrapped OnVisit errors.
package bfs
