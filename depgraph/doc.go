// Package depgraph provides the directed dependency Graph used to check the
// matrix formula tables before any evaluation runs.
//
// A vertex is a node identifier in its wire form ("X(-4)", "XY(0)") or a
// synthetic vertex such as a base primitive ("base:D") or a provisional
// anchor. An edge u→v reads "v is computed from u", so a topological order
// of the graph is a valid evaluation order.
//
// The graph is deliberately small: directed edges only, no weights, no
// self-loops, and repeated edges collapse into one. All methods are safe for
// concurrent use; a single sync.RWMutex guards vertices and adjacency.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - an edge from a vertex to itself.
package depgraph
