package depgraph

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("depgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("depgraph: vertex not found")

	// ErrLoopNotAllowed indicates a self-dependency u→u.
	ErrLoopNotAllowed = errors.New("depgraph: self-loop not allowed")
)

// Graph is a directed, unweighted dependency graph.
//
// out[u] holds the set of vertices computed from u; in[v] holds the set of
// vertices v is computed from. Both are kept so Dependencies and Dependents
// are O(d log d).
type Graph struct {
	mu  sync.RWMutex
	out map[string]map[string]struct{}
	in  map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		out: make(map[string]map[string]struct{}),
		in:  make(map[string]map[string]struct{}),
	}
}

// AddVertex inserts id. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// ensure creates adjacency entries for id; caller holds the write lock.
func (g *Graph) ensure(id string) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[string]struct{})
		g.in[id] = make(map[string]struct{})
	}
}

// AddEdge records that to depends on from, creating missing endpoints.
// Repeating an existing edge is a no-op.
// Returns ErrEmptyVertexID or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(from)
	g.ensure(to)
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[id]

	return ok
}

// Neighbors returns the sorted IDs of vertices computed from id (outgoing edges).
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(set), nil
}

// Dependencies returns the sorted IDs id is computed from (incoming edges).
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(d log d).
func (g *Graph) Dependencies(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.in[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(set), nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.out))
	for id := range g.out {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
