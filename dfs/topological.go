package dfs

import (
	"fmt"

	"github.com/katalvlaran/destinymatrix/depgraph"
)

// topoSorter holds the state of one topological sort.
type topoSorter struct {
	graph *depgraph.Graph
	state map[string]int // White, Gray, Black
	order []string       // post-order
}

// TopologicalSort orders all vertices of g so that for every edge u→v,
// u comes before v. Roots are visited in sorted order, which makes the
// result deterministic.
// Returns ErrGraphNil, ErrCycleDetected (wrapped with the offending vertex)
// or ErrNeighborFetch.
func TopologicalSort(g *depgraph.Graph) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// 3. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back-edge into %s", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	next, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range next {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// IsTopological reports whether order lists every vertex of g exactly once
// and places each vertex after all of its dependencies.
func IsTopological(g *depgraph.Graph, order []string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if len(order) != g.VertexCount() {
		return false, nil
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		if _, dup := pos[id]; dup || !g.HasVertex(id) {
			return false, nil
		}
		pos[id] = i
	}
	for _, id := range order {
		next, err := g.Neighbors(id)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, nbr := range next {
			if pos[nbr] <= pos[id] {
				return false, nil
			}
		}
	}

	return true, nil
}
