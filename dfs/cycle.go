package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/destinymatrix/depgraph"
)

// DetectCycles enumerates the simple directed cycles of g.
// Each cycle is rotated to start at its lexicographically smallest vertex and
// closed by repeating it: [a, b, c, a]. Cycles are deduplicated and sorted.
// Returns (false, nil, nil) for a nil or acyclic graph.
//
// Every vertex is used as a DFS root restricted to vertices not smaller than
// the root, so each cycle is found exactly once from its smallest member.
func DetectCycles(g *depgraph.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	var cycles [][]string
	seen := make(map[string]struct{})
	for _, root := range g.Vertices() {
		back, err := reaching(g, root)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
		if len(back) == 0 {
			continue // nothing leads back to root
		}
		w := &walker{g: g, root: root, back: back, onPath: map[string]bool{root: true}, seen: seen}
		if err = w.walk(root, []string{root}, &cycles); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// walker enumerates the cycles through one root.
type walker struct {
	g      *depgraph.Graph
	root   string
	back   map[string]bool // vertices >= root that can reach root
	onPath map[string]bool
	seen   map[string]struct{}
}

// walk extends path from id, recording a cycle whenever an edge returns to root.
func (w *walker) walk(id string, path []string, cycles *[][]string) error {
	next, err := w.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: Neighbors(%q): %v", ErrNeighborFetch, id, err)
	}
	for _, nbr := range next {
		switch {
		case nbr == w.root:
			cyc := append(append([]string(nil), path...), w.root)
			sig := JoinSig(cyc)
			if _, ok := w.seen[sig]; !ok {
				w.seen[sig] = struct{}{}
				*cycles = append(*cycles, cyc)
			}
		case !w.back[nbr] || w.onPath[nbr]:
			// dead end, a smaller vertex, or a cycle that misses root
			continue
		default:
			w.onPath[nbr] = true
			if err = w.walk(nbr, append(path, nbr), cycles); err != nil {
				return err
			}
			w.onPath[nbr] = false
		}
	}

	return nil
}

// reaching returns the vertices not smaller than root that have a path to root,
// found by walking dependencies backwards from root.
func reaching(g *depgraph.Graph, root string) (map[string]bool, error) {
	back := make(map[string]bool)
	stack := []string{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		deps, err := g.Dependencies(id)
		if err != nil {
			return nil, fmt.Errorf("%w: Dependencies(%q): %v", ErrNeighborFetch, id, err)
		}
		for _, d := range deps {
			if d < root || back[d] {
				continue
			}
			back[d] = true
			stack = append(stack, d)
		}
	}

	return back, nil
}

// JoinSig joins a cycle into its comma-separated signature.
func JoinSig(cycle []string) string {
	return strings.Join(cycle, ",")
}

// Members returns the distinct vertices appearing in any of cycles, sorted.
func Members(cycles [][]string) []string {
	set := make(map[string]struct{})
	for _, c := range cycles {
		for _, v := range c {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
