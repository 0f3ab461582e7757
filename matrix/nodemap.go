// SPDX-License-Identifier: MIT

package matrix

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/destinymatrix/node"
)

// NodeMap is the immutable result of one evaluation: a value in [1,22] for
// every node the variant defines, in evaluation order.
//
// The zero NodeMap is empty. NodeMap values are safe to share between
// goroutines; no method mutates them.
type NodeMap struct {
	variant Variant
	ids     []node.ID // shared with the compiled program, never written
	values  []int
}

// Variant returns the variant that produced m.
func (m NodeMap) Variant() Variant { return m.variant }

// Len returns the number of nodes.
func (m NodeMap) Len() int { return len(m.ids) }

// Get returns the value of id and whether the variant defines it.
func (m NodeMap) Get(id node.ID) (int, bool) {
	for i, have := range m.ids {
		if have == id {
			return m.values[i], true
		}
	}

	return 0, false
}

// Value returns the value of id, or 0 if the variant does not define it.
func (m NodeMap) Value(id node.ID) int {
	v, _ := m.Get(id)

	return v
}

// Has reports whether id is present.
func (m NodeMap) Has(id node.ID) bool {
	_, ok := m.Get(id)

	return ok
}

// IDs returns a copy of the identifiers in evaluation order.
func (m NodeMap) IDs() []node.ID {
	out := make([]node.ID, len(m.ids))
	copy(out, m.ids)

	return out
}

// Each calls fn for every node in evaluation order until fn returns false.
func (m NodeMap) Each(fn func(id node.ID, value int) bool) {
	for i, id := range m.ids {
		if !fn(id, m.values[i]) {
			return
		}
	}
}

// Map returns a fresh map keyed by identifier strings such as "X(-4)".
func (m NodeMap) Map() map[string]int {
	out := make(map[string]int, len(m.ids))
	for i, id := range m.ids {
		out[id.String()] = m.values[i]
	}

	return out
}

// Equal reports whether m and o hold the same variant, nodes and values.
func (m NodeMap) Equal(o NodeMap) bool {
	if m.variant != o.variant || len(m.ids) != len(o.ids) {
		return false
	}
	for i := range m.ids {
		if m.ids[i] != o.ids[i] || m.values[i] != o.values[i] {
			return false
		}
	}

	return true
}

// MarshalJSON encodes m as an object in evaluation order:
// {"X(-4)":20,"Y(4)":5,...}.
func (m NodeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(m.values[i]))
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes m as a mapping in evaluation order.
func (m NodeMap) MarshalYAML() (interface{}, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, id := range m.ids {
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id.String(), Style: yaml.DoubleQuotedStyle},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(m.values[i])},
		)
	}

	return out, nil
}
