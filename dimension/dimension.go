package dimension

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/destinymatrix/matrix"
	"github.com/katalvlaran/destinymatrix/node"
)

// SystemKey identifies the matrix system in the interpretation catalog.
const SystemKey = "matrix"

// ErrMissingNode indicates a NodeMap lacks a node the table maps.
var ErrMissingNode = errors.New("dimension: node missing from map")

// Dimension binds a node to its catalog key.
type Dimension struct {
	Key  string  `json:"key" yaml:"key"`
	Node node.ID `json:"node" yaml:"node"`
}

// Lookup is one (dimension key, value key) pair.
type Lookup struct {
	DimensionKey string `json:"dimensionKey" yaml:"dimensionKey"`
	ValueKey     string `json:"valueKey" yaml:"valueKey"`
}

var table = []Dimension{
	{Key: "xy0_core", Node: node.XY0},
	{Key: "x_neg4_outer_self", Node: node.X(-4)},
	{Key: "y_neg1_entrance_to_relationship", Node: node.Y(-1)},
	{Key: "z_neg1_ideal_partner", Node: node.Z(-1)},
	{Key: "z1_financial_flow", Node: node.Z(1)},
	{Key: "x5_material_karma", Node: node.X(5)},
	{Key: "n3_purpose", Node: node.N(3)},
	{Key: "c1_health_root", Node: node.C(1)},
}

// Table returns a copy of the mapping in catalog order.
func Table() []Dimension {
	out := make([]Dimension, len(table))
	copy(out, table)

	return out
}

// KeyFor returns the dimension key of id, if it has one.
func KeyFor(id node.ID) (string, bool) {
	for _, d := range table {
		if d.Node == id {
			return d.Key, true
		}
	}

	return "", false
}

// Resolve returns the lookups for m in table order.
// A node listed in the table but absent from m is an error; Resolve never
// invents a value for it.
func Resolve(m matrix.NodeMap) ([]Lookup, error) {
	out := make([]Lookup, 0, len(table))
	for _, d := range table {
		v, ok := m.Get(d.Node)
		if !ok {
			return nil, errors.Wrapf(ErrMissingNode, "%s (%s)", d.Node, d.Key)
		}
		out = append(out, Lookup{DimensionKey: d.Key, ValueKey: strconv.Itoa(v)})
	}

	return out, nil
}
