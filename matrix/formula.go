// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"

	"github.com/katalvlaran/destinymatrix/node"
)

// Line groups formulas by the part of the matrix they describe.
type Line uint8

// Lines in evaluation order.
const (
	LineBase Line = iota + 1
	LineTail
	LineCore
	LineSacral
	LineThroatHeartEye
	LinePaternal
	LineMaternal
	LineSexuality
	LinePurpose
	LineHealth
)

var lineNames = [...]string{
	LineBase:           "base",
	LineTail:           "tail",
	LineCore:           "core",
	LineSacral:         "sacral",
	LineThroatHeartEye: "throat-heart-eye",
	LinePaternal:       "paternal",
	LineMaternal:       "maternal",
	LineSexuality:      "sexuality",
	LinePurpose:        "purpose",
	LineHealth:         "health",
}

// String returns the line name.
func (l Line) String() string {
	if l == 0 || int(l) >= len(lineNames) {
		return "line(" + strconv.Itoa(int(l)) + ")"
	}

	return lineNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Line) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// baseField selects one base primitive.
type baseField uint8

const (
	baseD baseField = iota + 1
	baseM
	baseY
)

func (f baseField) String() string {
	switch f {
	case baseD:
		return "D"
	case baseM:
		return "M"
	default:
		return "Y"
	}
}

// operand is one summand of a formula: either a node or coef × a base primitive.
type operand struct {
	node node.ID   // set for node operands
	base baseField // set for base operands
	coef int       // multiplier for base operands
}

func (o operand) isBase() bool { return o.base != 0 }

func (o operand) String() string {
	if !o.isBase() {
		return o.node.String()
	}
	if o.coef == 1 {
		return o.base.String()
	}

	return strconv.Itoa(o.coef) + "·" + o.base.String()
}

// ref is a node operand.
func ref(id node.ID) operand { return operand{node: id} }

// prim is a base operand scaled by coef.
func prim(f baseField, coef int) operand { return operand{base: f, coef: coef} }

// formula defines target = reduce(sum of terms).
type formula struct {
	target node.ID
	line   Line
	terms  []operand
}

// sum builds a formula over node references only.
func sum(line Line, target node.ID, refs ...node.ID) formula {
	terms := make([]operand, len(refs))
	for i, id := range refs {
		terms[i] = ref(id)
	}

	return formula{target: target, line: line, terms: terms}
}

// Formula is the public, read-only description of one table entry.
type Formula struct {
	Node   node.ID  `json:"node" yaml:"node"`
	Line   Line     `json:"line" yaml:"line"`
	Inputs []string `json:"inputs" yaml:"inputs"`
}

// Fallback declares how a reference to a node absent from a variant's graph
// is resolved inside one formula.
//
// When Fallback is the zero ID the term is dropped from the sum; otherwise
// Fallback is read in place of Primary. An entry only applies when Primary is
// not defined by the variant at all; it never depends on a computed value.
type Fallback struct {
	Node     node.ID `json:"node" yaml:"node"`         // formula target
	Primary  node.ID `json:"primary" yaml:"primary"`   // referenced, never defined
	Fallback node.ID `json:"fallback" yaml:"fallback"` // substitute, or zero to drop
}

// Drop reports whether the term is removed instead of substituted.
func (f Fallback) Drop() bool { return f.Fallback.IsZero() }

func (f Fallback) key() fallbackKey { return fallbackKey{f.Node, f.Primary} }

type fallbackKey struct {
	target, primary node.ID
}
