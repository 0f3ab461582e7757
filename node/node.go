package node

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownNode indicates a string or coordinate outside the catalog.
var ErrUnknownNode = errors.New("node: unknown identifier")

// Axis is the label part of an identifier.
type Axis uint8

// Axis labels. The zero value is invalid.
const (
	AxisX Axis = iota + 1
	AxisY
	AxisZ
	AxisA
	AxisB
	AxisC
	AxisN
	AxisXY
)

var axisNames = [...]string{
	AxisX:  "X",
	AxisY:  "Y",
	AxisZ:  "Z",
	AxisA:  "A",
	AxisB:  "B",
	AxisC:  "C",
	AxisN:  "N",
	AxisXY: "XY",
}

// String returns the axis label.
func (a Axis) String() string {
	if a == 0 || int(a) >= len(axisNames) {
		return "?"
	}

	return axisNames[a]
}

// ID is a node identifier. It is comparable and safe to use as a map key.
type ID struct {
	Axis Axis
	Pos  int8
}

// X returns the identifier X(pos).
func X(pos int8) ID { return ID{AxisX, pos} }

// Y returns the identifier Y(pos).
func Y(pos int8) ID { return ID{AxisY, pos} }

// Z returns the identifier Z(pos).
func Z(pos int8) ID { return ID{AxisZ, pos} }

// A returns the identifier A(pos) on the paternal diagonal.
func A(pos int8) ID { return ID{AxisA, pos} }

// B returns the identifier B(pos) on the maternal diagonal.
func B(pos int8) ID { return ID{AxisB, pos} }

// C returns the identifier C(pos) of the health column.
func C(pos int8) ID { return ID{AxisC, pos} }

// N returns the identifier N(pos) of the purpose column.
func N(pos int8) ID { return ID{AxisN, pos} }

// XY0 is the central node XY(0).
var XY0 = ID{AxisXY, 0}

// String renders the identifier, e.g. "X(-4)".
func (id ID) String() string {
	return id.Axis.String() + "(" + strconv.Itoa(int(id.Pos)) + ")"
}

// IsZero reports whether id is the zero ID (no axis).
func (id ID) IsZero() bool { return id.Axis == 0 }

// MarshalText implements encoding.TextMarshaler.
// The zero ID encodes as the empty string.
func (id ID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return []byte{}, nil
	}
	if !Known(id) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}

	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The empty string decodes to the zero ID.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = ID{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

// Parse converts the wire form back into an ID.
// Surrounding spaces are ignored; the label is case-sensitive.
// Only catalog members are accepted.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return ID{}, fmt.Errorf("%w: %q", ErrUnknownNode, s)
	}
	label, num := s[:open], s[open+1:len(s)-1]

	var axis Axis
	for a := AxisX; a <= AxisXY; a++ {
		if axisNames[a] == label {
			axis = a
			break
		}
	}
	pos, err := strconv.ParseInt(num, 10, 8)
	if axis == 0 || err != nil || strings.HasPrefix(num, "+") {
		return ID{}, fmt.Errorf("%w: %q", ErrUnknownNode, s)
	}
	id := ID{axis, int8(pos)}
	if !Known(id) {
		return ID{}, fmt.Errorf("%w: %q", ErrUnknownNode, s)
	}

	return id, nil
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return id
}
