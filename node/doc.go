// Package node defines the symbolic coordinates of the Destiny Matrix.
//
// A node identifier is an axis label plus a signed position, rendered as
// "X(-4)", "Y(4)" or "XY(0)". The rendering is the wire form shared with
// downstream lookup tables, so String and Parse are exact inverses.
//
// The set of identifiers is closed: All returns the static catalog and
// Parse rejects anything outside it. Constructors such as X(-4) do not
// validate; use Known when a position comes from outside the package.
//
// Catalog layout:
//
//	                 Y(4)
//	                 Y(3)
//	                 Y(2)
//	                 Y(1)
//	X(-4) … X(-1)    XY(0)    X(1) … X(5)
//	                 Y(-1)
//	                 Y(-2)
//	                 Y(-3)
//
// plus the diagonals A(-4..3) and B(-3..3), the crossroad pair Z(±1),
// the health column C(1..10) and the purpose column N(1..7).
package node
