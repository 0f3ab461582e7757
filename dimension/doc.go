// Package dimension maps matrix nodes to the dimension keys of the
// interpretation catalog.
//
// A report on a NodeMap is a list of (dimension key, value key) pairs: the
// dimension key names what a node means ("xy0_core"), the value key is the
// node's arcana as a decimal string ("2"). Content lookup and persistence
// live outside this module; this package only produces keys compatible with
// them.
//
// The table is closed and static:
//
//	XY(0)  xy0_core
//	X(-4)  x_neg4_outer_self
//	Y(-1)  y_neg1_entrance_to_relationship
//	Z(-1)  z_neg1_ideal_partner
//	Z(1)   z1_financial_flow
//	X(5)   x5_material_karma
//	N(3)   n3_purpose
//	C(1)   c1_health_root
//
// Every listed node exists in both variants.
package dimension
