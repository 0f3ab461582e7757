package node

// catalog lists every identifier in canonical order: axis by axis,
// positions ascending, the center right after the X axis.
var catalog = buildCatalog()

// catalogIndex maps identifier to its position in catalog.
var catalogIndex = func() map[ID]int {
	idx := make(map[ID]int, len(catalog))
	for i, id := range catalog {
		idx[id] = i
	}

	return idx
}()

func buildCatalog() []ID {
	ids := make([]ID, 0, 49)
	span := func(axis Axis, from, to int8, skipZero bool) {
		for p := from; p <= to; p++ {
			if skipZero && p == 0 {
				continue
			}
			ids = append(ids, ID{axis, p})
		}
	}
	span(AxisX, -4, 5, true)
	ids = append(ids, XY0)
	span(AxisY, -3, 4, true)
	span(AxisZ, -1, 1, true)
	span(AxisA, -4, 3, true)
	span(AxisB, -3, 3, true)
	span(AxisC, 1, 10, false)
	span(AxisN, 1, 7, false)

	return ids
}

// All returns a copy of the catalog in canonical order.
func All() []ID {
	out := make([]ID, len(catalog))
	copy(out, catalog)

	return out
}

// Count is the number of identifiers in the catalog.
func Count() int { return len(catalog) }

// Known reports whether id belongs to the catalog.
func Known(id ID) bool {
	_, ok := catalogIndex[id]

	return ok
}

// Index returns the canonical position of id, or -1 if id is unknown.
func Index(id ID) int {
	if i, ok := catalogIndex[id]; ok {
		return i
	}

	return -1
}

// Less orders identifiers canonically; unknown IDs sort last.
func Less(a, b ID) bool {
	ia, ib := Index(a), Index(b)
	if ia < 0 {
		return false
	}
	if ib < 0 {
		return true
	}

	return ia < ib
}
