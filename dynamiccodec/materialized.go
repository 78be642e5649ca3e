package dynamiccodec

// implEntry is one row of the blob's implementation table: a type name
// bound to the (bus, id) pair it is addressed by on the CAN transport.
type implEntry struct {
	name string
	bus  string
	id   uint16
}

// implTable is the materialized O(1) (bus,id)↔name view built once at load
// time, analogous to a numeric blob's precomputed random-access index:
// rather than scanning the implementation table on every FrameBinding
// call, every direction is indexed up front.
type implTable struct {
	idFor   map[string]uint16
	busFor  map[string]string
	nameFor map[implKey]string
}

func newImplTable(entries []implEntry) *implTable {
	t := &implTable{
		idFor:   make(map[string]uint16, len(entries)),
		busFor:  make(map[string]string, len(entries)),
		nameFor: make(map[implKey]string, len(entries)),
	}

	for _, e := range entries {
		t.idFor[e.name] = e.id
		t.busFor[e.name] = e.bus
		t.nameFor[implKey{bus: e.bus, id: e.id}] = e.name
	}

	return t
}
