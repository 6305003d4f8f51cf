package shape

import "github.com/hupe1980/zerogeom/wire"

// table resolves the count + offset-table + padding header that precedes
// the parts of every multi-part shape. Entries are byte offsets into data,
// relative to its start; part i spans [entry(i), entry(i+1)) and the last
// part runs to the end of data.
type table struct {
	entries []byte
	data    []byte
}

// splitTable consumes an offset table from the front of b and returns the
// resolved table. b must start with the count field.
func splitTable(b []byte) table {
	n := int(wire.ReadU32(b))
	b = b[wire.U32Size:]
	entries := b[:n*wire.U32Size]
	b = b[n*wire.U32Size:]
	if n%2 == 0 {
		// Alignment pad entry, not addressable.
		b = b[wire.U32Size:]
	}
	return table{entries: entries, data: b}
}

func (t table) len() int {
	return len(t.entries) / wire.U32Size
}

// span returns the byte region of part i.
func (t table) span(i int) []byte {
	start := wire.ReadU32(t.entries[i*wire.U32Size:])
	end := uint32(len(t.data))
	if next := i + 1; next < t.len() {
		end = wire.ReadU32(t.entries[next*wire.U32Size:])
	}
	return t.data[start:end]
}
