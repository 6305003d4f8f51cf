package codec

import (
	"fmt"

	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

// FromBytes constructs a view over buf without validation.
//
// Precondition: buf was produced by Encode and has not been modified since.
// This holds for bytes round-tripped through a trusted store; for anything
// else use TryFromBytes. Bad input is not memory unsafe, slice bounds are
// still enforced by the runtime, but malformed bytes will panic or yield
// garbage coordinates instead of an error.
func FromBytes(buf []byte) shape.Geometry {
	return shape.FromBuffer(buf)
}

// TryFromBytes validates buf as a complete encoded geometry and returns a
// view over it. Every header count and offset is checked against the
// buffer bounds and against each other before any view is handed out, so
// the returned view's accessors cannot read out of bounds. Validation
// walks headers only and allocates nothing.
func TryFromBytes(buf []byte) (shape.Geometry, error) {
	if len(buf) < wire.TagSize {
		return shape.Geometry{}, fmt.Errorf("%w: %d bytes", ErrTruncatedBuffer, len(buf))
	}
	tag := wire.ReadTag(buf)
	if !tag.Valid() {
		return shape.Geometry{}, fmt.Errorf("%w: %d", ErrInvalidTag, uint64(tag))
	}
	payload := buf[wire.TagSize:]

	var err error
	switch tag {
	case wire.TagPoint:
		if len(payload) != wire.CoordSize {
			err = fmt.Errorf("%w: point payload is %d bytes", ErrInconsistentHeader, len(payload))
		}
	case wire.TagMultiPoint, wire.TagLineString:
		err = validateCoordsPayload(payload)
	case wire.TagPolygon:
		err = validatePolygonPayload(payload)
	case wire.TagMultiLineString:
		err = validatePartsPayload(payload, validateCoordsPayload)
	case wire.TagMultiPolygon:
		err = validatePartsPayload(payload, validatePolygonPayload)
	case wire.TagCollection:
		err = validateCollectionPayload(payload)
	}
	if err != nil {
		return shape.Geometry{}, err
	}
	return shape.New(tag, payload), nil
}

// validateCoordsPayload checks a bbox-plus-coordinates payload (multi-point
// and line-string share it).
func validateCoordsPayload(b []byte) error {
	if len(b) < wire.BoundsSize {
		return fmt.Errorf("%w: %d bytes, bounding box needs %d", ErrTruncatedBuffer, len(b), wire.BoundsSize)
	}
	if rest := (len(b) - wire.BoundsSize) % wire.CoordSize; rest != 0 {
		return fmt.Errorf("%w: %d trailing bytes after last coordinate", ErrInconsistentHeader, rest)
	}
	return nil
}

// checkedTable is the validated form of a count + offset-table + padding
// header. Entries have been verified to start at zero, be non-decreasing,
// and stay inside the data region.
type checkedTable struct {
	entries []byte
	data    []byte
}

func (t checkedTable) len() int {
	return len(t.entries) / wire.U32Size
}

func (t checkedTable) span(i int) []byte {
	start := wire.ReadU32(t.entries[i*wire.U32Size:])
	end := uint32(len(t.data))
	if next := i + 1; next < t.len() {
		end = wire.ReadU32(t.entries[next*wire.U32Size:])
	}
	return t.data[start:end]
}

// splitCheckedTable validates the offset-table header at the front of b.
// granularity, when nonzero, additionally forces every offset to that
// multiple.
func splitCheckedTable(b []byte, granularity int) (checkedTable, error) {
	if len(b) < wire.U32Size {
		return checkedTable{}, fmt.Errorf("%w: missing part count", ErrTruncatedBuffer)
	}
	n := int(wire.ReadU32(b))
	b = b[wire.U32Size:]

	tableBytes := n * wire.U32Size
	if n%2 == 0 {
		tableBytes += wire.U32Size
	}
	if len(b) < tableBytes {
		return checkedTable{}, fmt.Errorf("%w: %d parts need %d table bytes, have %d", ErrTruncatedBuffer, n, tableBytes, len(b))
	}
	t := checkedTable{entries: b[:n*wire.U32Size], data: b[tableBytes:]}
	if n%2 == 0 {
		if pad := wire.ReadU32(b[n*wire.U32Size:]); pad != 0 {
			return checkedTable{}, fmt.Errorf("%w: nonzero alignment pad %d", ErrInconsistentHeader, pad)
		}
	}

	prev := uint32(0)
	for i := 0; i < n; i++ {
		off := wire.ReadU32(t.entries[i*wire.U32Size:])
		if i == 0 && off != 0 {
			return checkedTable{}, fmt.Errorf("%w: first part at offset %d", ErrInconsistentHeader, off)
		}
		if off < prev {
			return checkedTable{}, fmt.Errorf("%w: part %d at offset %d before part %d at %d", ErrInconsistentHeader, i, off, i-1, prev)
		}
		if int(off) > len(t.data) {
			return checkedTable{}, fmt.Errorf("%w: part %d at offset %d, region is %d bytes", ErrOffsetOutOfBounds, i, off, len(t.data))
		}
		if granularity != 0 && int(off)%granularity != 0 {
			return checkedTable{}, fmt.Errorf("%w: part %d at misaligned offset %d", ErrInconsistentHeader, i, off)
		}
		prev = off
	}
	if n == 0 && len(t.data) != 0 {
		return checkedTable{}, fmt.Errorf("%w: %d data bytes but zero parts", ErrInconsistentHeader, len(t.data))
	}
	return t, nil
}

func validatePolygonPayload(b []byte) error {
	if len(b) < wire.BoundsSize {
		return fmt.Errorf("%w: %d bytes, bounding box needs %d", ErrTruncatedBuffer, len(b), wire.BoundsSize)
	}
	t, err := splitCheckedTable(b[wire.BoundsSize:], wire.CoordSize)
	if err != nil {
		return err
	}
	for i := 0; i < t.len(); i++ {
		ring := t.span(i)
		if len(ring)%wire.CoordSize != 0 {
			return fmt.Errorf("%w: ring %d spans %d bytes", ErrInconsistentHeader, i, len(ring))
		}
		n := len(ring) / wire.CoordSize
		if n < 4 {
			return fmt.Errorf("%w: ring %d has %d vertices", ErrInconsistentHeader, i, n)
		}
		c := wire.CoordsFromBytes(ring)
		if c.At(0) != c.At(n-1) {
			return fmt.Errorf("%w: ring %d is not closed", ErrInconsistentHeader, i)
		}
	}
	return nil
}

// validatePartsPayload checks a bbox-plus-offset-table payload whose parts
// are themselves payloads validated by validatePart.
func validatePartsPayload(b []byte, validatePart func([]byte) error) error {
	if len(b) < wire.BoundsSize {
		return fmt.Errorf("%w: %d bytes, bounding box needs %d", ErrTruncatedBuffer, len(b), wire.BoundsSize)
	}
	t, err := splitCheckedTable(b[wire.BoundsSize:], 0)
	if err != nil {
		return err
	}
	for i := 0; i < t.len(); i++ {
		if err := validatePart(t.span(i)); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
	}
	return nil
}

func validateCollectionPayload(b []byte) error {
	if len(b) < wire.BoundsSize+2*wire.U32Size {
		return fmt.Errorf("%w: %d bytes, collection header needs %d", ErrTruncatedBuffer, len(b), wire.BoundsSize+2*wire.U32Size)
	}
	linesOff := int(wire.ReadU32(b[wire.BoundsSize:]))
	polysOff := int(wire.ReadU32(b[wire.BoundsSize+wire.U32Size:]))
	data := b[wire.BoundsSize+2*wire.U32Size:]

	if linesOff > len(data) || polysOff > len(data) {
		return fmt.Errorf("%w: regions end at %d and %d, data is %d bytes", ErrOffsetOutOfBounds, linesOff, polysOff, len(data))
	}
	if linesOff > polysOff {
		return fmt.Errorf("%w: line region ends at %d after polygon region start %d", ErrInconsistentHeader, linesOff, polysOff)
	}
	if err := validateCoordsPayload(data[:linesOff]); err != nil {
		return fmt.Errorf("points: %w", err)
	}
	if err := validatePartsPayload(data[linesOff:polysOff], validateCoordsPayload); err != nil {
		return fmt.Errorf("lines: %w", err)
	}
	if err := validatePartsPayload(data[polysOff:], validatePolygonPayload); err != nil {
		return fmt.Errorf("polygons: %w", err)
	}
	return nil
}
