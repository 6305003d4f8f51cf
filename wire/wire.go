package wire

import (
	"encoding/binary"
	"math"
)

// Tag identifies which geometry variant a buffer encodes.
//
// The numbering is append-only: LineString and MultiLineString were added
// after the first four kinds shipped, which is why they sort after
// MultiPolygon.
type Tag uint64

const (
	TagPoint           Tag = 0
	TagMultiPoint      Tag = 1
	TagPolygon         Tag = 2
	TagMultiPolygon    Tag = 3
	TagLineString      Tag = 4
	TagMultiLineString Tag = 5
	TagCollection      Tag = 6
)

// Valid reports whether t is a known tag value.
func (t Tag) Valid() bool {
	return t <= TagCollection
}

func (t Tag) String() string {
	switch t {
	case TagPoint:
		return "Point"
	case TagMultiPoint:
		return "MultiPoint"
	case TagPolygon:
		return "Polygon"
	case TagMultiPolygon:
		return "MultiPolygon"
	case TagLineString:
		return "LineString"
	case TagMultiLineString:
		return "MultiLineString"
	case TagCollection:
		return "Collection"
	default:
		return "Invalid"
	}
}

// Field widths of the on-wire format.
const (
	// TagSize is the width of the kind tag prefix.
	TagSize = 8
	// CoordSize is the width of one x,y coordinate pair.
	CoordSize = 16
	// U32Size is the width of a count or offset header field.
	U32Size = 4
	// BoundsSize is the width of a serialized bounding box (two pairs).
	BoundsSize = 2 * CoordSize
)

// ByteOrder is the fixed endianness of every multi-byte field.
var ByteOrder = binary.LittleEndian

// ReadTag reads the kind tag prefix. The caller guarantees len(b) >= TagSize.
func ReadTag(b []byte) Tag {
	return Tag(ByteOrder.Uint64(b))
}

// AppendTag appends the kind tag prefix to dst.
func AppendTag(dst []byte, t Tag) []byte {
	return ByteOrder.AppendUint64(dst, uint64(t))
}

// ReadFloat reads one float64 at the start of b.
func ReadFloat(b []byte) float64 {
	return math.Float64frombits(ByteOrder.Uint64(b))
}

// AppendFloat appends one float64 to dst.
func AppendFloat(dst []byte, f float64) []byte {
	return ByteOrder.AppendUint64(dst, math.Float64bits(f))
}

// ReadU32 reads one header field at the start of b.
func ReadU32(b []byte) uint32 {
	return ByteOrder.Uint32(b)
}

// AppendU32 appends one header field to dst.
func AppendU32(dst []byte, v uint32) []byte {
	return ByteOrder.AppendUint32(dst, v)
}

// OffsetTableSize returns the encoded size of an offset table with n
// entries: the count field, the entries, and the alignment pad. One zero
// entry of padding is appended whenever n is even so that the payload that
// follows stays 8-byte aligned.
func OffsetTableSize(n int) int {
	size := U32Size + n*U32Size
	if n%2 == 0 {
		size += U32Size
	}
	return size
}
