package zerogeom

import "github.com/hupe1980/zerogeom/codec"

// Encode errors. All are wrapped with positional context; match with
// errors.Is.
var (
	// ErrUnsupportedGeometry is returned for geometry types the format has
	// no tag for.
	ErrUnsupportedGeometry = codec.ErrUnsupportedGeometry
	// ErrNonFiniteCoordinate is returned when a coordinate is NaN or
	// infinite.
	ErrNonFiniteCoordinate = codec.ErrNonFiniteCoordinate
	// ErrDegenerateRing is returned for polygon rings with fewer than
	// three distinct vertices.
	ErrDegenerateRing = codec.ErrDegenerateRing
)

// Decode errors returned by TryFromBytes.
var (
	// ErrInvalidTag is returned when the leading kind tag is unknown.
	ErrInvalidTag = codec.ErrInvalidTag
	// ErrTruncatedBuffer is returned when the buffer ends before the
	// structure it announces.
	ErrTruncatedBuffer = codec.ErrTruncatedBuffer
	// ErrInconsistentHeader is returned when counts, padding or payload
	// sizes do not line up.
	ErrInconsistentHeader = codec.ErrInconsistentHeader
	// ErrOffsetOutOfBounds is returned when an offset table entry points
	// outside the payload or runs backwards.
	ErrOffsetOutOfBounds = codec.ErrOffsetOutOfBounds
)
