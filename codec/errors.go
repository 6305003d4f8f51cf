package codec

import "errors"

// Encode errors. All are recoverable: the sink is untouched when Encode
// fails.
var (
	// ErrUnsupportedGeometry is returned for a geometry variant with no
	// encoding (including nil).
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
	// ErrNonFiniteCoordinate is returned when any input coordinate is NaN
	// or infinite.
	ErrNonFiniteCoordinate = errors.New("non-finite coordinate")
	// ErrDegenerateRing is returned for a polygon ring that cannot
	// round-trip: fewer than four vertices once closed, or a hole on an
	// empty exterior.
	ErrDegenerateRing = errors.New("degenerate ring")
)

// Decode errors, returned by TryFromBytes. A caller scanning stored
// records can skip the corrupt record and continue.
var (
	// ErrInvalidTag is returned when the kind tag is not a known value.
	ErrInvalidTag = errors.New("invalid geometry tag")
	// ErrTruncatedBuffer is returned when the buffer ends before the data
	// its headers declare.
	ErrTruncatedBuffer = errors.New("truncated buffer")
	// ErrInconsistentHeader is returned when header fields contradict each
	// other or the payload: non-monotonic offsets, misaligned regions,
	// unclosed rings, nonzero padding.
	ErrInconsistentHeader = errors.New("inconsistent header")
	// ErrOffsetOutOfBounds is returned when a header offset points outside
	// the buffer.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")
)
