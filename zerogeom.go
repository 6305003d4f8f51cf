package zerogeom

import (
	"github.com/ctessum/geom"

	"github.com/hupe1980/zerogeom/codec"
	"github.com/hupe1980/zerogeom/relate"
	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

// Geometry is a zero-copy view over one encoded geometry.
type Geometry = shape.Geometry

// Tag identifies the kind of an encoded geometry.
type Tag = wire.Tag

// Re-exported kind tags. The numbering is part of the format and only ever
// grows.
const (
	TagPoint           = wire.TagPoint
	TagMultiPoint      = wire.TagMultiPoint
	TagPolygon         = wire.TagPolygon
	TagMultiPolygon    = wire.TagMultiPolygon
	TagLineString      = wire.TagLineString
	TagMultiLineString = wire.TagMultiLineString
	TagCollection      = wire.TagCollection
)

// Encode appends the encoded form of g to dst and returns the extended
// buffer. Pass nil to allocate a fresh buffer sized in one shot.
func Encode(dst []byte, g geom.Geom) ([]byte, error) {
	return codec.Encode(dst, g)
}

// FromBytes wraps an encoded buffer without validating it. The buffer must
// come from Encode or have passed TryFromBytes; reading a malformed buffer
// through the view panics.
func FromBytes(buf []byte) Geometry {
	return codec.FromBytes(buf)
}

// TryFromBytes validates an untrusted buffer and wraps it. Validation walks
// headers and offset tables only; coordinates are not copied or decoded.
func TryFromBytes(buf []byte) (Geometry, error) {
	return codec.TryFromBytes(buf)
}

// Relate evaluates the requested predicates of a relative to b.
func Relate(a, b Geometry, req relate.Request) relate.Answer {
	return relate.Relate(a, b, req)
}
