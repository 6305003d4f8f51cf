package shape

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// Geometry unifies all concrete views behind the kind tag for callers that
// do not know the concrete kind ahead of time. It is a tagged union over
// the payload bytes, not an interface: dispatch always goes through Kind.
type Geometry struct {
	tag     wire.Tag
	payload []byte
}

// FromBuffer interprets buf as a tagged geometry buffer without any
// validation. The caller guarantees buf was produced by this codec and is
// unmodified; use codec.TryFromBytes for bytes of unknown provenance.
func FromBuffer(buf []byte) Geometry {
	return Geometry{tag: wire.ReadTag(buf), payload: buf[wire.TagSize:]}
}

// New wraps an already split tag and payload.
func New(tag wire.Tag, payload []byte) Geometry {
	return Geometry{tag: tag, payload: payload}
}

// Kind returns the geometry's kind tag.
func (g Geometry) Kind() wire.Tag { return g.tag }

// Payload returns the payload bytes after the tag.
func (g Geometry) Payload() []byte { return g.payload }

// Point reinterprets the payload as a point view. The kind must match.
func (g Geometry) Point() Point {
	g.mustBe(wire.TagPoint)
	return PointFromPayload(g.payload)
}

// MultiPoint reinterprets the payload as a multi-point view.
func (g Geometry) MultiPoint() MultiPoint {
	g.mustBe(wire.TagMultiPoint)
	return MultiPointFromPayload(g.payload)
}

// Line reinterprets the payload as a line-string view.
func (g Geometry) Line() Line {
	g.mustBe(wire.TagLineString)
	return LineFromPayload(g.payload)
}

// MultiLine reinterprets the payload as a multi-line-string view.
func (g Geometry) MultiLine() MultiLine {
	g.mustBe(wire.TagMultiLineString)
	return MultiLineFromPayload(g.payload)
}

// Polygon reinterprets the payload as a polygon view.
func (g Geometry) Polygon() Polygon {
	g.mustBe(wire.TagPolygon)
	return PolygonFromPayload(g.payload)
}

// MultiPolygon reinterprets the payload as a multi-polygon view.
func (g Geometry) MultiPolygon() MultiPolygon {
	g.mustBe(wire.TagMultiPolygon)
	return MultiPolygonFromPayload(g.payload)
}

// Collection reinterprets the payload as a collection view.
func (g Geometry) Collection() Collection {
	g.mustBe(wire.TagCollection)
	return CollectionFromPayload(g.payload)
}

func (g Geometry) mustBe(t wire.Tag) {
	if g.tag != t {
		panic(fmt.Sprintf("shape: %s accessed as %s", g.tag, t))
	}
}

// Bounds returns the shape's bounding box. For points it is the degenerate
// box at the point; for every other kind it is read from the payload
// header.
func (g Geometry) Bounds() wire.BoundingBox {
	if g.tag == wire.TagPoint {
		return g.Point().Bounds()
	}
	return wire.BoundsFromBytes(g.payload)
}

// IsEmpty reports whether the shape has no parts.
func (g Geometry) IsEmpty() bool {
	switch g.tag {
	case wire.TagPoint:
		return false
	case wire.TagMultiPoint:
		return g.MultiPoint().IsEmpty()
	case wire.TagLineString:
		return g.Line().IsEmpty()
	case wire.TagMultiLineString:
		return g.MultiLine().IsEmpty()
	case wire.TagPolygon:
		return g.Polygon().IsEmpty()
	case wire.TagMultiPolygon:
		return g.MultiPolygon().IsEmpty()
	case wire.TagCollection:
		return g.Collection().IsEmpty()
	default:
		return true
	}
}

// Geom converts the view back to the rich geometry model.
func (g Geometry) Geom() geom.Geom {
	switch g.tag {
	case wire.TagPoint:
		return g.Point().Geom()
	case wire.TagMultiPoint:
		return g.MultiPoint().Geom()
	case wire.TagLineString:
		return g.Line().Geom()
	case wire.TagMultiLineString:
		return g.MultiLine().Geom()
	case wire.TagPolygon:
		return g.Polygon().Geom()
	case wire.TagMultiPolygon:
		return g.MultiPolygon().Geom()
	case wire.TagCollection:
		return g.Collection().Geom()
	default:
		return nil
	}
}
