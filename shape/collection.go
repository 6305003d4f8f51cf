package shape

import (
	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// Collection is the view over an encoded geometry collection. Arbitrary
// nesting is flattened at encode time into exactly three parts: all points,
// all lines, and all polygons. The original grouping is not recoverable;
// relation queries never need it.
//
// After the bounding box the payload carries two offsets: the end of the
// point region and the end of the line region, both relative to the start
// of the point region. Two uint32 fields keep the regions 8-byte aligned
// without padding.
type Collection struct {
	bounds   wire.BoundingBox
	points   MultiPoint
	lines    MultiLine
	polygons MultiPolygon
}

// CollectionFromPayload interprets b as a collection payload.
func CollectionFromPayload(b []byte) Collection {
	bounds := wire.BoundsFromBytes(b)
	b = b[wire.BoundsSize:]
	linesOff := wire.ReadU32(b)
	polysOff := wire.ReadU32(b[wire.U32Size:])
	b = b[2*wire.U32Size:]
	return Collection{
		bounds:   bounds,
		points:   MultiPointFromPayload(b[:linesOff]),
		lines:    MultiLineFromPayload(b[linesOff:polysOff]),
		polygons: MultiPolygonFromPayload(b[polysOff:]),
	}
}

// Points returns the flattened point part.
func (c Collection) Points() MultiPoint { return c.points }

// Lines returns the flattened line part.
func (c Collection) Lines() MultiLine { return c.lines }

// Polygons returns the flattened polygon part.
func (c Collection) Polygons() MultiPolygon { return c.polygons }

// IsEmpty reports whether all three parts are empty.
func (c Collection) IsEmpty() bool {
	return c.points.IsEmpty() && c.lines.IsEmpty() && c.polygons.IsEmpty()
}

// Bounds returns the bounding box recorded at encode time.
func (c Collection) Bounds() wire.BoundingBox { return c.bounds }

// Geom converts the view back to the rich geometry model. The result is
// the flattened form: one MultiPoint, one MultiLineString and one
// MultiPolygon, empty parts omitted.
func (c Collection) Geom() geom.GeometryCollection {
	var out geom.GeometryCollection
	if !c.points.IsEmpty() {
		out = append(out, c.points.Geom())
	}
	if !c.lines.IsEmpty() {
		out = append(out, c.lines.Geom())
	}
	if !c.polygons.IsEmpty() {
		out = append(out, c.polygons.Geom())
	}
	return out
}
