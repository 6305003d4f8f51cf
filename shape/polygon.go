package shape

import (
	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// Ring is one closed boundary of a polygon: the first and last coordinates
// are equal. Ring 0 of a polygon is the exterior, every further ring is a
// hole cut out of it.
type Ring struct {
	coords wire.Coords
}

// Len returns the number of vertices, the closing duplicate included.
func (r Ring) Len() int { return r.coords.Len() }

// IsEmpty reports whether the ring has no vertices.
func (r Ring) IsEmpty() bool { return r.coords.IsEmpty() }

// At returns the i-th vertex.
func (r Ring) At(i int) wire.Coord { return r.coords.At(i) }

// Coords returns the raw coordinate view.
func (r Ring) Coords() wire.Coords { return r.coords }

// NumSegments returns the number of edges.
func (r Ring) NumSegments() int { return r.coords.NumSegments() }

// Segment returns the i-th edge.
func (r Ring) Segment(i int) wire.Segment { return r.coords.Segment(i) }

// Polygon is the view over an encoded polygon payload: a bounding box, a
// ring offset table, and the ring coordinates back to back.
type Polygon struct {
	bounds wire.BoundingBox
	rings  table
}

// PolygonFromPayload interprets b as a polygon payload.
func PolygonFromPayload(b []byte) Polygon {
	return Polygon{
		bounds: wire.BoundsFromBytes(b),
		rings:  splitTable(b[wire.BoundsSize:]),
	}
}

// NumRings returns the total ring count, exterior included.
func (p Polygon) NumRings() int { return p.rings.len() }

// IsEmpty reports whether the polygon has no rings.
func (p Polygon) IsEmpty() bool { return p.rings.len() == 0 }

// Ring returns the i-th ring.
func (p Polygon) Ring(i int) Ring {
	return Ring{coords: wire.CoordsFromBytes(p.rings.span(i))}
}

// Exterior returns the outer boundary.
func (p Polygon) Exterior() Ring { return p.Ring(0) }

// NumHoles returns the number of interior rings.
func (p Polygon) NumHoles() int { return p.rings.len() - 1 }

// Hole returns the i-th interior ring.
func (p Polygon) Hole(i int) Ring { return p.Ring(i + 1) }

// Bounds returns the bounding box recorded at encode time.
func (p Polygon) Bounds() wire.BoundingBox { return p.bounds }

// Geom converts the view back to the rich geometry model.
func (p Polygon) Geom() geom.Polygon {
	out := make(geom.Polygon, p.NumRings())
	for i := range out {
		ring := p.Ring(i)
		path := make([]geom.Point, ring.Len())
		for j := range path {
			c := ring.At(j)
			path[j] = geom.Point{X: c.X, Y: c.Y}
		}
		out[i] = path
	}
	return out
}
