package shape

import (
	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// Line is the view over an encoded line-string payload.
type Line struct {
	bounds wire.BoundingBox
	coords wire.Coords
}

// LineFromPayload interprets b as a line-string payload.
func LineFromPayload(b []byte) Line {
	return Line{
		bounds: wire.BoundsFromBytes(b),
		coords: wire.CoordsFromBytes(b[wire.BoundsSize:]),
	}
}

// Len returns the number of vertices.
func (l Line) Len() int { return l.coords.Len() }

// IsEmpty reports whether the line has no vertices.
func (l Line) IsEmpty() bool { return l.coords.IsEmpty() }

// At returns the i-th vertex.
func (l Line) At(i int) wire.Coord { return l.coords.At(i) }

// Coords returns the raw coordinate view.
func (l Line) Coords() wire.Coords { return l.coords }

// NumSegments returns the number of edges.
func (l Line) NumSegments() int { return l.coords.NumSegments() }

// Segment returns the i-th edge.
func (l Line) Segment(i int) wire.Segment { return l.coords.Segment(i) }

// Bounds returns the bounding box recorded at encode time.
func (l Line) Bounds() wire.BoundingBox { return l.bounds }

// Geom converts the view back to the rich geometry model.
func (l Line) Geom() geom.LineString {
	out := make(geom.LineString, l.Len())
	for i := range out {
		c := l.coords.At(i)
		out[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return out
}
