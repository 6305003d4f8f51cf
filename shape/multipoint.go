package shape

import (
	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// MultiPoint is the view over an encoded multi-point payload.
type MultiPoint struct {
	bounds wire.BoundingBox
	coords wire.Coords
}

// MultiPointFromPayload interprets b as a multi-point payload.
func MultiPointFromPayload(b []byte) MultiPoint {
	return MultiPoint{
		bounds: wire.BoundsFromBytes(b),
		coords: wire.CoordsFromBytes(b[wire.BoundsSize:]),
	}
}

// Len returns the number of points.
func (m MultiPoint) Len() int { return m.coords.Len() }

// IsEmpty reports whether the shape has no points.
func (m MultiPoint) IsEmpty() bool { return m.coords.IsEmpty() }

// At returns the i-th point.
func (m MultiPoint) At(i int) Point { return Point{coord: m.coords.At(i)} }

// Coords returns the raw coordinate view.
func (m MultiPoint) Coords() wire.Coords { return m.coords }

// Bounds returns the bounding box recorded at encode time.
func (m MultiPoint) Bounds() wire.BoundingBox { return m.bounds }

// Geom converts the view back to the rich geometry model.
func (m MultiPoint) Geom() geom.MultiPoint {
	out := make(geom.MultiPoint, m.Len())
	for i := range out {
		c := m.coords.At(i)
		out[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return out
}
