package shape

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// Point is the view over an encoded point payload.
type Point struct {
	coord wire.Coord
}

// PointFromPayload interprets b as a point payload (one coordinate pair).
func PointFromPayload(b []byte) Point {
	return Point{coord: wire.Coord{X: wire.ReadFloat(b), Y: wire.ReadFloat(b[8:])}}
}

// X returns the point's first planar component.
func (p Point) X() float64 { return p.coord.X }

// Y returns the point's second planar component.
func (p Point) Y() float64 { return p.coord.Y }

// Coord returns the point as a coordinate pair.
func (p Point) Coord() wire.Coord { return p.coord }

// Bounds returns the degenerate box covering only the point itself.
func (p Point) Bounds() wire.BoundingBox {
	return wire.BoundingBox{Min: p.coord, Max: p.coord}
}

// Geom converts the view back to the rich geometry model.
func (p Point) Geom() geom.Point {
	return geom.Point{X: p.coord.X, Y: p.coord.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("Point%v", p.coord)
}
