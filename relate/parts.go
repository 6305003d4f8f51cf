package relate

import (
	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

type partKind uint8

const (
	partPoint partKind = iota
	partLine
	partPolygon
)

// part is one atomic shape of an operand: a point, a linestring or a
// polygon. Multi kinds and collections decompose into their parts; the
// three single kinds are a one-part list of themselves.
type part struct {
	kind  partKind
	point wire.Coord
	line  shape.Line
	poly  shape.Polygon
}

// partList enumerates the parts of a geometry without allocating. For
// collections the index space is points, then lines, then polygons.
type partList struct {
	points    shape.MultiPoint
	lines     shape.MultiLine
	polys     shape.MultiPolygon
	single    part
	hasSingle bool
}

func partsOf(g shape.Geometry) partList {
	var pl partList
	switch g.Kind() {
	case wire.TagPoint:
		pl.single = part{kind: partPoint, point: g.Point().Coord()}
		pl.hasSingle = true
	case wire.TagLineString:
		pl.single = part{kind: partLine, line: g.Line()}
		pl.hasSingle = true
	case wire.TagPolygon:
		pl.single = part{kind: partPolygon, poly: g.Polygon()}
		pl.hasSingle = true
	case wire.TagMultiPoint:
		pl.points = g.MultiPoint()
	case wire.TagMultiLineString:
		pl.lines = g.MultiLine()
	case wire.TagMultiPolygon:
		pl.polys = g.MultiPolygon()
	case wire.TagCollection:
		c := g.Collection()
		pl.points = c.Points()
		pl.lines = c.Lines()
		pl.polys = c.Polygons()
	}
	return pl
}

func (pl partList) len() int {
	if pl.hasSingle {
		return 1
	}
	return pl.points.Len() + pl.lines.Len() + pl.polys.Len()
}

func (pl partList) at(i int) part {
	if pl.hasSingle {
		return pl.single
	}
	if n := pl.points.Len(); i < n {
		return part{kind: partPoint, point: pl.points.At(i).Coord()}
	} else {
		i -= n
	}
	if n := pl.lines.Len(); i < n {
		return part{kind: partLine, line: pl.lines.At(i)}
	}
	return part{kind: partPolygon, poly: pl.polys.At(i - pl.lines.Len())}
}

// empty reports whether the part holds no coordinates at all. Empty parts
// relate to nothing.
func (p part) empty() bool {
	switch p.kind {
	case partLine:
		return p.line.IsEmpty()
	case partPolygon:
		return p.poly.IsEmpty()
	default:
		return false
	}
}
