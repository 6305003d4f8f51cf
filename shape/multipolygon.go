package shape

import (
	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// MultiPolygon is the view over an encoded multi-polygon payload. Each
// part is a full polygon payload with its own bounding box and ring table.
type MultiPolygon struct {
	bounds wire.BoundingBox
	parts  table
}

// MultiPolygonFromPayload interprets b as a multi-polygon payload.
func MultiPolygonFromPayload(b []byte) MultiPolygon {
	return MultiPolygon{
		bounds: wire.BoundsFromBytes(b),
		parts:  splitTable(b[wire.BoundsSize:]),
	}
}

// Len returns the number of polygon parts.
func (m MultiPolygon) Len() int { return m.parts.len() }

// IsEmpty reports whether the shape has no parts.
func (m MultiPolygon) IsEmpty() bool { return m.parts.len() == 0 }

// At returns the i-th polygon part.
func (m MultiPolygon) At(i int) Polygon { return PolygonFromPayload(m.parts.span(i)) }

// Bounds returns the bounding box recorded at encode time.
func (m MultiPolygon) Bounds() wire.BoundingBox { return m.bounds }

// Geom converts the view back to the rich geometry model.
func (m MultiPolygon) Geom() geom.MultiPolygon {
	out := make(geom.MultiPolygon, m.Len())
	for i := range out {
		out[i] = m.At(i).Geom()
	}
	return out
}
