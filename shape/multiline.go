package shape

import (
	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// MultiLine is the view over an encoded multi-line-string payload. Each
// part is a full line-string payload with its own bounding box.
type MultiLine struct {
	bounds wire.BoundingBox
	parts  table
}

// MultiLineFromPayload interprets b as a multi-line-string payload.
func MultiLineFromPayload(b []byte) MultiLine {
	return MultiLine{
		bounds: wire.BoundsFromBytes(b),
		parts:  splitTable(b[wire.BoundsSize:]),
	}
}

// Len returns the number of line parts.
func (m MultiLine) Len() int { return m.parts.len() }

// IsEmpty reports whether the shape has no parts.
func (m MultiLine) IsEmpty() bool { return m.parts.len() == 0 }

// At returns the i-th line part.
func (m MultiLine) At(i int) Line { return LineFromPayload(m.parts.span(i)) }

// Bounds returns the bounding box recorded at encode time.
func (m MultiLine) Bounds() wire.BoundingBox { return m.bounds }

// Geom converts the view back to the rich geometry model.
func (m MultiLine) Geom() geom.MultiLineString {
	out := make(geom.MultiLineString, m.Len())
	for i := range out {
		out[i] = m.At(i).Geom()
	}
	return out
}
