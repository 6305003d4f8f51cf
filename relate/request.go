package relate

// Request names the predicates the caller wants evaluated. Each field set
// to true asks for the corresponding Answer field to be filled in; the
// engine skips the work for everything left false.
//
// The Strict variants quantify over the parts of the second operand: loose
// Contains holds when the first operand contains at least one whole part of
// the second, StrictContains when it contains every part. For single-part
// operands the loose and strict forms agree. Within and StrictWithin mirror
// this with the operands swapped.
type Request struct {
	// Contains asks whether the first operand contains at least one whole
	// part of the second.
	Contains bool
	// StrictContains asks whether the first operand contains every part of
	// the second.
	StrictContains bool
	// Within asks whether at least one whole part of the first operand is
	// contained by the second.
	Within bool
	// StrictWithin asks whether every part of the first operand is
	// contained by the second.
	StrictWithin bool
	// Intersects asks whether the operands share at least one point.
	Intersects bool
	// Disjoint asks whether the operands share no point at all.
	Disjoint bool
	// Touches asks whether the operands share boundary points but no
	// interior points.
	Touches bool

	// EarlyExit stops evaluation as soon as any requested positive
	// predicate resolves to true. The remaining requested fields of the
	// Answer may then be left unset.
	EarlyExit bool
}

// Everything requests every predicate.
func Everything() Request {
	return Request{
		Contains:       true,
		StrictContains: true,
		Within:         true,
		StrictWithin:   true,
		Intersects:     true,
		Disjoint:       true,
		Touches:        true,
	}
}

// Swapped returns the request with the roles of the two operands exchanged,
// so that Relate(b, a, r.Swapped()) answers the same questions as
// Relate(a, b, r) with the Contains and Within families traded.
func (r Request) Swapped() Request {
	r.Contains, r.Within = r.Within, r.Contains
	r.StrictContains, r.StrictWithin = r.StrictWithin, r.StrictContains
	return r
}

// any reports whether at least one predicate is requested.
func (r Request) any() bool {
	return r.Contains || r.StrictContains || r.Within || r.StrictWithin ||
		r.Intersects || r.Disjoint || r.Touches
}
