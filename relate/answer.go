package relate

// Bool is a tri-state predicate result. The zero value is Unset, which
// marks a predicate that was either not requested or skipped by an early
// exit.
type Bool uint8

const (
	// Unset means the predicate was not evaluated.
	Unset Bool = iota
	// False means the predicate was evaluated and does not hold.
	False
	// True means the predicate was evaluated and holds.
	True
)

// Known reports whether the predicate was evaluated.
func (b Bool) Known() bool { return b != Unset }

// Value reports whether the predicate holds. Unset reads as false.
func (b Bool) Value() bool { return b == True }

func boolOf(v bool) Bool {
	if v {
		return True
	}
	return False
}

// Answer carries the evaluated predicates of one Relate call. Fields that
// were not requested stay Unset; requested fields are True or False, except
// under EarlyExit where fields not yet resolved when the exit fires remain
// Unset.
//
// All fields read as "first operand, relative to second": Contains means
// the first operand contains (part of) the second.
type Answer struct {
	Contains       Bool
	StrictContains Bool
	Within         Bool
	StrictWithin   Bool
	Intersects     Bool
	Disjoint       Bool
	Touches        Bool
}

// AnyPositive reports whether any evaluated predicate other than Disjoint
// holds. This is the early-exit trigger.
func (a Answer) AnyPositive() bool {
	return a.Contains == True || a.StrictContains == True ||
		a.Within == True || a.StrictWithin == True ||
		a.Intersects == True || a.Touches == True
}

// Swapped returns the answer as seen from the second operand, trading the
// Contains and Within families.
func (a Answer) Swapped() Answer {
	a.Contains, a.Within = a.Within, a.Contains
	a.StrictContains, a.StrictWithin = a.StrictWithin, a.StrictContains
	return a
}

// disjointAnswer fills the requested fields for a pair that shares no
// point: every positive predicate is false and Disjoint is true.
func disjointAnswer(req Request) Answer {
	var a Answer
	if req.Contains {
		a.Contains = False
	}
	if req.StrictContains {
		a.StrictContains = False
	}
	if req.Within {
		a.Within = False
	}
	if req.StrictWithin {
		a.StrictWithin = False
	}
	if req.Intersects {
		a.Intersects = False
	}
	if req.Disjoint {
		a.Disjoint = True
	}
	if req.Touches {
		a.Touches = False
	}
	return a
}
