package relate

import (
	"github.com/hupe1980/zerogeom/shape"
)

// Relate evaluates the requested predicates of a relative to b in one pass
// over the part pairs of the two geometries.
//
// An empty operand, or operands with disjoint bounding boxes, short-circuit
// to an all-false answer with Disjoint true. With EarlyExit set, evaluation
// returns as soon as Contains, Within or Intersects resolves to true; the
// strict variants, Disjoint and Touches need the full pass and never fire
// the exit.
func Relate(a, b shape.Geometry, req Request) Answer {
	if !req.any() {
		return Answer{}
	}
	if a.IsEmpty() || b.IsEmpty() {
		return disjointAnswer(req)
	}
	if a.Bounds().Disjoint(b.Bounds()) {
		return disjointAnswer(req)
	}

	pa, pb := partsOf(a), partsOf(b)
	na, nb := pa.len(), pb.len()

	nbEff := 0
	for j := 0; j < nb; j++ {
		if !pb.at(j).empty() {
			nbEff++
		}
	}

	var contact, interiors, looseContains, looseWithin bool
	naEff, aContained := 0, 0
	for i := 0; i < na; i++ {
		ap := pa.at(i)
		if ap.empty() {
			continue
		}
		naEff++
		partContained := false
		for j := 0; j < nb; j++ {
			r := relParts(ap, pb.at(j))
			contact = contact || r.contact
			interiors = interiors || r.interiors
			if r.aContainsB {
				looseContains = true
			}
			if r.bContainsA {
				looseWithin = true
				partContained = true
			}
			if req.EarlyExit {
				if early, hit := earlyAnswer(req, contact, looseContains, looseWithin); hit {
					return early
				}
			}
		}
		if partContained {
			aContained++
		}
	}
	if naEff == 0 || nbEff == 0 {
		return disjointAnswer(req)
	}

	strictContains := false
	if req.StrictContains {
		if nbEff == 1 {
			strictContains = looseContains
		} else {
			strictContains = allPartsContained(pa, pb)
		}
	}

	var ans Answer
	if req.Contains {
		ans.Contains = boolOf(looseContains)
	}
	if req.StrictContains {
		ans.StrictContains = boolOf(strictContains)
	}
	if req.Within {
		ans.Within = boolOf(looseWithin)
	}
	if req.StrictWithin {
		ans.StrictWithin = boolOf(aContained == naEff)
	}
	if req.Intersects {
		ans.Intersects = boolOf(contact)
	}
	if req.Disjoint {
		ans.Disjoint = boolOf(!contact)
	}
	if req.Touches {
		ans.Touches = boolOf(contact && !interiors)
	}
	return ans
}

// earlyAnswer builds the partial answer of an early exit. Only the loose
// containment predicates and Intersects grow monotonically over the pair
// loop, so only those can trigger the exit.
func earlyAnswer(req Request, contact, looseContains, looseWithin bool) (Answer, bool) {
	var a Answer
	hit := false
	if req.Contains && looseContains {
		a.Contains = True
		hit = true
	}
	if req.Within && looseWithin {
		a.Within = True
		hit = true
	}
	if req.Intersects && contact {
		a.Intersects = True
		hit = true
	}
	return a, hit
}

// allPartsContained reports whether every non-empty part of pb is contained
// by some part of pa.
func allPartsContained(pa, pb partList) bool {
	for j := 0; j < pb.len(); j++ {
		bp := pb.at(j)
		if bp.empty() {
			continue
		}
		contained := false
		for i := 0; i < pa.len(); i++ {
			ap := pa.at(i)
			if ap.empty() {
				continue
			}
			if relParts(ap, bp).aContainsB {
				contained = true
				break
			}
		}
		if !contained {
			return false
		}
	}
	return true
}

// Intersects reports whether a and b share at least one point.
func Intersects(a, b shape.Geometry) bool {
	return Relate(a, b, Request{Intersects: true, EarlyExit: true}).Intersects.Value()
}

// Disjoint reports whether a and b share no point.
func Disjoint(a, b shape.Geometry) bool {
	return Relate(a, b, Request{Disjoint: true}).Disjoint.Value()
}

// Contains reports whether a contains every part of b.
func Contains(a, b shape.Geometry) bool {
	return Relate(a, b, Request{StrictContains: true}).StrictContains.Value()
}

// Within reports whether every part of a is contained by b.
func Within(a, b shape.Geometry) bool {
	return Relate(a, b, Request{StrictWithin: true}).StrictWithin.Value()
}

// Touches reports whether a and b share boundary points but no interior
// points.
func Touches(a, b shape.Geometry) bool {
	return Relate(a, b, Request{Touches: true}).Touches.Value()
}
