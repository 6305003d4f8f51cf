// Package relate evaluates named spatial predicates between two geometry
// views in a single pass.
//
// A Request selects which predicates the caller wants; the engine computes
// all of them together, sharing the bounding-box filter, the
// point-in-polygon tests and the edge sweeps between predicates instead of
// re-scanning the geometry per predicate. Predicates that were not
// requested are never computed.
//
// All predicates are directional: an Answer describes the first operand
// relative to the second. Contains and Within are inverses, not synonyms.
// Evaluation is total over valid views and never errors; an empty operand
// makes every positive predicate false and Disjoint true.
//
// The read path allocates nothing.
package relate
