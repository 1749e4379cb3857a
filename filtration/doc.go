// Package filtration provides the comparators that turn a core.Complex
// into a filtration, plus a small mode registry for CLI-style wrappers.
//
// A filtration is any total order on the simplices that respects the
// face poset: every face must precede each of its cofaces. The boundary
// matrix construction in package boundary depends on this invariant
// ("lower triangular" columns) and fails loudly when it is violated, so
// every comparator exported here is built to preserve it:
//
//   - ByDimension - dimension first, then lexicographic on vertex sets.
//     The canonical order for unweighted complexes.
//   - ByData - data value first; ties broken by dimension (faces first),
//     then lexicographically. The standard weight-driven filtration.
//   - LowerStar - orders by the maximum vertex value of each simplex
//     (sublevel-set filtration of a vertex function).
//   - UpperStar - orders by the minimum vertex value, descending
//     (superlevel-set filtration).
//
// ParseMode maps user-supplied mode strings onto these comparators. An
// unknown string is never fatal: the function falls back to
// ModeStandard, logs the decision, and reports ErrUnknownMode so that
// callers who care can still detect the repair.
package filtration
