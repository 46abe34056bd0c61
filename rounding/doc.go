// Package rounding chooses which integer-constrained variables the
// mixed-integer solver fixes next.
//
// Rounding policy: Round is round-half-away-from-zero (2.5 → 3, -2.5 → -3;
// never half-to-even), and Error(v) = |Round(v) − v|
// is the perturbation introduced by fixing v.
//
// Selection:
//
//   - SelectBest picks the single candidate closest to an integer
//     (greedy error-minimizing heuristic); ties go to the first candidate in
//     scan order.
//   - RoundingSet collects a batch: the best candidate plus every candidate
//     whose error is within a relative threshold of the best one. threshold 0
//     degenerates to SelectBest; threshold 1 selects everything.
//
// Both are stateless per pass: build, query, discard.
package rounding
