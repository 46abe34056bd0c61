// SPDX-License-Identifier: MIT

// Package builder assembles reproducible sparse symmetric positive definite
// systems for tests, benchmarks and demos of the mixed-integer solver.
//
// A system is described by composing Constructors over one shared index
// space. Each constructor adds couplings between unknowns i and j; Build then
// turns the accumulated couplings into a graph-Laplacian-like matrix
//
//	A[i][j] = −Σ w(i,j)            (i ≠ j)
//	A[i][i] =  Σ_j w(i,j) + shift
//
// which is symmetric and strictly diagonally dominant, hence SPD, for any
// positive shift and positive coupling weights.
//
// Constructors:
//
//	Path(n)             chain 0–1–…–(n−1)
//	Grid(rows, cols)    row-major 4-neighborhood lattice
//	RandomSparse(n, p)  independent coupling per pair with probability p
//
// Options follow the functional style used across the module: WithSeed or
// WithRand for stochastic constructors, WithWeightFn and its shorthands for
// coupling strengths, WithShift for the diagonal regularization. Option
// constructors panic on meaningless values; Build and Vector only return
// sentinel errors.
//
// Determinism: the same constructors, options and seed always yield the same
// matrix, entry for entry.
package builder
