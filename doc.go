// Package misolve solves sparse symmetric positive definite linear systems in
// which a chosen subset of the unknowns must take integer values, the
// mixed-integer quadratic problems that show up in quad-mesh parametrization,
// seam alignment and quantization.
//
// 🚀 What is inside?
//
//	A layered solver that trades a true branch-and-bound search for rounding
//	heuristics that scale to hundreds of thousands of unknowns:
//		• Sparse storage: symmetric column-compressed matrices with
//		  fix-and-eliminate of single unknowns or batches
//		• Local refinement: Gauss–Seidel restricted to a neighborhood, then
//		  conjugate gradient over the whole reduced system
//		• Direct solves: Cholesky, LU and QR backends with pattern reuse
//		• Rounding: nearest-integer selection and threshold-based batching
//		• Strategies: no rounding, direct, greedy and multiple rounding
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    — dense Matrix contract, validators and numeric options
//	sparse/    — sparse symmetric Matrix, elimination and index maps
//	iterative/ — local Gauss–Seidel and conjugate gradient
//	direct/    — factorization backends behind a single Solver contract
//	rounding/  — Round, SelectBest and RoundingSet
//	misolver/  — the Solver, its Options and rounding strategies
//	builder/   — reproducible SPD test systems (paths, grids, random)
//
// Quick example:
//
//	a, _ := builder.Build(nil, builder.Grid(8, 8))
//	rhs, _ := builder.Vector(a.Dim(), -1, 1, builder.WithSeed(1))
//	x := make([]float64, a.Dim())
//	s, _ := misolver.New()
//	stats, err := s.Solve(a, x, rhs, []int{0, 9, 18, 27})
//
// After Solve the listed unknowns hold integers and every other unknown is
// the minimizer of the energy with those integers held fixed.
//
//	go get github.com/katalvlaran/misolve
package misolve
