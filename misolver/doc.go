// Package misolver solves sparse symmetric linear systems A·x = rhs in which a
// chosen subset of unknowns must take integer values.
//
// The solver is a greedy rounding heuristic, not branch-and-bound. Starting
// from the continuous solution it repeatedly picks integer variables, rounds
// them to the nearest integer (halves away from zero), eliminates them from
// the system and refines the remaining unknowns. Refinement escalates through
// three tiers, each tried only when the cheaper one failed to converge:
//
//  1. Gauss-Seidel restricted to the neighbors of the fixed variables
//     (skipped when MaxLocalIters == 0);
//  2. conjugate gradient over the whole reduced system (skipped when
//     MaxCGIters == 0);
//  3. a direct solve (only with IterFullSolution), which refactorizes
//     numerically when the sparsity pattern is unchanged since the last
//     factorization and factorizes from scratch otherwise.
//
// Strategies:
//
//	SolveNoRounding        one factorization, no integer constraints
//	SolveDirectRounding    round everything after one solve; ≤ 2 factorizations
//	SolveIterative         one variable per pass (closest to integer, or caller order)
//	SolveMultipleRounding  a batch per pass, selected by MultipleRoundingThreshold
//
// Solve dispatches on Options.Strategy. Resolve reuses the last factorization
// for a new right-hand side.
//
// Indices in toRound refer to the caller's numbering of x. Once a variable is
// rounded its value is written to x and never touched again; all other
// entries of x are written when the call returns successfully. A and rhs are
// never modified.
//
// Errors:
//
//	ErrNilMatrix, ErrDimensionMismatch, ErrIndexOutOfRange  malformed input
//	ErrNonFinite                                            NaN/Inf reached rounding
//	ErrUnsupportedStrategy                                  unknown Strategy in Solve
//	direct.ErrFactorization and friends                     wrapped, test with errors.Is
//
// Non-convergence of the iterative tiers is not an error.
//
// A Solver holds one direct solver and is not safe for concurrent use.
package misolver
