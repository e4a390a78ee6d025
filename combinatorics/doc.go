// Package combinatorics provides the three classic counting functions
// (factorial, permutations, combinations) over unsigned machine integers.
//
// What:
//
//   - Factorial(n)        — n! with Factorial(0) == 1.
//   - Permutation(n, r)   — n!/(n−r)!: ordered arrangements of r items out of n.
//   - Combinations(n, r)  — n!/((n−r)!·r!): unordered selections of r items out of n.
//
// Policy:
//
//   - Permutation and Combinations return 1 whenever r >= n. That permissive
//     fallback is part of the documented contract (callers relying on it
//     exist); it is not an error and is never reported as one.
//   - Arithmetic is plain uint64: n! overflows silently for n > 20. Callers
//     needing exact big factorials want math/big; this is a counting
//     utility, not an arbitrary-precision engine.
//
// Complexity:
//
//	Each function is a single O(n) loop with O(1) space.
//
// Errors:
//
//	None. The uint64 domain makes negative inputs unrepresentable, and the
//	fallback policy above covers every remaining argument combination.
package combinatorics
