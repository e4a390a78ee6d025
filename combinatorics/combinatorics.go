package combinatorics

// Factorial returns n!, with Factorial(0) == 1 by definition.
//
// The computation is an iterative product (equivalent to the recursive
// definition, without the stack growth). Results are exact for n <= 20,
// the largest factorial a uint64 can hold; beyond that the product
// wraps modulo 2⁶⁴ — see the package doc for the overflow policy.
func Factorial(n uint64) uint64 {
	result := uint64(1)
	for k := uint64(2); k <= n; k++ {
		result *= k
	}

	return result
}

// Permutation returns the number of ordered arrangements of r items
// chosen from n, i.e. n!/(n−r)!.
//
// When r >= n it returns 1 — the documented permissive fallback, kept
// for compatibility rather than raising an error. Note this includes
// r == n, where the mathematically expected value would be n!.
func Permutation(n, r uint64) uint64 {
	if n > r {
		return Factorial(n) / Factorial(n-r)
	}

	return 1
}

// Combinations returns the number of unordered selections of r items
// chosen from n, i.e. Permutation(n, r)/r!.
//
// When r >= n it returns 1, mirroring the Permutation fallback.
func Combinations(n, r uint64) uint64 {
	if n > r {
		return Permutation(n, r) / Factorial(r)
	}

	return 1
}
