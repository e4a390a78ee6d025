// Package ralgeb is a small toolbox for 2D geometry and elementary
// linear algebra — points, lines, circles, counting functions, and a
// dense matrix with row operations and arithmetic.
//
// 🚀 What is ralgeb?
//
//	A teaching-grade, synchronous utility library that brings together:
//		• Geometry primitives: Point, Line (length/slope/angle), Circle
//		• Combinatorics: factorial, permutations, combinations
//		• Dense matrices: construction, identity, row replacement,
//		  scalar scaling, transpose, add/subtract/multiply, dot product
//
// ✨ Why choose ralgeb?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest error surface – sentinel errors, errors.Is-friendly wrapping
//   - Value semantics – matrix operations return fresh values, never aliases
//   - Pure Go – no cgo, no hidden runtime deps
//
// Under the hood, everything is organized under three subpackages:
//
//	geometry/      — Point, Line, Circle value types and coordinate helpers
//	combinatorics/ — Factorial, Permutation, Combinations over uint64
//	matrix/        — dense rows×cols float64 matrix + elementary operations
//
// Quick ASCII example:
//
//	    ⎡1 0 0⎤   ⎡1 2⎤   ⎡1 2⎤
//	    ⎢0 1 0⎥ × ⎢0 0⎥ = ⎢0 0⎥
//	    ⎣0 0 1⎦   ⎣0 0⎦   ⎣0 0⎦
//
//	the 3×3 identity is the neutral element of matrix multiplication.
//
// Everything here is a plain value computation: no goroutines, no I/O,
// no global state. Each subpackage documents its own error policy and
// the boundary conditions it deliberately leaves unchecked.
//
//	go get github.com/rajkumarGosavi/ralgeb
package ralgeb
