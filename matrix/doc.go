// Package matrix implements a dense rows×cols matrix of float64 values
// with shape-checked construction, elementary row operations, and
// arithmetic.
//
// Representation:
//
//	A Matrix stores its entries in a single row-major slice with the
//	explicit offset formula i*cols + j. The backing store is owned
//	exclusively by its Matrix: accessors hand out copies, and every
//	transform allocates a fresh result.
//
// Value semantics:
//
//	No operation mutates its receiver or its operands. ReplaceRow,
//	ScalarRowMul, ScalarMatMul, Transpose, Add, Subtract and Multiply
//	all return new Matrix values, so call chains compose without hidden
//	aliasing:
//
//	    m, _ := matrix.New(2, 2)
//	    m, _ = m.ReplaceRow(0, []float64{1, 2})
//	    m, _ = m.ScalarMatMul(3)
//
// Errors and absence:
//
//   - Shape conflicts surface as ErrDimensionMismatch (binary operations,
//     ReplaceRow) or ErrNonSquare (Principal).
//   - Out-of-range indices surface as ErrOutOfRange (At, Row, ScalarRowMul).
//     The one exception is ReplaceRow's row index: passing an out-of-range
//     index there is a programmer error and panics — see its doc.
//   - A zero scaling factor surfaces as ErrZeroScalar.
//   - Identity on a non-square shape is not an error at all: it reports
//     absence through a comma-ok boolean, because "no identity exists for
//     this shape" is a valid answer, not a failed operation.
//
// Permissive policies (deliberate, documented, test-locked):
//
//   - DotProduct returns 0 for length-mismatched vectors instead of failing.
//   - Col returns an all-zero column for an out-of-range index instead of
//     failing.
//
// Complexity quicksheet:
//
//	New/Identity/Clone: O(r·c).  At/Rows/Cols/IsSquare: O(1).
//	Row/Col/Principal: O(c), O(r), O(r).
//	ReplaceRow/ScalarRowMul: O(r·c) (fresh value).
//	ScalarMatMul: O(r²·c) (composed from ScalarRowMul per row).
//	Transpose: O(r·c²) (composed from ReplaceRow per column).
//	Add/Subtract: O(r·c).  Multiply: O(r·n·c).
//
// The package is fully synchronous and allocation-transparent; there is
// no internal locking, logging, or retry.
package matrix
