package matrix

import "errors"

// Sentinel errors for matrix operations. Call sites wrap them with
// operation context (fmt.Errorf("Op(...): %w", Err)) only when that
// context carries data, such as an offending index or a size
// difference; callers match with errors.Is either way.
var (
	// ErrBadShape indicates a negative row or column count passed to a
	// constructor. Zero-sized shapes are valid; negative ones are not.
	ErrBadShape = errors.New("matrix: negative dimension")

	// ErrNonSquare indicates a square matrix was required but the
	// receiver is rectangular (Principal).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside the
	// matrix's extent (At, Row, ScalarRowMul).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operand shapes incompatible with
	// the requested operation: different shapes for Add/Subtract, inner
	// dimensions for Multiply, row length for ReplaceRow and FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrZeroScalar indicates a zero factor passed to a scaling
	// operation (ScalarRowMul, ScalarMatMul).
	ErrZeroScalar = errors.New("matrix: scalar must be non-zero")
)
