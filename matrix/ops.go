package matrix

import "fmt"

// Transpose returns the cols×rows transpose of m: entry (j, i) of the
// result equals entry (i, j) of m. It always succeeds.
//
// The result is assembled the way the rest of the package works:
// gather each column of m and install it as a row of the result via
// ReplaceRow, so transposition exercises the same row-op path as every
// other transform.
// Complexity: O(r·c²).
func Transpose(m *Matrix) *Matrix {
	out, _ := New(m.cols, m.rows) // shape is non-negative by invariant
	for c := 0; c < m.cols; c++ {
		out, _ = out.ReplaceRow(c, m.Col(c)) // lengths agree by construction
	}

	return out
}

// Add returns the entrywise sum of m1 and m2. It fails with
// ErrDimensionMismatch (wrapped with the row and column differences)
// unless the operands share an identical shape.
// Complexity: O(r·c).
func Add(m1, m2 *Matrix) (*Matrix, error) {
	return combine("Add", m1, m2, +1)
}

// Subtract returns the entrywise difference m1 − m2 under the same
// shape contract as Add.
// Complexity: O(r·c).
func Subtract(m1, m2 *Matrix) (*Matrix, error) {
	return combine("Subtract", m1, m2, -1)
}

// combine computes m1 + sign·m2 for sign ∈ {+1, −1}, sharing the shape
// validation and the flat result loop between Add and Subtract.
func combine(op string, m1, m2 *Matrix, sign float64) (*Matrix, error) {
	if m1.rows != m2.rows || m1.cols != m2.cols {
		return nil, fmt.Errorf("%s: rows differ by %d, cols differ by %d: %w",
			op, absInt(m1.rows-m2.rows), absInt(m1.cols-m2.cols), ErrDimensionMismatch)
	}

	out, _ := New(m1.rows, m1.cols) // shape is non-negative by invariant
	for k := range out.data {
		out.data[k] = m1.data[k] + sign*m2.data[k]
	}

	return out, nil
}

// Multiply returns the matrix product m1 × m2. It fails with
// ErrDimensionMismatch (wrapped with the offending inner dimensions)
// unless m1.Cols == m2.Rows; the result is m1.Rows × m2.Cols with
// entry (i, j) the dot product of row i of m1 and column j of m2.
// Complexity: O(r·n·c).
func Multiply(m1, m2 *Matrix) (*Matrix, error) {
	if m1.cols != m2.rows {
		return nil, fmt.Errorf("Multiply: %d columns against %d rows: %w",
			m1.cols, m2.rows, ErrDimensionMismatch)
	}

	out, _ := New(m1.rows, m2.cols) // shape is non-negative by invariant
	for j := 0; j < m2.cols; j++ {
		col := m2.Col(j) // gather each column once, reuse across rows
		for i := 0; i < m1.rows; i++ {
			row := m1.data[i*m1.cols : (i+1)*m1.cols]
			out.data[i*out.cols+j] = DotProduct(row, col)
		}
	}

	return out, nil
}

// DotProduct returns the sum of pairwise products of v1 and v2.
//
// It is permissive by contract: vectors of different lengths yield 0.0
// rather than an error, so callers composing it (Multiply) never see a
// length failure from well-shaped operands and ad-hoc callers get a
// harmless zero.
// Complexity: O(n).
func DotProduct(v1, v2 []float64) float64 {
	if len(v1) != len(v2) {
		return 0.0
	}

	var sum float64
	for i := range v1 {
		sum += v1[i] * v2[i]
	}

	return sum
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
