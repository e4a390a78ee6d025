package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense rows×cols matrix of float64 values.
//
// Entries live in a row-major backing slice (offset i*cols + j) that
// the Matrix owns exclusively: two Matrix values never share storage.
// The zero value is an empty 0×0 matrix; useful matrices come from
// New, Identity or FromRows.
type Matrix struct {
	rows, cols int       // extents, always >= 0
	data       []float64 // row-major backing store, len == rows*cols
}

// New returns a rows×cols matrix with every entry 0.0.
//
// Any non-negative shape is valid, including zero-sized ones (0×c, r×0,
// 0×0). Negative extents are rejected with ErrBadShape.
// Complexity: O(r·c).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Identity returns the rows×cols identity matrix: 1.0 on the main
// diagonal, 0.0 elsewhere.
//
// An identity matrix only exists for square non-negative shapes. For
// any other shape Identity reports absence via ok == false — this is a
// valid "no such matrix" answer, deliberately distinct from the error
// returns used by malformed operations elsewhere in the package.
// Complexity: O(n²).
func Identity(rows, cols int) (m *Matrix, ok bool) {
	if rows != cols || rows < 0 {
		return nil, false
	}

	m, _ = New(rows, rows) // non-negative square shape cannot fail
	for i := 0; i < rows; i++ {
		m.data[i*rows+i] = 1.0
	}

	return m, true
}

// FromRows returns a matrix holding a copy of the given grid, one inner
// slice per row. The grid must be rectangular: every row must have the
// same length as the first, otherwise FromRows fails with
// ErrDimensionMismatch. An empty grid yields the 0×0 matrix.
// Complexity: O(r·c).
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}

	cols := len(rows[0])
	m := &Matrix{
		rows: len(rows),
		cols: cols,
		data: make([]float64, len(rows)*cols),
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the entry at (i, j), or ErrOutOfRange when either index
// falls outside the matrix. Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.cols+j], nil
}

// Principal returns the main-diagonal entries data[i][i] in row order.
// It fails with ErrNonSquare when the matrix is rectangular.
// Complexity: O(r).
func (m *Matrix) Principal() ([]float64, error) {
	if !m.IsSquare() {
		return nil, ErrNonSquare
	}

	principal := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		principal[i] = m.data[i*m.cols+i]
	}

	return principal, nil
}

// Row returns a copy of row i, or ErrOutOfRange when i falls outside
// [0, Rows). Mutating the returned slice never affects the matrix.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}

	row := make([]float64, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])

	return row, nil
}

// Col returns a copy of column j gathered across all rows.
//
// Col is permissive by contract: an index outside [0, Cols) yields an
// all-zero vector of length Rows rather than an error. (Historically
// the zero vector was sized by the column count; that was a shape bug
// and the length is now the row count, matching in-range columns.)
// Complexity: O(r).
func (m *Matrix) Col(j int) []float64 {
	col := make([]float64, m.rows)
	if j < 0 || j >= m.cols {
		return col
	}
	for i := 0; i < m.rows; i++ {
		col[i] = m.data[i*m.cols+j]
	}

	return col
}

// Data returns the matrix as a freshly allocated [][]float64 grid, one
// inner slice per row. The grid shares no storage with the matrix.
// Complexity: O(r·c).
func (m *Matrix) Data() [][]float64 {
	grid := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		grid[i] = make([]float64, m.cols)
		copy(grid[i], m.data[i*m.cols:(i+1)*m.cols])
	}

	return grid
}

// Clone returns a deep copy of the matrix. Complexity: O(r·c).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// String renders the matrix one bracketed row per line, e.g.
//
//	[1, 0]
//	[0, 1]
//
// using %g for entries. The empty matrix renders as the empty string.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
