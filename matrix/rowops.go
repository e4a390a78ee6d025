package matrix

import "fmt"

// ReplaceRow returns a new matrix identical to m except that row i
// holds a copy of newRow. It fails with ErrDimensionMismatch (wrapped
// with the column-count difference) when len(newRow) != Cols.
//
// The row index itself is not validated: an index outside [0, Rows) is
// a programmer error and panics on the backing-store access. Even then
// the receiver is safe — the fault hits the freshly cloned result, so m
// is left untouched in every case.
// Complexity: O(r·c).
func (m *Matrix) ReplaceRow(i int, newRow []float64) (*Matrix, error) {
	if len(newRow) != m.cols {
		return nil, fmt.Errorf("ReplaceRow: column count differs by %d: %w",
			absInt(m.cols-len(newRow)), ErrDimensionMismatch)
	}

	out := m.Clone()
	copy(out.data[i*m.cols:(i+1)*m.cols], newRow)

	return out, nil
}

// ScalarRowMul returns a new matrix with every entry of row i
// multiplied by scalar. It fails with ErrZeroScalar when scalar == 0
// (scaling a row to zero is never meaningful here) and with
// ErrOutOfRange when i falls outside [0, Rows).
// Complexity: O(r·c).
func (m *Matrix) ScalarRowMul(i int, scalar float64) (*Matrix, error) {
	if scalar == 0.0 {
		return nil, ErrZeroScalar
	}
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("ScalarRowMul(%d): %w", i, ErrOutOfRange)
	}

	out := m.Clone()
	for j := i * m.cols; j < (i+1)*m.cols; j++ {
		out.data[j] *= scalar
	}

	return out, nil
}

// ScalarMatMul returns a new matrix with every entry multiplied by
// scalar. It fails upfront with ErrZeroScalar when scalar == 0;
// otherwise it applies ScalarRowMul to each row in order (row 0 first)
// and propagates any per-row failure unchanged. Given the upfront
// check no per-row step can actually fail, but the composition keeps
// the propagation path honest.
// Complexity: O(r²·c) — one fresh value per row step.
func (m *Matrix) ScalarMatMul(scalar float64) (*Matrix, error) {
	if scalar == 0.0 {
		return nil, ErrZeroScalar
	}

	out := m.Clone()
	var err error
	for r := 0; r < m.rows; r++ {
		if out, err = out.ScalarRowMul(r, scalar); err != nil {
			return nil, err
		}
	}

	return out, nil
}
