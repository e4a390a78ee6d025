package matrix_test

import (
	"testing"

	"github.com/rajkumarGosavi/ralgeb/matrix"
	"github.com/stretchr/testify/require"
)

func TestReplaceRow(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	r, err := m.ReplaceRow(1, []float64{7, 8})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {7, 8}}, r.Data())

	// The receiver is never touched; every transform yields a fresh value.
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Data())
}

func TestReplaceRow_DimensionMismatch(t *testing.T) {
	m, _ := matrix.New(2, 3)

	_, err := m.ReplaceRow(0, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = m.ReplaceRow(0, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestReplaceRow_IndexPanics(t *testing.T) {
	m, _ := matrix.New(2, 3)

	// A row index outside [0, Rows) is a programmer error, not a
	// recoverable condition: the contract is a panic.
	require.Panics(t, func() { _, _ = m.ReplaceRow(2, []float64{1, 2, 3}) })
	require.Panics(t, func() { _, _ = m.ReplaceRow(-1, []float64{1, 2, 3}) })
}

func TestScalarRowMul(t *testing.T) {
	m, ok := matrix.Identity(3, 3)
	require.True(t, ok)

	s, err := m.ScalarRowMul(1, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3, 0}, s.Data()[1])

	// Other rows and the receiver stay as they were.
	require.Equal(t, []float64{1, 0, 0}, s.Data()[0])
	require.Equal(t, []float64{0, 1, 0}, m.Data()[1])
}

func TestScalarRowMul_ZeroScalar(t *testing.T) {
	m, _ := matrix.New(3, 3)

	_, err := m.ScalarRowMul(0, 0)
	require.ErrorIs(t, err, matrix.ErrZeroScalar)

	// The scalar is validated before the index: a zero scalar wins even
	// when the row index is also bad.
	_, err = m.ScalarRowMul(99, 0)
	require.ErrorIs(t, err, matrix.ErrZeroScalar)
}

func TestScalarRowMul_OutOfRange(t *testing.T) {
	m, _ := matrix.New(3, 3)

	_, err := m.ScalarRowMul(4, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.ScalarRowMul(-1, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestScalarMatMul(t *testing.T) {
	m, ok := matrix.Identity(3, 3)
	require.True(t, ok)

	s, err := m.ScalarMatMul(4)
	require.NoError(t, err)

	diag, err := s.Principal()
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4, 4}, diag)

	// Off-diagonal zeros scale to zeros; the receiver keeps its ones.
	require.Equal(t, []float64{0, 4, 0}, s.Data()[1])
	require.Equal(t, []float64{0, 1, 0}, m.Data()[1])
}

func TestScalarMatMul_NegativeScalar(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, -2}, {0.5, 4}})
	require.NoError(t, err)

	s, err := m.ScalarMatMul(-2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2, 4}, {-1, -8}}, s.Data())
}

func TestScalarMatMul_ZeroScalar(t *testing.T) {
	m, _ := matrix.New(2, 2)
	_, err := m.ScalarMatMul(0)
	require.ErrorIs(t, err, matrix.ErrZeroScalar)
}
