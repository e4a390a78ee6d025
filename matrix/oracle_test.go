package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/rajkumarGosavi/ralgeb/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// The tests in this file cross-check the package against gonum/mat on
// deterministic pseudo-random inputs. Entries are small integers held
// in float64, so every arithmetic path is exact and the comparison can
// demand equality instead of a tolerance.

// randMatrix returns an r×c matrix with integer entries in [-10, 10].
func randMatrix(rng *rand.Rand, r, c int) *matrix.Matrix {
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			grid[i][j] = float64(rng.Intn(21) - 10)
		}
	}
	m, err := matrix.FromRows(grid)
	if err != nil {
		panic(err)
	}

	return m
}

// toDense converts a Matrix to a gonum dense matrix.
func toDense(m *matrix.Matrix) *mat.Dense {
	flat := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range m.Data() {
		flat = append(flat, row...)
	}

	return mat.NewDense(m.Rows(), m.Cols(), flat)
}

// requireSame asserts that got has the oracle's shape and entries.
func requireSame(t *testing.T, want mat.Matrix, got *matrix.Matrix) {
	t.Helper()

	r, c := want.Dims()
	require.Equal(t, r, got.Rows())
	require.Equal(t, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want.At(i, j), v, "entry (%d,%d)", i, j)
		}
	}
}

// TestOracle_AddSubtract checks Add and Subtract against gonum across
// a grid of shapes.
func TestOracle_AddSubtract(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, shape := range [][2]int{{1, 1}, {2, 3}, {3, 2}, {4, 4}, {5, 7}} {
		a := randMatrix(rng, shape[0], shape[1])
		b := randMatrix(rng, shape[0], shape[1])

		var wantSum mat.Dense
		wantSum.Add(toDense(a), toDense(b))
		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		requireSame(t, &wantSum, sum)

		var wantDiff mat.Dense
		wantDiff.Sub(toDense(a), toDense(b))
		diff, err := matrix.Subtract(a, b)
		require.NoError(t, err)
		requireSame(t, &wantDiff, diff)
	}
}

// TestOracle_Multiply checks Multiply against gonum for compatible
// shape pairs, including vector-like extremes.
func TestOracle_Multiply(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, shape := range [][3]int{{1, 1, 1}, {2, 3, 2}, {3, 1, 4}, {4, 4, 4}, {5, 2, 7}} {
		a := randMatrix(rng, shape[0], shape[1])
		b := randMatrix(rng, shape[1], shape[2])

		var want mat.Dense
		want.Mul(toDense(a), toDense(b))
		got, err := matrix.Multiply(a, b)
		require.NoError(t, err)
		requireSame(t, &want, got)
	}
}

// TestOracle_Transpose checks Transpose against gonum's transpose view.
func TestOracle_Transpose(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, shape := range [][2]int{{1, 5}, {2, 3}, {4, 4}, {6, 2}} {
		m := randMatrix(rng, shape[0], shape[1])
		requireSame(t, toDense(m).T(), matrix.Transpose(m))
	}
}

// TestOracle_ScalarMatMul checks whole-matrix scaling against gonum
// with integer scalars.
func TestOracle_ScalarMatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, scalar := range []float64{1, -1, 3, -7} {
		m := randMatrix(rng, 3, 4)

		var want mat.Dense
		want.Scale(scalar, toDense(m))
		got, err := m.ScalarMatMul(scalar)
		require.NoError(t, err)
		requireSame(t, &want, got)
	}
}
