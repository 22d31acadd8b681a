package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatrixNear(t *testing.T, expected Matrix3, actual Matrix3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, expected[i][j], actual[i][j], delta, "element [%d][%d]", i, j)
		}
	}
}

func TestMatrixVectorMultiply(t *testing.T) {
	matrix := Matrix3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	result := MatrixVectorMultiply(matrix, Vector3{1, 2, 3})

	// 1*1+2*2+3*3=14, 4*1+5*2+6*3=32, 7*1+8*2+9*3=50
	assert.Equal(t, Vector3{14, 32, 50}, result)
}

func TestMatrixVectorMultiplyIdentity(t *testing.T) {
	v := Vector3{0.25, -1.5, 3}
	assert.Equal(t, v, MatrixVectorMultiply(MatrixIdentity(), v))
}

func TestMatrixMatrixMultiply(t *testing.T) {
	left := Matrix3{{1, 2, 0}, {3, 4, 0}, {0, 0, 1}}
	right := Matrix3{{5, 6, 0}, {7, 8, 0}, {0, 0, 1}}

	expected := Matrix3{
		{19, 22, 0}, // 1*5+2*7, 1*6+2*8
		{43, 50, 0}, // 3*5+4*7, 3*6+4*8
		{0, 0, 1},
	}
	assert.Equal(t, expected, MatrixMatrixMultiply(left, right))
}

func TestMatrixMultiply(t *testing.T) {
	a := Matrix3{{1, 2, 0}, {3, 4, 0}, {0, 0, 1}}
	b := MatrixIdentity()
	c := DiagonalMatrix(Vector3{2, 2, 2})

	// a * identity * 2*identity = 2*a
	expected := Matrix3{{2, 4, 0}, {6, 8, 0}, {0, 0, 2}}
	assert.Equal(t, expected, MatrixMultiply(a, b, c))
}

func TestTransposeMatrix(t *testing.T) {
	m := Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, Matrix3{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, TransposeMatrix(m))
}

func TestInvertMatrix3x3(t *testing.T) {
	matrix := Matrix3{
		{1, 2, 3},
		{0, 1, 4},
		{5, 6, 0},
	}
	inverse, err := InvertMatrix3x3(matrix)
	require.NoError(t, err)

	// Multiply matrix by its inverse, should get identity
	assertMatrixNear(t, MatrixIdentity(), MatrixMatrixMultiply(matrix, inverse), 1e-12)
}

func TestInvertMatrix3x3Singular(t *testing.T) {
	singular := Matrix3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	_, err := InvertMatrix3x3(singular)
	assert.Error(t, err)
}

func TestInvertMatrix3x3NaN(t *testing.T) {
	_, err := InvertMatrix3x3(Matrix3{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}})
	assert.Error(t, err)
}
