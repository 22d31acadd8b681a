package util

import (
	"errors"
	"math"
)

// Vector3 is a column vector of three components.
type Vector3 [3]float64

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

func MatrixIdentity() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func DiagonalMatrix(v Vector3) Matrix3 {
	return Matrix3{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}

// MatrixVectorMultiply returns dst where dst[row] = sum(matrix[row][col] * vector[col]).
func MatrixVectorMultiply(matrix Matrix3, vector Vector3) Vector3 {
	var dst Vector3
	for row := 0; row < 3; row++ {
		dst[row] = matrix[row][0]*vector[0] + matrix[row][1]*vector[1] + matrix[row][2]*vector[2]
	}
	return dst
}

func MatrixMatrixMultiply(left Matrix3, right Matrix3) Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += left[i][k] * right[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// MatrixMultiply multiplies left to right, so the last matrix is applied
// first when the product is used on a vector.
func MatrixMultiply(matrices ...Matrix3) Matrix3 {
	result := MatrixIdentity()
	for _, m := range matrices {
		result = MatrixMatrixMultiply(result, m)
	}
	return result
}

func TransposeMatrix(m Matrix3) Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

func det3x3(m Matrix3) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// InvertMatrix3x3 returns the inverse via the adjugate. Singular matrices
// are rejected.
func InvertMatrix3x3(m Matrix3) (Matrix3, error) {
	det := det3x3(m)
	if det == 0 || math.IsNaN(det) {
		return Matrix3{}, errors.New("matrix is singular")
	}
	invDet := 1.0 / det

	var inv Matrix3
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return inv, nil
}
