package main

// Matrix is a 2×2 complex operator, row-major. Matrices are plain values:
// operations copy, never alias.
type Matrix [2][2]Complex

// Vec is a single-qubit state vector, amplitudes for |0⟩ and |1⟩.
type Vec [2]Complex

// Identity returns the 2×2 identity.
func Identity() Matrix {
	return Matrix{
		{cone, czero},
		{czero, cone},
	}
}

// MulMat returns the matrix product A·B.
func MulMat(a, b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0].Mul(b[0][j]).Add(a[i][1].Mul(b[1][j]))
		}
	}
	return out
}

// Apply returns M·v.
func Apply(m Matrix, v Vec) Vec {
	return Vec{
		m[0][0].Mul(v[0]).Add(m[0][1].Mul(v[1])),
		m[1][0].Mul(v[0]).Add(m[1][1].Mul(v[1])),
	}
}

// Dagger returns the conjugate transpose.
func Dagger(m Matrix) Matrix {
	return Matrix{
		{m[0][0].Conj(), m[1][0].Conj()},
		{m[0][1].Conj(), m[1][1].Conj()},
	}
}

// Det returns the determinant.
func Det(m Matrix) Complex {
	return m[0][0].Mul(m[1][1]).Sub(m[0][1].Mul(m[1][0]))
}

// Trace returns the trace.
func Trace(m Matrix) Complex {
	return m[0][0].Add(m[1][1])
}

// EqualTol reports element-wise agreement within tol.
func (m Matrix) EqualTol(o Matrix, tol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !m[i][j].EqualTol(o[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// initialVec is the fixed starting state |0⟩.
func initialVec() Vec {
	return Vec{cone, czero}
}
