package main

import "math"

// probFloor is the threshold below which a probability contributes no
// entropy, avoiding log(0).
const probFloor = 1e-15

// IsUnitary reports whether M†·M is the identity within tol.
func IsUnitary(m Matrix, tol float64) bool {
	return MulMat(Dagger(m), m).EqualTol(Identity(), tol)
}

// IsNormalized reports whether the squared magnitudes sum to 1 within tol.
func IsNormalized(v Vec, tol float64) bool {
	return math.Abs(v[0].AbsSq()+v[1].AbsSq()-1) <= tol
}

// Probabilities holds the measurement distribution. Prob0 and Prob1 are
// renormalized so they sum to exactly 1 even when the state has drifted off
// unit norm; RawNorm is the pre-normalization sum, kept as a drift
// diagnostic.
type Probabilities struct {
	Prob0   float64 `json:"prob0"`
	Prob1   float64 `json:"prob1"`
	RawNorm float64 `json:"rawNorm"`
}

// MeasureProbs derives the measurement distribution from a state vector.
// The zero vector has no distribution; it defaults to the basis state |0⟩.
func MeasureProbs(v Vec) Probabilities {
	p0 := v[0].AbsSq()
	p1 := v[1].AbsSq()
	sum := p0 + p1
	if sum == 0 {
		return Probabilities{Prob0: 1, Prob1: 0, RawNorm: 0}
	}
	return Probabilities{Prob0: p0 / sum, Prob1: 1 - p0/sum, RawNorm: sum}
}

// Entropy returns the Shannon entropy of the measurement distribution in
// bits.
func Entropy(v Vec) float64 {
	p := MeasureProbs(v)
	h := 0.0
	for _, pr := range [2]float64{p.Prob0, p.Prob1} {
		if pr > probFloor {
			h -= pr * math.Log2(pr)
		}
	}
	return h
}

// Purity returns the sum of squared probabilities. Always 1 for a pure
// single-qubit state; kept for diagnostic symmetry.
func Purity(v Vec) float64 {
	p := MeasureProbs(v)
	return p.Prob0*p.Prob0 + p.Prob1*p.Prob1
}

// BlochAngles returns the polar and azimuthal angles (θ, φ) of the state on
// the Bloch sphere. θ ∈ [0, π]; φ follows the relative phase of the |1⟩
// amplitude and is 0 when that amplitude vanishes.
func BlochAngles(v Vec) (theta, phi float64) {
	a0 := v[0].Abs()
	if a0 > 1 {
		a0 = 1
	}
	theta = 2 * math.Acos(a0)
	if v[1].Abs() > probFloor {
		phi = v[1].Phase() - v[0].Phase()
		// wrap into (-π, π]
		for phi <= -math.Pi {
			phi += 2 * math.Pi
		}
		for phi > math.Pi {
			phi -= 2 * math.Pi
		}
	}
	return theta, phi
}
