package main

import (
	"fmt"
	"math"
)

// snapEpsilon flushes float noise to exact zero at construction time.
// defaultTol is the tolerance used for value comparisons and validity checks.
const (
	snapEpsilon = 1e-15
	defaultTol  = 1e-12
)

// Complex is an immutable complex value. Components with magnitude below
// snapEpsilon are stored as exact zero.
type Complex struct {
	Re float64
	Im float64
}

var (
	czero = Complex{}
	cone  = Complex{Re: 1}
	ci    = Complex{Im: 1}
)

// NewComplex builds a Complex, snapping near-zero components to zero.
func NewComplex(re, im float64) Complex {
	if math.Abs(re) < snapEpsilon {
		re = 0
	}
	if math.Abs(im) < snapEpsilon {
		im = 0
	}
	return Complex{Re: re, Im: im}
}

// FromPolar builds a Complex from magnitude and phase.
func FromPolar(r, theta float64) Complex {
	return NewComplex(r*math.Cos(theta), r*math.Sin(theta))
}

func (c Complex) Add(o Complex) Complex {
	return NewComplex(c.Re+o.Re, c.Im+o.Im)
}

func (c Complex) Sub(o Complex) Complex {
	return NewComplex(c.Re-o.Re, c.Im-o.Im)
}

func (c Complex) Mul(o Complex) Complex {
	return NewComplex(c.Re*o.Re-c.Im*o.Im, c.Re*o.Im+c.Im*o.Re)
}

func (c Complex) Conj() Complex {
	return NewComplex(c.Re, -c.Im)
}

func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// AbsSq returns |c|² without the square root.
func (c Complex) AbsSq() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

// Phase returns the argument in (-π, π].
func (c Complex) Phase() float64 {
	return math.Atan2(c.Im, c.Re)
}

// Normalize scales the value to unit magnitude. The zero value is returned
// unchanged rather than dividing by zero.
func (c Complex) Normalize() Complex {
	r := c.Abs()
	if r == 0 {
		return c
	}
	return NewComplex(c.Re/r, c.Im/r)
}

// EqualTol reports whether both components agree within tol.
func (c Complex) EqualTol(o Complex, tol float64) bool {
	return math.Abs(c.Re-o.Re) <= tol && math.Abs(c.Im-o.Im) <= tol
}

// Equal uses the canonical tolerance.
func (c Complex) Equal(o Complex) bool {
	return c.EqualTol(o, defaultTol)
}

// Rect renders the value as "a + bi" with the given decimal precision.
// Near-zero parts collapse, and unit imaginary coefficients print as
// "i"/"-i" rather than "1i"/"-1i".
func (c Complex) Rect(prec int) string {
	re, im := c.Re, c.Im
	if math.Abs(re) < snapEpsilon {
		re = 0
	}
	if math.Abs(im) < snapEpsilon {
		im = 0
	}

	switch {
	case re == 0 && im == 0:
		return fmt.Sprintf("%.*f", prec, 0.0)
	case im == 0:
		return fmt.Sprintf("%.*f", prec, re)
	case re == 0:
		return imagTerm(im, prec)
	}

	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%.*f %s %s", prec, re, sign, imagTerm(math.Abs(im), prec))
}

func imagTerm(im float64, prec int) string {
	if im == 1 {
		return "i"
	}
	if im == -1 {
		return "-i"
	}
	return fmt.Sprintf("%.*fi", prec, im)
}

// Polar renders the value as "r·e^(iθ)". Zero has no meaningful phase and
// prints as plain zero.
func (c Complex) Polar(prec int) string {
	r := c.Abs()
	if r < snapEpsilon {
		return fmt.Sprintf("%.*f", prec, 0.0)
	}
	return fmt.Sprintf("%.*f·e^(%.*fi)", prec, r, prec, c.Phase())
}

func (c Complex) String() string {
	return c.Rect(3)
}
