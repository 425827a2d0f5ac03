package main

import (
	"math"
	"testing"
)

func TestNewComplexSnapsNoise(t *testing.T) {
	tests := []struct {
		re, im         float64
		wantRe, wantIm float64
	}{
		{1e-16, 0, 0, 0},
		{-1e-16, 1e-16, 0, 0},
		{1e-14, 0, 1e-14, 0}, // above the snap threshold, kept
		{0.5, -1e-17, 0.5, 0},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		got := NewComplex(tt.re, tt.im)
		if got.Re != tt.wantRe || got.Im != tt.wantIm {
			t.Errorf("NewComplex(%g, %g) = (%g, %g), want (%g, %g)",
				tt.re, tt.im, got.Re, got.Im, tt.wantRe, tt.wantIm)
		}
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := NewComplex(1, 2)
	b := NewComplex(3, -1)

	if got := a.Add(b); !got.Equal(NewComplex(4, 1)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(NewComplex(-2, 3)) {
		t.Errorf("Sub = %v", got)
	}
	// (1+2i)(3-i) = 3 - i + 6i + 2 = 5 + 5i
	if got := a.Mul(b); !got.Equal(NewComplex(5, 5)) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Conj(); !got.Equal(NewComplex(1, -2)) {
		t.Errorf("Conj = %v", got)
	}
	if got := ci.Mul(ci); !got.Equal(NewComplex(-1, 0)) {
		t.Errorf("i*i = %v, want -1", got)
	}
}

func TestComplexMagnitudeAndPhase(t *testing.T) {
	c := NewComplex(3, 4)
	if math.Abs(c.Abs()-5) > defaultTol {
		t.Errorf("Abs = %g, want 5", c.Abs())
	}
	if math.Abs(c.AbsSq()-25) > defaultTol {
		t.Errorf("AbsSq = %g, want 25", c.AbsSq())
	}
	if math.Abs(ci.Phase()-math.Pi/2) > defaultTol {
		t.Errorf("Phase(i) = %g, want π/2", ci.Phase())
	}
	if math.Abs(NewComplex(-1, 0).Phase()-math.Pi) > defaultTol {
		t.Errorf("Phase(-1) = %g, want π", NewComplex(-1, 0).Phase())
	}
}

func TestFromPolarRoundTrip(t *testing.T) {
	for _, theta := range []float64{0, math.Pi / 4, math.Pi / 2, -math.Pi / 3} {
		c := FromPolar(2, theta)
		if math.Abs(c.Abs()-2) > defaultTol {
			t.Errorf("FromPolar(2, %g).Abs() = %g", theta, c.Abs())
		}
		if math.Abs(c.Phase()-theta) > defaultTol {
			t.Errorf("FromPolar(2, %g).Phase() = %g", theta, c.Phase())
		}
	}
}

func TestNormalizeZeroIsPolicy(t *testing.T) {
	if got := czero.Normalize(); got != czero {
		t.Errorf("Normalize(0) = %v, want the zero value", got)
	}
	c := NewComplex(3, 4).Normalize()
	if math.Abs(c.Abs()-1) > defaultTol {
		t.Errorf("normalized magnitude = %g, want 1", c.Abs())
	}
}

func TestEqualTol(t *testing.T) {
	a := NewComplex(1, 1)
	b := NewComplex(1+1e-13, 1-1e-13)
	if !a.Equal(b) {
		t.Error("values within 1e-12 should compare equal")
	}
	if a.EqualTol(NewComplex(1+1e-11, 1), defaultTol) {
		t.Error("values apart by 1e-11 should not compare equal at 1e-12")
	}
}

func TestRectRendering(t *testing.T) {
	tests := []struct {
		c    Complex
		prec int
		want string
	}{
		{NewComplex(0, 0), 2, "0.00"},
		{NewComplex(1, 0), 2, "1.00"},
		{NewComplex(0, 1), 2, "i"},
		{NewComplex(0, -1), 2, "-i"},
		{NewComplex(0, 0.5), 2, "0.50i"},
		{NewComplex(1, 1), 2, "1.00 + i"},
		{NewComplex(1, -1), 2, "1.00 - i"},
		{NewComplex(0.5, 0.5), 3, "0.500 + 0.500i"},
		{NewComplex(-0.5, -0.25), 2, "-0.50 - 0.25i"},
	}
	for _, tt := range tests {
		if got := tt.c.Rect(tt.prec); got != tt.want {
			t.Errorf("Rect(%v, %d) = %q, want %q", tt.c, tt.prec, got, tt.want)
		}
	}
}

func TestPolarRendering(t *testing.T) {
	if got := czero.Polar(2); got != "0.00" {
		t.Errorf("Polar(0) = %q", got)
	}
	c := FromPolar(1, math.Pi/2)
	if got := c.Polar(2); got != "1.00·e^(1.57i)" {
		t.Errorf("Polar(i) = %q", got)
	}
}
