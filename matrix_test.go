package main

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	id := Identity()
	v := Vec{NewComplex(0.6, 0), NewComplex(0, 0.8)}
	got := Apply(id, v)
	if !got[0].Equal(v[0]) || !got[1].Equal(v[1]) {
		t.Errorf("I·v = %v, want %v", got, v)
	}
	if !Det(id).Equal(cone) {
		t.Errorf("det(I) = %v, want 1", Det(id))
	}
	if !Trace(id).Equal(NewComplex(2, 0)) {
		t.Errorf("tr(I) = %v, want 2", Trace(id))
	}
}

func TestMulMat(t *testing.T) {
	x := GateX.Def().Matrix
	z := GateZ.Def().Matrix

	// Z·X = [[0,1],[-1,0]], X·Z = [[0,-1],[1,0]]: order matters.
	zx := MulMat(z, x)
	want := Matrix{
		{czero, cone},
		{NewComplex(-1, 0), czero},
	}
	if !zx.EqualTol(want, defaultTol) {
		t.Errorf("Z·X = %v, want %v", zx, want)
	}
	xz := MulMat(x, z)
	if xz.EqualTol(zx, defaultTol) {
		t.Error("X·Z should differ from Z·X")
	}
}

func TestMulMatIdentityNeutral(t *testing.T) {
	for _, g := range AllGates() {
		m := g.Def().Matrix
		if !MulMat(m, Identity()).EqualTol(m, defaultTol) {
			t.Errorf("%v·I != %v", g, g)
		}
		if !MulMat(Identity(), m).EqualTol(m, defaultTol) {
			t.Errorf("I·%v != %v", g, g)
		}
	}
}

func TestDagger(t *testing.T) {
	m := Matrix{
		{NewComplex(1, 2), NewComplex(3, 4)},
		{NewComplex(5, 6), NewComplex(7, 8)},
	}
	d := Dagger(m)
	want := Matrix{
		{NewComplex(1, -2), NewComplex(5, -6)},
		{NewComplex(3, -4), NewComplex(7, -8)},
	}
	if !d.EqualTol(want, defaultTol) {
		t.Errorf("Dagger = %v, want %v", d, want)
	}
	// S† from the registry must equal Dagger(S).
	if !Dagger(GateS.Def().Matrix).EqualTol(GateSDg.Def().Matrix, defaultTol) {
		t.Error("registry S† does not match Dagger(S)")
	}
	if !Dagger(GateT.Def().Matrix).EqualTol(GateTDg.Def().Matrix, defaultTol) {
		t.Error("registry T† does not match Dagger(T)")
	}
}

func TestDetAndTrace(t *testing.T) {
	// det(H) = -1, tr(H) = 0
	h := GateH.Def().Matrix
	if !Det(h).EqualTol(NewComplex(-1, 0), defaultTol) {
		t.Errorf("det(H) = %v, want -1", Det(h))
	}
	if !Trace(h).EqualTol(czero, defaultTol) {
		t.Errorf("tr(H) = %v, want 0", Trace(h))
	}
	// det(S) = i, tr(S) = 1+i
	s := GateS.Def().Matrix
	if !Det(s).EqualTol(ci, defaultTol) {
		t.Errorf("det(S) = %v, want i", Det(s))
	}
	if !Trace(s).EqualTol(NewComplex(1, 1), defaultTol) {
		t.Errorf("tr(S) = %v, want 1+i", Trace(s))
	}
}

func TestApply(t *testing.T) {
	h := GateH.Def().Matrix
	got := Apply(h, initialVec())
	inv := 1 / math.Sqrt2
	if !got[0].EqualTol(NewComplex(inv, 0), defaultTol) ||
		!got[1].EqualTol(NewComplex(inv, 0), defaultTol) {
		t.Errorf("H|0⟩ = %v, want (1/√2, 1/√2)", got)
	}
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	v := initialVec()
	_ = Apply(GateX.Def().Matrix, v)
	if !v[0].Equal(cone) || !v[1].Equal(czero) {
		t.Errorf("input vector mutated: %v", v)
	}
}
