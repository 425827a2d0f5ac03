package main

import (
	"fmt"
	"math"
)

// GateID identifies one of the eight supported single-qubit gates. A closed
// enum (rather than string keys) so gate dispatch is exhaustive.
type GateID int

const (
	GateH GateID = iota
	GateX
	GateY
	GateZ
	GateS
	GateT
	GateSDg
	GateTDg

	numGates
)

// GateDef describes one registry entry: the exact unitary plus display
// metadata. Property flags are informational; the algebra layer does not
// consult them.
type GateDef struct {
	ID          GateID
	Name        string
	Symbol      string // display symbol, e.g. "S†"
	Rune        rune   // compact share-encoding rune, 0 when excluded
	Desc        string
	Matrix      Matrix
	Hermitian   bool
	SelfInverse bool
}

// gateTable is the fixed gate registry. Built once at init, never written
// afterwards.
var gateTable [numGates]GateDef

func init() {
	h := 1 / math.Sqrt2
	expT := FromPolar(1, math.Pi/4)
	expTDg := FromPolar(1, -math.Pi/4)

	gateTable = [numGates]GateDef{
		GateH: {
			ID: GateH, Name: "Hadamard", Symbol: "H", Rune: 'H',
			Desc: "Maps |0⟩ to (|0⟩+|1⟩)/√2, creating an equal superposition",
			Matrix: Matrix{
				{NewComplex(h, 0), NewComplex(h, 0)},
				{NewComplex(h, 0), NewComplex(-h, 0)},
			},
			Hermitian: true, SelfInverse: true,
		},
		GateX: {
			ID: GateX, Name: "Pauli-X", Symbol: "X", Rune: 'X',
			Desc: "Bit flip: swaps the |0⟩ and |1⟩ amplitudes",
			Matrix: Matrix{
				{czero, cone},
				{cone, czero},
			},
			Hermitian: true, SelfInverse: true,
		},
		GateY: {
			ID: GateY, Name: "Pauli-Y", Symbol: "Y", Rune: 'Y',
			Desc: "Bit and phase flip combined",
			Matrix: Matrix{
				{czero, NewComplex(0, -1)},
				{ci, czero},
			},
			Hermitian: true, SelfInverse: true,
		},
		GateZ: {
			ID: GateZ, Name: "Pauli-Z", Symbol: "Z", Rune: 'Z',
			Desc: "Phase flip: negates the |1⟩ amplitude",
			Matrix: Matrix{
				{cone, czero},
				{czero, NewComplex(-1, 0)},
			},
			Hermitian: true, SelfInverse: true,
		},
		GateS: {
			ID: GateS, Name: "Phase (S)", Symbol: "S", Rune: 'S',
			Desc: "Quarter-turn phase: multiplies the |1⟩ amplitude by i",
			Matrix: Matrix{
				{cone, czero},
				{czero, ci},
			},
		},
		GateT: {
			ID: GateT, Name: "T", Symbol: "T", Rune: 'T',
			Desc: "Eighth-turn phase: multiplies the |1⟩ amplitude by e^(iπ/4)",
			Matrix: Matrix{
				{cone, czero},
				{czero, expT},
			},
		},
		GateSDg: {
			ID: GateSDg, Name: "Phase Dagger (S†)", Symbol: "S†",
			Desc: "Adjoint of S: multiplies the |1⟩ amplitude by -i",
			Matrix: Matrix{
				{cone, czero},
				{czero, NewComplex(0, -1)},
			},
		},
		GateTDg: {
			ID: GateTDg, Name: "T Dagger (T†)", Symbol: "T†",
			Desc: "Adjoint of T: multiplies the |1⟩ amplitude by e^(-iπ/4)",
			Matrix: Matrix{
				{cone, czero},
				{czero, expTDg},
			},
		},
	}
}

// Def returns the registry entry for the gate. An out-of-range id is a
// programming error and panics.
func (g GateID) Def() GateDef {
	if g < 0 || g >= numGates {
		panic(fmt.Sprintf("unknown gate id %d", int(g)))
	}
	return gateTable[g]
}

func (g GateID) String() string {
	return g.Def().Symbol
}

// AllGates returns the gate ids in registry order.
func AllGates() []GateID {
	ids := make([]GateID, numGates)
	for i := range ids {
		ids[i] = GateID(i)
	}
	return ids
}

// gateForRune resolves a share-encoding rune to its gate. Runes that encode
// no gate (including the dagger gates, which have no single-rune form)
// report false.
func gateForRune(r rune) (GateID, bool) {
	for _, def := range gateTable {
		if def.Rune != 0 && def.Rune == r {
			return def.ID, true
		}
	}
	return 0, false
}
