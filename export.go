package main

import (
	"encoding/json"
	"os"
)

// exportFile is where ctrl+s writes the session export.
const exportFile = "deck_export.json"

// ComplexExport is a complex value flattened for serialization.
type ComplexExport struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// AmplitudeExport is one state-vector component with its derived polar form.
type AmplitudeExport struct {
	Re        float64 `json:"re"`
	Im        float64 `json:"im"`
	Magnitude float64 `json:"magnitude"`
	Phase     float64 `json:"phase"`
}

// ChecksExport carries the validation results and the tolerance they were
// computed with.
type ChecksExport struct {
	Unitary    bool    `json:"unitary"`
	Normalized bool    `json:"normalized"`
	Tolerance  float64 `json:"tolerance"`
}

// MatrixExport is the composite transformation with its derived scalars.
type MatrixExport struct {
	Elements [2][2]ComplexExport `json:"elements"`
	Det      ComplexExport       `json:"det"`
	Trace    ComplexExport       `json:"trace"`
}

// Export is the structured record handed to the export/share collaborator.
// Everything needed to re-derive the probabilities and checks is included,
// so a consumer can verify the record against itself.
type Export struct {
	Gates         []string           `json:"gates"`
	State         [2]AmplitudeExport `json:"state"`
	Probabilities Probabilities      `json:"probabilities"`
	Checks        ChecksExport       `json:"checks"`
	Composite     MatrixExport       `json:"composite"`
}

func exportComplex(c Complex) ComplexExport {
	return ComplexExport{Re: c.Re, Im: c.Im}
}

func exportAmplitude(c Complex) AmplitudeExport {
	return AmplitudeExport{Re: c.Re, Im: c.Im, Magnitude: c.Abs(), Phase: c.Phase()}
}

// BuildExport derives the export record from the session's current triple.
func BuildExport(s *Session) Export {
	state := s.State()
	comp := s.Composite()

	gates := make([]string, 0, len(s.Ops()))
	for _, op := range s.Ops() {
		gates = append(gates, op.Gate.Def().Symbol)
	}

	var elems [2][2]ComplexExport
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			elems[i][j] = exportComplex(comp[i][j])
		}
	}

	return Export{
		Gates: gates,
		State: [2]AmplitudeExport{
			exportAmplitude(state[0]),
			exportAmplitude(state[1]),
		},
		Probabilities: MeasureProbs(state),
		Checks: ChecksExport{
			Unitary:    IsUnitary(comp, defaultTol),
			Normalized: IsNormalized(state, defaultTol),
			Tolerance:  defaultTol,
		},
		Composite: MatrixExport{
			Elements: elems,
			Det:      exportComplex(Det(comp)),
			Trace:    exportComplex(Trace(comp)),
		},
	}
}

// StateVec rebuilds the state vector from the exported components.
func (e Export) StateVec() Vec {
	return Vec{
		NewComplex(e.State[0].Re, e.State[0].Im),
		NewComplex(e.State[1].Re, e.State[1].Im),
	}
}

// CompositeMatrix rebuilds the composite matrix from the exported elements.
func (e Export) CompositeMatrix() Matrix {
	var m Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = NewComplex(e.Composite.Elements[i][j].Re, e.Composite.Elements[i][j].Im)
		}
	}
	return m
}

// SaveExport writes the session export as indented JSON.
func SaveExport(s *Session, path string) error {
	data, err := json.MarshalIndent(BuildExport(s), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
