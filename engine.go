package main

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Operation is one applied gate instance. The id exists for removal, the
// timestamp for display; sequence order is always insertion order.
type Operation struct {
	ID      string
	Gate    GateID
	AddedAt time.Time
}

// Engine owns the applied-gate sequence, the current state vector and the
// composite matrix, and keeps the three consistent: the composite is the
// product of the gate matrices most-recent-first, and the state is the
// composite applied to |0⟩.
type Engine struct {
	ops       []Operation
	state     Vec
	composite Matrix
}

func NewEngine() *Engine {
	return &Engine{
		state:     initialVec(),
		composite: Identity(),
	}
}

// Append applies the gate to the current state and left-multiplies it onto
// the composite. Incremental, no replay.
func (e *Engine) Append(g GateID) Operation {
	m := g.Def().Matrix
	e.state = Apply(m, e.state)
	e.composite = MulMat(m, e.composite)
	op := Operation{
		ID:      uuid.NewString(),
		Gate:    g,
		AddedAt: time.Now(),
	}
	e.ops = append(e.ops, op)
	return op
}

// Remove deletes the operation with the given id, then replays the remaining
// sequence from scratch. The full recomputation keeps the composition
// invariant regardless of where in the sequence the removal happened;
// sequences are short, so O(n) is fine. An unknown id is a no-op.
func (e *Engine) Remove(opID string) bool {
	before := len(e.ops)
	e.ops = slices.DeleteFunc(e.ops, func(op Operation) bool {
		return op.ID == opID
	})
	if len(e.ops) == before {
		return false
	}
	e.recompute()
	return true
}

// Reset returns the engine to the empty sequence, |0⟩, identity.
func (e *Engine) Reset() {
	e.ops = nil
	e.state = initialVec()
	e.composite = Identity()
}

// recompute folds the remaining gates in sequence order. Folding in a fixed
// order keeps results bit-for-bit reproducible.
func (e *Engine) recompute() {
	e.composite = Identity()
	for _, op := range e.ops {
		e.composite = MulMat(op.Gate.Def().Matrix, e.composite)
	}
	e.state = Apply(e.composite, initialVec())
}

func (e *Engine) Ops() []Operation {
	return e.ops
}

func (e *Engine) State() Vec {
	return e.state
}

func (e *Engine) Composite() Matrix {
	return e.composite
}

// Snapshot is a deep copy of the engine's triple, suitable for the history
// log.
type Snapshot struct {
	Ops       []Operation
	State     Vec
	Composite Matrix
}

func (e *Engine) Snapshot() Snapshot {
	ops := make([]Operation, len(e.ops))
	copy(ops, e.ops)
	return Snapshot{Ops: ops, State: e.state, Composite: e.composite}
}

// restore replaces the engine's triple with a deep copy of the snapshot.
func (e *Engine) restore(s Snapshot) {
	e.ops = make([]Operation, len(s.Ops))
	copy(e.ops, s.Ops)
	e.state = s.State
	e.composite = s.Composite
}
