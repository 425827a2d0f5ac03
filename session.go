package main

// Session is the single owner of an engine and its history. Every mutation
// goes through here, so the two stay consistent: add/remove/reset push a
// snapshot, undo/redo only move the history pointer.
type Session struct {
	engine  *Engine
	history *History
}

func NewSession() *Session {
	e := NewEngine()
	return &Session{
		engine:  e,
		history: NewHistory(e.Snapshot()),
	}
}

func (s *Session) Append(g GateID) Operation {
	op := s.engine.Append(g)
	s.history.Record(s.engine.Snapshot())
	return op
}

// Remove removes by operation id. Unknown ids are ignored and leave the
// history untouched.
func (s *Session) Remove(opID string) bool {
	if !s.engine.Remove(opID) {
		return false
	}
	s.history.Record(s.engine.Snapshot())
	return true
}

func (s *Session) Reset() {
	s.engine.Reset()
	s.history.Record(s.engine.Snapshot())
}

func (s *Session) Undo() bool {
	snap, ok := s.history.Undo()
	if ok {
		s.engine.restore(snap)
	}
	return ok
}

func (s *Session) Redo() bool {
	snap, ok := s.history.Redo()
	if ok {
		s.engine.restore(snap)
	}
	return ok
}

func (s *Session) Ops() []Operation {
	return s.engine.Ops()
}

func (s *Session) State() Vec {
	return s.engine.State()
}

func (s *Session) Composite() Matrix {
	return s.engine.Composite()
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }
