package main

// historyCap bounds the undo log. Old entries are evicted from the front;
// callers may rely only on "undo depth is bounded", not on the exact figure.
const historyCap = 100

// History is a bounded linear undo/redo log of engine snapshots. Standard
// discard-on-branch semantics: recording after an undo throws away the redo
// tail.
type History struct {
	entries []Snapshot
	pos     int
}

// NewHistory seeds the log with the given snapshot (normally the reset
// triple) so undo can always walk back to it.
func NewHistory(initial Snapshot) *History {
	return &History{entries: []Snapshot{initial}}
}

// Record truncates any redo tail, appends the snapshot, and evicts the
// oldest entry once the log exceeds its bound.
func (h *History) Record(s Snapshot) {
	h.entries = append(h.entries[:h.pos+1], s)
	h.pos = len(h.entries) - 1
	if len(h.entries) > historyCap {
		h.entries = h.entries[1:]
		h.pos--
	}
}

// Undo moves the pointer back one entry and returns it. At the first entry
// it is a no-op and reports false.
func (h *History) Undo() (Snapshot, bool) {
	if h.pos == 0 {
		return Snapshot{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Redo moves the pointer forward one entry and returns it. At the last entry
// it is a no-op and reports false.
func (h *History) Redo() (Snapshot, bool) {
	if h.pos >= len(h.entries)-1 {
		return Snapshot{}, false
	}
	h.pos++
	return h.entries[h.pos], true
}

func (h *History) CanUndo() bool {
	return h.pos > 0
}

func (h *History) CanRedo() bool {
	return h.pos < len(h.entries)-1
}

// Len returns the number of entries currently in the log.
func (h *History) Len() int {
	return len(h.entries)
}
