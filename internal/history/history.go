package history

import "github.com/piwi3910/cabinetforge/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the design state at a point in time.
type Snapshot struct {
	Design model.Design
	Label  string // Human-readable description (e.g. "Add Cabinet")
}

// History is a bounded undo/redo timeline: an ordered list of snapshots
// with a cursor. The cursor sits on the snapshot representing the current
// state; -1 means nothing has been recorded yet. Every design going in or
// out is deep-cloned, so callers can never alias a stored entry.
type History struct {
	entries  []Snapshot
	current  int
	maxDepth int
}

// New creates a History with the default max depth of 50.
func New() *History {
	return &History{
		current:  -1,
		maxDepth: defaultMaxDepth,
	}
}

// Push records a new state after a mutation. Any redo tail beyond the
// cursor is discarded. When the timeline exceeds the max depth the oldest
// entries are dropped and the cursor stays on the just-pushed snapshot.
func (h *History) Push(d model.Design, label string) {
	h.entries = h.entries[:h.current+1]
	h.entries = append(h.entries, Snapshot{Design: d.Clone(), Label: label})
	h.current++

	if len(h.entries) > h.maxDepth {
		drop := len(h.entries) - h.maxDepth
		h.entries = h.entries[drop:]
		h.current -= drop
	}
}

// Undo steps the cursor back and returns a clone of the state there.
// The first recorded snapshot is the floor: undo never steps before it.
// Returns false, with no state change, when already at the floor.
func (h *History) Undo() (model.Design, bool) {
	if h.current <= 0 {
		return model.Design{}, false
	}
	h.current--
	return h.entries[h.current].Design.Clone(), true
}

// Redo steps the cursor forward and returns a clone of the state there.
// Returns false, with no state change, when already at the tail.
func (h *History) Redo() (model.Design, bool) {
	if h.current >= len(h.entries)-1 {
		return model.Design{}, false
	}
	h.current++
	return h.entries[h.current].Design.Clone(), true
}

// JumpTo moves the cursor to an arbitrary recorded index and returns a
// clone of the state there. Out-of-range indexes return false and leave
// the cursor alone.
func (h *History) JumpTo(index int) (model.Design, bool) {
	if index < 0 || index >= len(h.entries) {
		return model.Design{}, false
	}
	h.current = index
	return h.entries[index].Design.Clone(), true
}

// CanUndo returns true if there is at least one earlier snapshot.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if the cursor is behind the tail.
func (h *History) CanRedo() bool {
	return h.current < len(h.entries)-1
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the cursor position, -1 when nothing is recorded.
func (h *History) Index() int {
	return h.current
}

// Labels returns the snapshot labels in timeline order.
func (h *History) Labels() []string {
	labels := make([]string, len(h.entries))
	for i, e := range h.entries {
		labels[i] = e.Label
	}
	return labels
}

// Clear removes all history.
func (h *History) Clear() {
	h.entries = nil
	h.current = -1
}
