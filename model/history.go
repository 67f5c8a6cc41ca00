package model

// HistoryCapacity is the number of past generations a Board keeps for Undo.
const HistoryCapacity = 255

// History is a bounded FIFO of board snapshots, oldest first. When a snapshot
// is pushed at capacity the oldest one is evicted.
type History struct {
	entries []cellSet
	head    int // index of the oldest entry
	size    int
}

// NewHistory creates an empty history holding at most capacity snapshots.
// It panics if capacity is not positive.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		panic("model: history capacity must be positive")
	}
	return &History{entries: make([]cellSet, capacity)}
}

// Len returns the number of snapshots held
func (h *History) Len() int { return h.size }

// Cap returns the maximum number of snapshots held
func (h *History) Cap() int { return len(h.entries) }

// push appends s and returns the snapshot evicted to make room, if any.
func (h *History) push(s cellSet) (evicted cellSet) {
	if h.size == len(h.entries) {
		evicted = h.entries[h.head]
		h.entries[h.head] = s
		h.head = (h.head + 1) % len(h.entries)
		return evicted
	}
	h.entries[(h.head+h.size)%len(h.entries)] = s
	h.size++
	return nil
}

// pop removes and returns the most recent snapshot.
func (h *History) pop() (cellSet, bool) {
	if h.size == 0 {
		return nil, false
	}
	h.size--
	i := (h.head + h.size) % len(h.entries)
	s := h.entries[i]
	h.entries[i] = nil
	return s, true
}

// reset drops every snapshot, handing each back through release.
func (h *History) reset(release func(cellSet)) {
	for {
		s, ok := h.pop()
		if !ok {
			break
		}
		release(s)
	}
	h.head = 0
}

// snapshot deep-copies the live cells onto the history.
func (b *Board) snapshot() {
	if evicted := b.history.push(b.cells.copyInto(sets.Get())); evicted != nil {
		sets.Put(evicted)
	}
}

// CanUndo reports whether there is a previous generation to restore
func (b *Board) CanUndo() bool {
	return b.history.Len() > 0
}

// Undo restores the most recently recorded generation. It returns false and
// leaves the board untouched when the history is empty. Undo does not record
// anything itself, so repeated calls walk further back.
func (b *Board) Undo() bool {
	prev, ok := b.history.pop()
	if !ok {
		return false
	}
	sets.Put(b.cells)
	b.cells = prev
	return true
}

// HistoryLen returns how many generations can currently be undone
func (b *Board) HistoryLen() int {
	return b.history.Len()
}

// ForgetHistory drops every recorded generation; the live cells are untouched.
func (b *Board) ForgetHistory() {
	b.history.reset(sets.Put)
}
