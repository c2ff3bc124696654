package transcript

import "sync"

// Window constants. Once the transcript grows past maxLen turns it is
// collapsed to the system turn plus the windowLen most recent turns.
// These are fixed, not configurable
const (
	maxLen    = 6
	windowLen = 5
)

// Transcript is an ordered, bounded sequence of conversation turns. Turn 0
// is always the system turn seeded at construction; it is never trimmed or
// replaced. All methods are safe for concurrent use
type Transcript struct {
	mu    sync.RWMutex
	turns []Turn
}

// New creates a transcript seeded with a single system turn
func New(systemPrompt string) *Transcript {
	return &Transcript{
		turns: []Turn{NewTextTurn(RoleSystem, systemPrompt)},
	}
}

// Append adds a turn to the end of the transcript and enforces the window
// bound: when the transcript exceeds maxLen turns, it is collapsed to the
// system turn plus the windowLen most recent turns
func (t *Transcript) Append(turn Turn) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.turns = append(t.turns, turn)

	if len(t.turns) > maxLen {
		kept := make([]Turn, 0, windowLen+1)
		kept = append(kept, t.turns[0])
		kept = append(kept, t.turns[len(t.turns)-windowLen:]...)
		t.turns = kept
	}
}

// Turns returns a snapshot copy of the transcript in order
func (t *Transcript) Turns() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()

	turns := make([]Turn, len(t.turns))
	copy(turns, t.turns)
	return turns
}

// Len returns the current number of turns
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}

// Last returns the most recent turn
func (t *Transcript) Last() Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.turns[len(t.turns)-1]
}
