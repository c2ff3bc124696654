package transcript

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tr := New("You are a helpful assistant.")

	require.Equal(t, 1, tr.Len())

	turns := tr.Turns()
	assert.Equal(t, RoleSystem, turns[0].Role)
	assert.Equal(t, "You are a helpful assistant.", turns[0].Text)
	assert.False(t, turns[0].IsStructured())
}

func TestAppend(t *testing.T) {
	tr := New("system prompt")

	tr.Append(NewTextTurn(RoleUser, "hello"))
	tr.Append(NewTextTurn(RoleAssistant, "hi there"))

	require.Equal(t, 3, tr.Len())
	assert.Equal(t, RoleAssistant, tr.Last().Role)
	assert.Equal(t, "hi there", tr.Last().Text)
}

func TestAppendTrimsToWindow(t *testing.T) {
	tr := New("S")

	// Grow the transcript to 7 turns: [S, t1, t2, t3, t4, t5, t6].
	// The append of t6 pushes it past the bound and must collapse it
	// to [S, t2, t3, t4, t5, t6]
	for i := 1; i <= 6; i++ {
		tr.Append(NewTextTurn(RoleUser, fmt.Sprintf("t%d", i)))
	}

	turns := tr.Turns()
	require.Len(t, turns, 6)

	assert.Equal(t, RoleSystem, turns[0].Role)
	assert.Equal(t, "S", turns[0].Text)

	for i, want := range []string{"t2", "t3", "t4", "t5", "t6"} {
		assert.Equal(t, want, turns[i+1].Text)
	}
}

func TestWindowInvariantHolds(t *testing.T) {
	tr := New("S")

	// After any number of appends the transcript never exceeds six turns
	// and the system turn stays pinned at index 0
	for i := 0; i < 40; i++ {
		tr.Append(NewTextTurn(RoleUser, fmt.Sprintf("u%d", i)))
		tr.Append(NewTextTurn(RoleAssistant, fmt.Sprintf("a%d", i)))

		assert.LessOrEqual(t, tr.Len(), 6)
		assert.Equal(t, RoleSystem, tr.Turns()[0].Role)
		assert.Equal(t, "S", tr.Turns()[0].Text)
	}
}

func TestTurnsReturnsCopy(t *testing.T) {
	tr := New("S")
	tr.Append(NewTextTurn(RoleUser, "hello"))

	turns := tr.Turns()
	turns[0].Text = "mutated"

	assert.Equal(t, "S", tr.Turns()[0].Text)
}

func TestNewImageTurn(t *testing.T) {
	turn := NewImageTurn(RoleUser, "describe this image", "https://example.com/cat.png")

	require.True(t, turn.IsStructured())
	require.Len(t, turn.Parts, 2)

	assert.Equal(t, PartText, turn.Parts[0].Kind)
	assert.Equal(t, "describe this image", turn.Parts[0].Text)
	assert.Equal(t, PartImageURL, turn.Parts[1].Kind)
	assert.Equal(t, "https://example.com/cat.png", turn.Parts[1].URL)
}
