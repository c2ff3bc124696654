package transcript

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a turn
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PartKind identifies the shape of a structured content part
type PartKind string

const (
	PartText     PartKind = "text"
	PartImageURL PartKind = "image_url"
)

// Part is a single element of structured turn content
type Part struct {
	Kind PartKind `json:"kind"`
	Text string   `json:"text,omitempty"`
	URL  string   `json:"url,omitempty"`
}

// Turn is a single entry in a conversation transcript. Content is either
// plain text (Text set, Parts nil) or an ordered list of parts
type Turn struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text,omitempty"`
	Parts     []Part    `json:"parts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTextTurn creates a turn carrying plain text content
func NewTextTurn(role Role, text string) Turn {
	return Turn{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewImageTurn creates a turn carrying an instruction text part followed by
// an image reference part. The URL is passed through verbatim
func NewImageTurn(role Role, instruction, url string) Turn {
	return Turn{
		ID:   uuid.New(),
		Role: role,
		Parts: []Part{
			{Kind: PartText, Text: instruction},
			{Kind: PartImageURL, URL: url},
		},
		CreatedAt: time.Now(),
	}
}

// IsStructured reports whether the turn carries part-based content
func (t Turn) IsStructured() bool {
	return len(t.Parts) > 0
}
