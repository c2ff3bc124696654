package relay

import (
	"context"
	"strings"
	"sync"

	"github.com/ethanbaker/relay/pkg/completion"
	"github.com/ethanbaker/relay/pkg/transcript"
)

// imageInstruction is the fixed instruction paired with every image
// reference ("What is the content of this image?")
const imageInstruction = "ما محتوى هذه الصورة؟"

// Service relays user messages through a single shared conversation
// transcript to an external completion service.
//
// The whole append, call, append sequence runs under one mutex so
// concurrent requests cannot interleave their transcript mutations
type Service struct {
	mu         sync.Mutex
	transcript *transcript.Transcript
	completer  completion.Completer
}

// New creates a relay service with a transcript seeded from the given
// system prompt
func New(systemPrompt string, completer completion.Completer) *Service {
	return &Service{
		transcript: transcript.New(systemPrompt),
		completer:  completer,
	}
}

// HandleMessage appends the user's message to the shared transcript,
// obtains a completion, appends it as the assistant turn, and returns the
// reply.
//
// An empty input fails with ErrMissingInput before any state change. A
// completion failure returns an *UpstreamError and leaves the user turn
// appended with no assistant reply; no retry or rollback is performed
func (s *Service) HandleMessage(ctx context.Context, input string) (string, error) {
	if input == "" {
		return "", ErrMissingInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript.Append(classify(input))

	reply, err := s.completer.Complete(ctx, s.transcript.Turns())
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	reply = strings.TrimSpace(reply)
	s.transcript.Append(transcript.NewTextTurn(transcript.RoleAssistant, reply))

	return reply, nil
}

// Transcript returns the shared conversation transcript
func (s *Service) Transcript() *transcript.Transcript {
	return s.transcript
}

// classify decides the payload shape of a user message. Anything starting
// with "http" is treated as an image reference and passed through verbatim,
// with no URL validation of any kind
func classify(input string) transcript.Turn {
	if strings.HasPrefix(input, "http") {
		return transcript.NewImageTurn(transcript.RoleUser, imageInstruction, input)
	}
	return transcript.NewTextTurn(transcript.RoleUser, input)
}
