package relay

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when a request carries no message. The
// transcript is never touched on this path
var ErrMissingInput = errors.New("no message provided")

// UpstreamError wraps any failure while obtaining a completion from the
// external service. The user turn that triggered the call stays appended
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream completion failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstream reports whether err is an upstream completion failure
func IsUpstream(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}
