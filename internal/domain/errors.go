package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConversationNotFound  = errors.New("conversation not found")
	ErrEmptyTitle            = errors.New("title is required")
	ErrMissingConversationID = errors.New("conversationId is required")
	ErrTurnInFlight          = errors.New("previous turn is still being processed")
)

// ProviderError wraps a failed model invocation with the provider that was
// attempted. The user message persisted before the call is kept; no bot
// message is written.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
