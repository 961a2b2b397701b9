package triage

import "errors"

var (
	// ErrEmptyMessage is returned when the inbound message is empty or
	// whitespace-only. Empty input is rejected before classification runs,
	// never routed to the generic handler silently.
	ErrEmptyMessage = errors.New("message is required")

	// ErrNilContext is returned when no conversation context is supplied.
	ErrNilContext = errors.New("conversation context is required")
)
