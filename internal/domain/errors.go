package domain

import "errors"

var (
	// ErrStoreUnavailable marks a persistence-layer failure. Fatal for the
	// message being processed: the pipeline aborts and sends no reply.
	ErrStoreUnavailable = errors.New("score store unavailable")
)
