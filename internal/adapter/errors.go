package adapter

import "errors"

var (
	ErrCoreUnavailable = errors.New("core service is unavailable")
	ErrInvalidBaseURL  = errors.New("invalid core service url")
)
