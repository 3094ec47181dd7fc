package models

import derr "github.com/tripdeck/concierge/internal/domain/errors"

// ErrorResult is the only failure shape callers ever see. Its message is
// generic and sanitized; transport internals and credentials never appear.
type ErrorResult struct {
	Kind    derr.Kind `json:"kind"`
	Message string    `json:"message"`
}

func (e ErrorResult) Error() string {
	return string(e.Kind) + ": " + e.Message
}
