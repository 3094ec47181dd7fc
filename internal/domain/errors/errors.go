package errors

import "errors"

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidParams     = errors.New("invalid search parameters")
	ErrSourceUnavailable = errors.New("temporary source failure")
	ErrProviderPayload   = errors.New("unexpected provider payload")
	ErrNotFound          = errors.New("not found")
)

// Kind tags a failure for callers. Every error leaving a provider client
// collapses onto one of these four classes.
type Kind string

const (
	KindConfiguration Kind = "configuration_error"
	KindValidation    Kind = "validation_error"
	KindTransport     Kind = "transport_error"
	KindProvider      Kind = "provider_error"
)

// Classify maps an error chain onto the error taxonomy. Unknown errors are
// treated as transport failures, the most common cause at a client boundary.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return KindConfiguration
	case errors.Is(err, ErrInvalidParams):
		return KindValidation
	case errors.Is(err, ErrProviderPayload), errors.Is(err, ErrNotFound):
		return KindProvider
	default:
		return KindTransport
	}
}
