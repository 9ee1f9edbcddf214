package provider

import "errors"

// Normalization failures. Each is fatal to the record being built and is
// wrapped with context by the caller; match with errors.Is.
var (
	ErrMalformedPlayerReference = errors.New("malformed player reference")
	ErrUnknownCategory          = errors.New("unknown category")
	ErrMissingEndpoint          = errors.New("missing endpoint")
	ErrDurationParse            = errors.New("duration parse failure")
	ErrEmptyResultSet           = errors.New("empty result set")
)

// IsInconsistency reports whether err comes from a cross-reference or shape
// violation in upstream data rather than from transport.
func IsInconsistency(err error) bool {
	return errors.Is(err, ErrMalformedPlayerReference) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrMissingEndpoint) ||
		errors.Is(err, ErrDurationParse)
}
