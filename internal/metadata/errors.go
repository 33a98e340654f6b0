package metadata

import "errors"

var (
	// ErrNotFound indicates the provider affirmatively reported that the
	// movie does not exist.
	ErrNotFound = errors.New("movie not found")

	// ErrUnavailable indicates the provider could not be reached, timed out,
	// or answered with an unexpected status.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrMalformed indicates the provider answered successfully but the
	// payload could not be mapped onto the normalized schema.
	ErrMalformed = errors.New("upstream payload malformed")
)
