package geo

import "errors"

var (
	// ErrTimeout indicates the lookup exceeded the configured timeout.
	ErrTimeout = errors.New("geolocation timed out")

	// ErrDenied indicates the provider refused to locate this client.
	ErrDenied = errors.New("geolocation denied")

	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("geolocation unavailable")

	// ErrInvalidResponse indicates the provider answered with unusable
	// coordinates.
	ErrInvalidResponse = errors.New("invalid geolocation response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("geolocation retry attempts exhausted")

	ErrDisabled = errors.New("geolocation disabled")
)
