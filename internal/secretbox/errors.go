package secretbox

import "errors"

var (
	// ErrConfiguration is returned when no secret is configured in production mode.
	ErrConfiguration = errors.New("configuration error")
	// ErrMalformedToken is returned when a token does not have the expected shape.
	ErrMalformedToken = errors.New("malformed token")
	// ErrDecoding is returned when a token component is not valid hex.
	ErrDecoding = errors.New("invalid token encoding")
	// ErrAuthentication is returned when a token fails authentication.
	ErrAuthentication = errors.New("token authentication failed")
)
