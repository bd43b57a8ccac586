package http

import "errors"

// Parse failure causes. Mutually exclusive: ParseRequest reports the
// first one encountered and stops.
var (
	ErrInvalidRequest     = errors.New("invalid HTTP request")
	ErrInvalidMethod      = errors.New("invalid HTTP method")
	ErrMissingRequestLine = errors.New("missing request line")
)
