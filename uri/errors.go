package uri

import "github.com/ghettovoice/urikit/internal/errorutil"

const (
	// ErrInvalidURI is returned when an input fails strict URI validation
	// or cannot be decomposed consistently.
	ErrInvalidURI errorutil.Error = "invalid URI"
	// ErrInvalidInput is returned when an argument is blank or malformed
	// where a meaningful value is required.
	ErrInvalidInput errorutil.Error = "invalid input"
)

func newInvalidURIErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidURI, args...) //errtrace:skip
}

func newInvalidInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidInput, args...) //errtrace:skip
}
