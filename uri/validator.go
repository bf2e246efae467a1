package uri

//go:generate go tool mockgen -source=validator.go -destination=mock_validator_test.go -package=uri_test

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	rfc3986 "github.com/fredbi/uri"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
)

// Validator checks that a non-empty string is a syntactically valid URI reference.
type Validator interface {
	Validate(s string) error
}

// ValidatorFunc is an adapter to use ordinary functions as [Validator].
type ValidatorFunc func(s string) error

// Validate calls f(s).
func (f ValidatorFunc) Validate(s string) error { return errtrace.Wrap(f(s)) }

// refScheme is a placeholder scheme put in front of relative references.
// Any RFC 3986 relative-ref becomes a valid absolute URI with it,
// so the reference grammar is checked by the absolute URI rules.
const refScheme = "ref"

// RFC3986Validator validates absolute URIs and relative references according to RFC 3986.
//
// Absolute URIs are checked as is, relative references (bare paths, "?query", "#fragment")
// are checked as the hierarchical part of an absolute URI.
// Strings starting with a host ("test.com:80/path", see [HasAuthority]) are checked as
// a network-path reference, so their port is a port and not a scheme-specific part.
// Ports must fit in 16 bits. Hosts of well-known DNS schemes (http, https, ...)
// must be valid DNS names.
type RFC3986Validator struct{}

// Validate implements [Validator].
func (RFC3986Validator) Validate(s string) error {
	if s == "" {
		return errtrace.Wrap(grammar.ErrEmptyInput)
	}

	var ref string
	switch {
	case grammar.ProtocolLen(s) == 0 && HasAuthority(s):
		ref = refScheme + "://" + s
	case !hasScheme(s):
		ref = refScheme + ":" + s
	default:
		ref = s
	}
	u, err := rfc3986.ParseReference(ref)
	if err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, err))
	}
	if port := u.Authority().Port(); port != "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "port %q out of range", port))
		}
	}
	return nil
}

// hasScheme reports whether s starts with "scheme:".
func hasScheme(s string) bool {
	i := strings.IndexByte(s, ':')
	return i > 0 && i < util.IndexAnyFrom(s, 0, grammar.PathDelims) && grammar.IsScheme(s[:i])
}
