package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/grammar"
)

// parts validates s and splits it.
// ok is false for blank s.
func (e *Editor) parts(s string) (sg segments, ok bool, err error) {
	s, err = e.checked(s)
	if err != nil || s == "" {
		return segments{}, false, errtrace.Wrap(err)
	}
	return split(s), true, nil
}

func (e *Editor) segment(s string, id segmentID) (string, error) {
	sg, ok, err := e.parts(s)
	if !ok {
		return "", errtrace.Wrap(err)
	}
	return sg.get(id), nil
}

// Protocol returns the protocol of s including the "://" separator, e.g. "https://".
func (e *Editor) Protocol(s string) (string, error) {
	return errtrace.Wrap2(e.segment(s, segProto))
}

// Scheme returns the protocol of s without the "://" separator, e.g. "https".
func (e *Editor) Scheme(s string) (string, error) {
	p, err := e.segment(s, segProto)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.TrimSuffix(p, grammar.ProtocolSep), nil
}

// Host returns the host of s. IPv6 literals keep their brackets.
func (e *Editor) Host(s string) (string, error) {
	return errtrace.Wrap2(e.segment(s, segHost))
}

// Port returns the port digits of s or an empty string.
func (e *Editor) Port(s string) (string, error) {
	p, err := e.segment(s, segPort)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.TrimPrefix(p, ":"), nil
}

// Path returns the path of s. A non-empty path always starts with '/'.
func (e *Editor) Path(s string) (string, error) {
	p, err := e.segment(s, segPath)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if p != "" && p[0] != '/' {
		p = "/" + p
	}
	return p, nil
}

// Query returns the query of s without the leading '?'.
func (e *Editor) Query(s string) (string, error) {
	q, err := e.segment(s, segQuery)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.TrimPrefix(q, "?"), nil
}

// Fragment returns the fragment of s without the leading '#'.
func (e *Editor) Fragment(s string) (string, error) {
	f, err := e.segment(s, segFrag)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.TrimPrefix(f, "#"), nil
}

// QueryParams returns the decoded query parameters of s.
// Blank s or missing query gives empty values.
func (e *Editor) QueryParams(s string) (*Values, error) {
	q, err := e.Query(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ParseQuery(q), nil
}
