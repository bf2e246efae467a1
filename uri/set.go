package uri

import (
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
)

// SetProtocol sets the protocol of s. The "://" separator is appended to protocol if missing,
// blank protocol removes the current one.
//
// The protocol can be attached to a host only, so s without an authority is returned unchanged.
// Invalid s is not an error, see [Editor.SetHost].
func (e *Editor) SetProtocol(s, protocol string) (string, error) {
	s = e.lenient(s, "SetProtocol")
	protocol = strings.TrimRight(util.TrimSP(protocol), ":/")
	if protocol != "" {
		protocol += grammar.ProtocolSep
	}

	if !HasAuthority(s) {
		e.log.Debug("no host to attach protocol to, URI left unchanged",
			slog.String("uri", s),
			slog.String("protocol", protocol),
		)
		return s, nil
	}
	sg := split(s)
	return errtrace.Wrap2(sg.with(edit{segProto, protocol}))
}

// SetHost sets the host of s. Trailing slashes of host are dropped, blank host removes the authority.
// Host with a port, user info, path, query or fragment fails with [ErrInvalidInput].
//
// When s has no authority, host is prepended to it, joined with '/' unless s already starts
// with '/', '?' or '#'. Empty s gives host.
//
// SetHost and [Editor.SetProtocol] are used to build URIs from partial strings,
// so s failing strict validation is only logged.
func (e *Editor) SetHost(s, host string) (string, error) {
	s = e.lenient(s, "SetHost")
	host = strings.TrimRight(util.TrimSP(host), "/")
	if err := checkHost(host); err != nil {
		return "", errtrace.Wrap(err)
	}
	switch {
	case host == "":
		return errtrace.Wrap2(removeAuthority(s))
	case s == "":
		return host, nil
	case !HasAuthority(s):
		if strings.IndexByte("/?#", s[0]) >= 0 {
			return host + s, nil
		}
		return host + "/" + s, nil
	}
	sg := split(s)
	return errtrace.Wrap2(sg.with(edit{segHost, host}))
}

// checkHost allows ':' only inside a bracketed IPv6 literal.
func checkHost(host string) error {
	inner, delims := host, grammar.HostDelims+"@[]"
	if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
		inner, delims = host[1:len(host)-1], grammar.PathDelims+"@[]"
	}
	if i := strings.IndexAny(inner, delims); i >= 0 {
		return errtrace.Wrap(newInvalidInputErr("host %q contains delimiter %q", host, inner[i]))
	}
	return nil
}

// SetPort sets the port of s. It is a no-op if s has no host.
func (e *Editor) SetPort(s string, port uint16) (string, error) {
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	sg := split(s)
	if !HasAuthority(s) || !sg.has(segHost) {
		e.log.Debug("no host to attach port to, URI left unchanged",
			slog.String("uri", s),
			slog.Int("port", int(port)),
		)
		return s, nil
	}
	return errtrace.Wrap2(sg.with(edit{segPort, ":" + strconv.Itoa(int(port))}))
}

// SetPath sets the path of s. The path gets exactly one leading '/', blank path removes the current one.
// For s without an authority the path replaces everything before the query or the fragment.
// Path with '?' or '#' fails with [ErrInvalidInput].
func (e *Editor) SetPath(s, path string) (string, error) {
	if err := checkSegment(segPath, path, grammar.TailDelims); err != nil {
		return "", errtrace.Wrap(err)
	}
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	path = sanitizePath(path)
	if !HasAuthority(s) {
		return path + s[util.IndexAnyFrom(s, 0, grammar.TailDelims):], nil
	}
	sg := split(s)
	return errtrace.Wrap2(sg.with(edit{segPath, path}))
}

// SetQuery sets the query of s, the fragment stays in place.
// Leading '?' of query are dropped, blank query removes the current one.
// Query with '#' fails with [ErrInvalidInput].
func (e *Editor) SetQuery(s, query string) (string, error) {
	if err := checkSegment(segQuery, query, "#"); err != nil {
		return "", errtrace.Wrap(err)
	}
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	query = strings.TrimLeft(util.OrEmpty(query), "?")
	if query != "" {
		query = "?" + query
	}
	sg := split(s)
	return errtrace.Wrap2(sg.with(edit{segQuery, query}))
}

// SetQueryParams replaces the query of s with the given key/value pairs.
// It returns [ErrInvalidInput] if the number of arguments is odd or a key is blank.
func (e *Editor) SetQueryParams(s string, kv ...string) (string, error) {
	vs, err := NewValues(kv...)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(e.SetQuery(s, vs.Encode()))
}

// SetMultiValueQueryParams replaces the query of s with the encoded values.
func (e *Editor) SetMultiValueQueryParams(s string, vs *Values) (string, error) {
	if err := checkKeys(vs); err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(e.SetQuery(s, vs.Encode()))
}

// SetFragment sets the fragment of s.
// Leading '#' of fragment are dropped, blank fragment removes the current one.
// Any other '#' in fragment fails with [ErrInvalidInput].
func (e *Editor) SetFragment(s, fragment string) (string, error) {
	fragment = strings.TrimLeft(util.OrEmpty(fragment), "#")
	if err := checkSegment(segFrag, fragment, "#"); err != nil {
		return "", errtrace.Wrap(err)
	}
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	if fragment != "" {
		fragment = "#" + fragment
	}
	sg := split(s)
	return errtrace.Wrap2(sg.with(edit{segFrag, fragment}))
}
