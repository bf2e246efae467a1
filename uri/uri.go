package uri

import "braces.dev/errtrace"

// IsValid reports whether s is a non-blank valid URI reference.
func IsValid(s string) bool { return std.IsValid(s) }

// Validate checks that s is a non-blank valid URI reference.
func Validate(s string) error { return errtrace.Wrap(std.Validate(s)) }

// Protocol returns the protocol of s with the "://" separator.
func Protocol(s string) (string, error) { return errtrace.Wrap2(std.Protocol(s)) }

// Scheme returns the protocol of s without the "://" separator.
func Scheme(s string) (string, error) { return errtrace.Wrap2(std.Scheme(s)) }

// Host returns the host of s.
func Host(s string) (string, error) { return errtrace.Wrap2(std.Host(s)) }

// Port returns the port of s.
func Port(s string) (string, error) { return errtrace.Wrap2(std.Port(s)) }

// Path returns the path of s.
func Path(s string) (string, error) { return errtrace.Wrap2(std.Path(s)) }

// Query returns the query of s.
func Query(s string) (string, error) { return errtrace.Wrap2(std.Query(s)) }

// Fragment returns the fragment of s.
func Fragment(s string) (string, error) { return errtrace.Wrap2(std.Fragment(s)) }

// QueryParams returns the query parameters of s.
func QueryParams(s string) (*Values, error) { return errtrace.Wrap2(std.QueryParams(s)) }

// SetProtocol sets the protocol of s, see [Editor.SetProtocol].
func SetProtocol(s, protocol string) (string, error) {
	return errtrace.Wrap2(std.SetProtocol(s, protocol))
}

// SetHost sets the host of s, see [Editor.SetHost].
func SetHost(s, host string) (string, error) { return errtrace.Wrap2(std.SetHost(s, host)) }

// SetPort sets the port of s, see [Editor.SetPort].
func SetPort(s string, port uint16) (string, error) { return errtrace.Wrap2(std.SetPort(s, port)) }

// SetPath sets the path of s, see [Editor.SetPath].
func SetPath(s, path string) (string, error) { return errtrace.Wrap2(std.SetPath(s, path)) }

// SetQuery sets the query of s, see [Editor.SetQuery].
func SetQuery(s, query string) (string, error) { return errtrace.Wrap2(std.SetQuery(s, query)) }

// SetQueryParams replaces the query of s with key/value pairs.
func SetQueryParams(s string, kv ...string) (string, error) {
	return errtrace.Wrap2(std.SetQueryParams(s, kv...))
}

// SetMultiValueQueryParams replaces the query of s with the encoded values.
func SetMultiValueQueryParams(s string, vs *Values) (string, error) {
	return errtrace.Wrap2(std.SetMultiValueQueryParams(s, vs))
}

// SetFragment sets the fragment of s, see [Editor.SetFragment].
func SetFragment(s, fragment string) (string, error) {
	return errtrace.Wrap2(std.SetFragment(s, fragment))
}

// AddQueryParam appends key=value to the query of s.
func AddQueryParam(s, key, value string) (string, error) {
	return errtrace.Wrap2(std.AddQueryParam(s, key, value))
}

// AddMultiValueQueryParam appends key=value for each value to the query of s.
func AddMultiValueQueryParam(s, key string, values ...string) (string, error) {
	return errtrace.Wrap2(std.AddMultiValueQueryParam(s, key, values...))
}

// AddQueryParams appends key/value pairs to the query of s.
func AddQueryParams(s string, kv ...string) (string, error) {
	return errtrace.Wrap2(std.AddQueryParams(s, kv...))
}

// AddMultiValueQueryParams appends all values to the query of s.
func AddMultiValueQueryParams(s string, vs *Values) (string, error) {
	return errtrace.Wrap2(std.AddMultiValueQueryParams(s, vs))
}

// UpdateQueryParam replaces the first parameter with the key, see [Editor.UpdateQueryParam].
func UpdateQueryParam(s, key, value string) (string, error) {
	return errtrace.Wrap2(std.UpdateQueryParam(s, key, value))
}

// RemoveQueryParam removes the first parameter with the key.
func RemoveQueryParam(s, key string) (string, error) {
	return errtrace.Wrap2(std.RemoveQueryParam(s, key))
}

// RemoveProtocol removes the protocol of s.
func RemoveProtocol(s string) (string, error) { return errtrace.Wrap2(std.RemoveProtocol(s)) }

// RemoveHost removes the authority of s, see [Editor.RemoveHost].
func RemoveHost(s string) (string, error) { return errtrace.Wrap2(std.RemoveHost(s)) }

// RemovePort removes the port of s.
func RemovePort(s string) (string, error) { return errtrace.Wrap2(std.RemovePort(s)) }

// RemovePath removes the path of s.
func RemovePath(s string) (string, error) { return errtrace.Wrap2(std.RemovePath(s)) }

// RemoveQuery removes the query of s.
func RemoveQuery(s string) (string, error) { return errtrace.Wrap2(std.RemoveQuery(s)) }

// RemoveFragment removes the fragment of s.
func RemoveFragment(s string) (string, error) { return errtrace.Wrap2(std.RemoveFragment(s)) }

// Encode escapes s for a URI query.
func Encode(s string) string { return std.Encode(s) }

// Decode unescapes s, malformed input is returned as is.
func Decode(s string) string { return std.Decode(s) }
