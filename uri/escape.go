package uri

import (
	"log/slog"
	"net/url"
)

// Encode escapes s to be safely placed inside a URI query.
func (e *Editor) Encode(s string) string { return url.QueryEscape(s) }

// Decode unescapes s encoded with [Editor.Encode].
// Malformed escapes are not an error, s is returned as is.
func (e *Editor) Decode(s string) string {
	d, err := url.QueryUnescape(s)
	if err != nil {
		e.log.Debug("failed to decode string, returned as is",
			slog.String("input", s),
			slog.Any("error", err),
		)
		return s
	}
	return d
}
