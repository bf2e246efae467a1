package uri

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/util"
)

// AddQueryParam appends key=value to the query of s.
// Existing parameters with the same key are kept.
func (e *Editor) AddQueryParam(s, key, value string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", errtrace.Wrap(err)
	}
	var vs Values
	vs.AddString(key, value)
	return errtrace.Wrap2(e.addParams(s, &vs))
}

// AddMultiValueQueryParam appends key=value for each value to the query of s.
// Without values s is returned unchanged.
func (e *Editor) AddMultiValueQueryParam(s, key string, values ...string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", errtrace.Wrap(err)
	}
	var vs Values
	if len(values) > 0 {
		vs.AddString(key, values...)
	}
	return errtrace.Wrap2(e.addParams(s, &vs))
}

// AddQueryParams appends key/value pairs to the query of s.
func (e *Editor) AddQueryParams(s string, kv ...string) (string, error) {
	vs, err := NewValues(kv...)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(e.addParams(s, vs))
}

// AddMultiValueQueryParams appends all values to the query of s.
func (e *Editor) AddMultiValueQueryParams(s string, vs *Values) (string, error) {
	if err := checkKeys(vs); err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(e.addParams(s, vs))
}

func (e *Editor) addParams(s string, vs *Values) (string, error) {
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if vs.Len() == 0 {
		return s, nil
	}
	enc := vs.Encode()
	if err := checkSegment(segQuery, enc, "#"); err != nil {
		return "", errtrace.Wrap(err)
	}
	sg := split(s)
	return errtrace.Wrap2(sg.with(edit{segQuery, appendQuery(sg.get(segQuery), enc)}))
}

func appendQuery(q, enc string) string {
	switch {
	case q == "" || q == "?":
		return "?" + enc
	case strings.HasSuffix(q, "&"):
		return q + enc
	default:
		return q + "&" + enc
	}
}

// UpdateQueryParam replaces the first parameter with the key by key=value, keeping its position.
// If there is no such parameter, it behaves like [Editor.AddQueryParam].
func (e *Editor) UpdateQueryParam(s, key, value string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", errtrace.Wrap(err)
	}
	enc := key + "=" + value
	if err := checkSegment(segQuery, enc, "#"); err != nil {
		return "", errtrace.Wrap(err)
	}
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	sg := split(s)
	toks := queryTokens(sg.get(segQuery))
	if i := indexParam(toks, key); i >= 0 {
		toks[i] = enc
		return errtrace.Wrap2(sg.with(edit{segQuery, "?" + strings.Join(toks, "&")}))
	}
	return errtrace.Wrap2(sg.with(edit{segQuery, appendQuery(sg.get(segQuery), enc)}))
}

// RemoveQueryParam removes the first parameter with the key together with one adjoining '&'.
// Query left empty is removed with its '?'. Missing key is not an error.
func (e *Editor) RemoveQueryParam(s, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", errtrace.Wrap(err)
	}
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	sg := split(s)
	toks := queryTokens(sg.get(segQuery))
	i := indexParam(toks, key)
	if i < 0 {
		return s, nil
	}
	var q string
	if toks = slices.Delete(toks, i, i+1); len(toks) > 0 {
		q = "?" + strings.Join(toks, "&")
	}
	return errtrace.Wrap2(sg.with(edit{segQuery, q}))
}

// queryTokens splits a query span with its '?' into raw "key[=value]" tokens.
func queryTokens(q string) []string {
	if len(q) < 2 {
		return nil
	}
	return strings.Split(q[1:], "&")
}

func indexParam(toks []string, key string) int {
	return slices.IndexFunc(toks, func(tok string) bool {
		k, _, _ := strings.Cut(tok, "=")
		return k == key
	})
}

func checkKey(key string) error {
	if util.IsBlank(key) {
		return errtrace.Wrap(newInvalidInputErr("blank query parameter key"))
	}
	return nil
}

func checkKeys(vs *Values) error {
	for _, k := range vs.Keys() {
		if err := checkKey(k); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}
