package uri

import (
	"io"
	"iter"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/ioutil"
	"github.com/ghettovoice/urikit/internal/util"
)

// Value is a query parameter value.
// The zero value represents a bare key without a value ("?flag"),
// [Val]("") represents an empty value ("?flag=").
type Value struct {
	val string
	ok  bool
}

// Val returns a present query parameter value.
func Val(s string) Value { return Value{s, true} }

// Get returns the value and whether it is present.
func (v Value) Get() (string, bool) { return v.val, v.ok }

// IsBare reports whether the value is absent.
func (v Value) IsBare() bool { return !v.ok }

// String returns the value or an empty string for a bare key.
func (v Value) String() string { return v.val }

// Values is an ordered multi-map of query parameters.
// Keys keep their first-seen order, values keep the insertion order within a key.
// Keys are case-sensitive.
//
// The zero value is an empty map ready to use. Methods are nil-safe for reading.
type Values struct {
	keys []string
	vals map[string][]Value
}

// NewValues creates Values from key/value pairs.
// It returns [ErrInvalidInput] if the number of arguments is odd or a key is blank.
func NewValues(kv ...string) (*Values, error) {
	if len(kv)%2 != 0 {
		return nil, errtrace.Wrap(newInvalidInputErr("number of parameters must be multiple of 2, got %d", len(kv)))
	}
	vs := new(Values)
	for i := 0; i < len(kv); i += 2 {
		if util.IsBlank(kv[i]) {
			return nil, errtrace.Wrap(newInvalidInputErr("blank query parameter key at position %d", i))
		}
		vs.AddString(kv[i], kv[i+1])
	}
	return vs, nil
}

// ParseQuery decodes a query string. A leading '?' is ignored.
//
// Tokens are separated by '&', empty tokens are skipped.
// A token without '=' is a bare key, everything after the first '=' is the value.
// No percent-decoding is applied.
func ParseQuery(q string) *Values {
	vs := new(Values)
	for tok := range strings.SplitSeq(strings.TrimPrefix(q, "?"), "&") {
		if tok == "" {
			continue
		}
		if k, v, ok := strings.Cut(tok, "="); ok {
			vs.Add(k, Val(v))
		} else {
			vs.Add(k)
		}
	}
	return vs
}

// Add appends values to the key. Without values a bare key is added.
func (vs *Values) Add(key string, vals ...Value) {
	if len(vals) == 0 {
		vals = []Value{{}}
	}
	if vs.vals == nil {
		vs.vals = make(map[string][]Value)
	}
	cur, ok := vs.vals[key]
	if !ok {
		vs.keys = append(vs.keys, key)
	}
	vs.vals[key] = append(cur, vals...)
}

// AddString appends present string values to the key.
func (vs *Values) AddString(key string, vals ...string) {
	if len(vals) == 0 {
		vs.Add(key, Val(""))
		return
	}
	vv := make([]Value, len(vals))
	for i, v := range vals {
		vv[i] = Val(v)
	}
	vs.Add(key, vv...)
}

// Set replaces all values of the key, keeping the key position.
func (vs *Values) Set(key string, vals ...Value) {
	if _, ok := vs.vals[key]; ok {
		if len(vals) == 0 {
			vals = []Value{{}}
		}
		vs.vals[key] = slices.Clone(vals)
		return
	}
	vs.Add(key, vals...)
}

// Get returns all values of the key.
func (vs *Values) Get(key string) []Value {
	if vs == nil {
		return nil
	}
	return vs.vals[key]
}

// Strings returns all values of the key as strings, bare values become empty strings.
func (vs *Values) Strings(key string) []string {
	vals := vs.Get(key)
	if vals == nil {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.val
	}
	return out
}

// First returns the first value of the key.
func (vs *Values) First(key string) (Value, bool) {
	vals := vs.Get(key)
	if len(vals) == 0 {
		return Value{}, false
	}
	return vals[0], true
}

// Has reports whether the key is present.
func (vs *Values) Has(key string) bool {
	if vs == nil {
		return false
	}
	_, ok := vs.vals[key]
	return ok
}

// Del removes the key with all its values.
func (vs *Values) Del(key string) {
	if !vs.Has(key) {
		return
	}
	delete(vs.vals, key)
	vs.keys = slices.DeleteFunc(vs.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in their first-seen order.
func (vs *Values) Keys() []string {
	if vs == nil {
		return nil
	}
	return slices.Clone(vs.keys)
}

// Len returns the number of keys.
func (vs *Values) Len() int {
	if vs == nil {
		return 0
	}
	return len(vs.keys)
}

// All iterates over key/value pairs in encoding order.
func (vs *Values) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if vs == nil {
			return
		}
		for _, k := range vs.keys {
			for _, v := range vs.vals[k] {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of vs.
func (vs *Values) Clone() *Values {
	if vs == nil {
		return nil
	}
	vs2 := &Values{
		keys: slices.Clone(vs.keys),
		vals: make(map[string][]Value, len(vs.vals)),
	}
	for k, v := range vs.vals {
		vs2.vals[k] = slices.Clone(v)
	}
	return vs2
}

// Equal reports whether both maps hold the same keys and values in the same order.
func (vs *Values) Equal(other *Values) bool {
	if vs.Len() != other.Len() {
		return false
	}
	if vs.Len() == 0 {
		return true
	}
	if !slices.Equal(vs.keys, other.keys) {
		return false
	}
	for _, k := range vs.keys {
		if !slices.Equal(vs.vals[k], other.vals[k]) {
			return false
		}
	}
	return true
}

// RenderTo writes the encoded query to w.
func (vs *Values) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	first := true
	for k, v := range vs.All() {
		if !first {
			cw.WriteString("&")
		}
		first = false
		cw.WriteString(k)
		if v.ok {
			cw.WriteString("=", v.val)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Encode returns the query string without the leading '?'.
// Bare keys are encoded without '='. No percent-encoding is applied.
func (vs *Values) Encode() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	vs.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String implements [fmt.Stringer], it is the same as [Values.Encode].
func (vs *Values) String() string { return vs.Encode() }
