package util

import (
	"strings"
	"sync"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// IsBlank reports whether s is empty or consists of white space only.
func IsBlank[T ~string](s T) bool { return strings.TrimSpace(string(s)) == "" }

// OrEmpty returns s or an empty string if s is blank.
func OrEmpty[T ~string](s T) T {
	if IsBlank(s) {
		return ""
	}
	return s
}

// IndexAnyFrom returns the index of the first byte of chars in s[from:],
// or len(s) if there is none.
func IndexAnyFrom(s string, from int, chars string) int {
	if from >= len(s) {
		return len(s)
	}
	if i := strings.IndexAny(s[from:], chars); i >= 0 {
		return from + i
	}
	return len(s)
}

// ToSlash replaces all backslashes with forward slashes.
func ToSlash[T ~string](s T) T { return T(strings.ReplaceAll(string(s), `\`, "/")) }

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
