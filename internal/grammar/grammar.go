// Package grammar provides byte classes and lexical rules shared by URI routines.
package grammar

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// ProtocolSep separates a scheme from the authority.
const ProtocolSep = "://"

const (
	// PathDelims terminate a host token or an authority.
	PathDelims = "/?#"
	// HostDelims terminate a host token.
	HostDelims = ":/?#"
	// TailDelims start the query or fragment tail.
	TailDelims = "?#"
)

func IsAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

func IsAlphaNum(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// IsSchemeChar reports whether c may follow the first letter of a scheme.
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func IsSchemeChar(c byte) bool { return IsAlphaNum(c) || c == '+' || c == '-' || c == '.' }

func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 || !IsAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

func IsDigits[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsLDHLabel reports whether s is a letter-digit-hyphen DNS label
// that neither starts nor ends with a hyphen.
func IsLDHLabel[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 || len(s) > 63 || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := range len(s) {
		if !IsAlphaNum(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

// IsTopLabel reports whether s looks like a top-level domain label.
func IsTopLabel[T ~string | ~[]byte](s T) bool {
	if len(s) < 2 || len(s) > 63 {
		return false
	}
	for i := range len(s) {
		if !IsAlpha(s[i]) {
			return false
		}
	}
	return true
}

// ProtocolLen returns the length of a leading "scheme://" prefix of s,
// or zero if s does not start with one.
// The separator must occur before any path, query or fragment delimiter.
func ProtocolLen[T ~string | ~[]byte](s T) int {
	for i := range len(s) {
		switch c := s[i]; {
		case c == ':':
			if i > 0 && IsScheme(s[:i]) && len(s) >= i+len(ProtocolSep) &&
				s[i+1] == '/' && s[i+2] == '/' {
				return i + len(ProtocolSep)
			}
			return 0
		case !IsSchemeChar(c):
			return 0
		}
	}
	return 0
}
