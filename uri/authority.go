package uri

import (
	"net/netip"
	"strings"

	"github.com/miekg/dns"

	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
)

// HasAuthority reports whether s starts with a protocol ("scheme://")
// or with a recognizable host.
//
// A host is recognized in the first token of s (everything before the first '/', '?' or '#'),
// after dropping an optional "userinfo@" prefix and an optional ":port" suffix.
// The token must be "localhost", an IPv4 address, a bracketed IPv6 address
// or a domain name of at least two letter-digit-hyphen labels whose last label
// is alphabetic and at least two characters long.
//
// The heuristic favors paths: "some/path" and "file.1" have no authority,
// while "test.com/some/path" and "file.txt" do. Prefix the string with '/'
// or with a protocol to avoid the ambiguity.
func HasAuthority(s string) bool {
	if grammar.ProtocolLen(s) > 0 {
		return true
	}
	return isHost(hostToken(s))
}

func hostToken(s string) string {
	tok := s[:util.IndexAnyFrom(s, 0, grammar.PathDelims)]
	if at := strings.LastIndexByte(tok, '@'); at >= 0 {
		tok = tok[at+1:]
	}
	if strings.HasPrefix(tok, "[") {
		if k := strings.IndexByte(tok, ']'); k > 0 {
			if port := tok[k+1:]; port != "" && !isPort(port) {
				return ""
			}
			return tok[:k+1]
		}
		return ""
	}
	if c := strings.IndexByte(tok, ':'); c >= 0 {
		if !isPort(tok[c:]) {
			return ""
		}
		tok = tok[:c]
	}
	return tok
}

// isPort checks a ":port" suffix, the port digits may be omitted.
func isPort(s string) bool {
	return s == ":" || len(s) > 1 && s[0] == ':' && grammar.IsDigits(s[1:])
}

func isHost(tok string) bool {
	switch {
	case tok == "":
		return false
	case util.EqFold(tok, "localhost"):
		return true
	case tok[0] == '[':
		addr, err := netip.ParseAddr(tok[1 : len(tok)-1])
		return err == nil && addr.Is6()
	}

	if addr, err := netip.ParseAddr(tok); err == nil {
		return addr.Is4()
	}

	if n, ok := dns.IsDomainName(tok); !ok || n < 2 {
		return false
	}
	labels := dns.SplitDomainName(tok)
	for _, l := range labels {
		if !grammar.IsLDHLabel(l) {
			return false
		}
	}
	return grammar.IsTopLabel(labels[len(labels)-1])
}
