package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/grammar"
	"github.com/ghettovoice/urikit/internal/util"
)

type segmentID int

const (
	segProto segmentID = iota
	segUser
	segHost
	segPort
	segPath
	segQuery
	segFrag
	numSegments
)

var segmentNames = [numSegments]string{"protocol", "userinfo", "host", "port", "path", "query", "fragment"}

func (id segmentID) String() string {
	if id < 0 || id >= numSegments {
		return "unknown"
	}
	return segmentNames[id]
}

type span struct{ start, end int }

func (sp span) empty() bool { return sp.start == sp.end }

// segments holds the byte spans of a URI-like string.
// Spans are contiguous and keep their delimiters:
//
//	proto  "https://"
//	user   "user:pass@"
//	host   "test.com" or "[::1]"
//	port   ":8080"
//	path   "/some/path"
//	query  "?a=b"
//	frag   "#top"
type segments struct {
	src   string
	spans [numSegments]span
}

// split decomposes s using the authority heuristic to choose
// between the authority and the path layout.
func split(s string) segments {
	if HasAuthority(s) {
		return splitAuthority(s)
	}
	return splitPath(s)
}

func splitAuthority(s string) segments {
	sg := segments{src: s}

	i := grammar.ProtocolLen(s)
	sg.spans[segProto] = span{0, i}

	authEnd := util.IndexAnyFrom(s, i, grammar.PathDelims)
	if at := strings.LastIndexByte(s[i:authEnd], '@'); at >= 0 {
		sg.spans[segUser] = span{i, i + at + 1}
		i += at + 1
	} else {
		sg.spans[segUser] = span{i, i}
	}

	j := i
	if j < authEnd && s[j] == '[' {
		if k := strings.IndexByte(s[j:authEnd], ']'); k >= 0 {
			j += k + 1
		} else {
			j = authEnd
		}
	} else {
		j = util.IndexAnyFrom(s, j, grammar.HostDelims)
	}
	sg.spans[segHost] = span{i, j}
	sg.spans[segPort] = span{j, authEnd}

	k := util.IndexAnyFrom(s, authEnd, grammar.TailDelims)
	sg.spans[segPath] = span{authEnd, k}
	sg.splitTail(k)
	return sg
}

func splitPath(s string) segments {
	sg := segments{src: s}
	k := util.IndexAnyFrom(s, 0, grammar.TailDelims)
	sg.spans[segPath] = span{0, k}
	sg.splitTail(k)
	return sg
}

func (sg *segments) splitTail(from int) {
	s := sg.src
	if from < len(s) && s[from] == '?' {
		q := util.IndexAnyFrom(s, from, "#")
		sg.spans[segQuery] = span{from, q}
		sg.spans[segFrag] = span{q, len(s)}
		return
	}
	sg.spans[segQuery] = span{from, from}
	sg.spans[segFrag] = span{from, len(s)}
}

func (sg *segments) get(id segmentID) string {
	sp := sg.spans[id]
	return sg.src[sp.start:sp.end]
}

func (sg *segments) has(id segmentID) bool { return !sg.spans[id].empty() }

// check verifies that the spans cover the source exactly and in order.
func (sg *segments) check() error {
	pos := 0
	for id, sp := range sg.spans {
		if sp.start != pos || sp.end < sp.start {
			return errtrace.Wrap(newInvalidURIErr(
				"inconsistent %s span [%d:%d] at offset %d in %q", segmentID(id), sp.start, sp.end, pos, sg.src))
		}
		pos = sp.end
	}
	if pos != len(sg.src) {
		return errtrace.Wrap(newInvalidURIErr(
			"segments cover %d of %d bytes in %q", pos, len(sg.src), sg.src))
	}
	return nil
}

// checkSegment rejects a new segment value that contains delimiters
// starting a later segment, it would be read back as a different URI.
func checkSegment(id segmentID, val, delims string) error {
	if i := strings.IndexAny(val, delims); i >= 0 {
		return errtrace.Wrap(newInvalidInputErr("%s %q contains delimiter %q", id, val, val[i]))
	}
	return nil
}

type edit struct {
	id  segmentID
	val string
}

// with rebuilds the source replacing the edited segments.
// Untouched segments are copied verbatim.
func (sg *segments) with(edits ...edit) (string, error) {
	if err := sg.check(); err != nil {
		return "", errtrace.Wrap(err)
	}

	var (
		repl    [numSegments]string
		changed [numSegments]bool
	)
	for _, e := range edits {
		repl[e.id] = e.val
		changed[e.id] = true
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for id := range numSegments {
		if changed[id] {
			sb.WriteString(repl[id])
		} else {
			sb.WriteString(sg.get(id))
		}
	}
	return sb.String(), nil
}
