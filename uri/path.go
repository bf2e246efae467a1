package uri

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ghettovoice/urikit/internal/util"
)

// SanitizeStart normalizes the start of a path part.
// See [Editor.SanitizeStart].
func SanitizeStart(p string) string { return std.SanitizeStart(p) }

// SanitizeEnd normalizes the end of a URI or path.
// See [Editor.SanitizeEnd].
func SanitizeEnd(s string) string { return std.SanitizeEnd(s) }

// JoinPaths joins URI parts into one string.
// See [Editor.JoinPaths].
func JoinPaths(parts ...string) string { return std.JoinPaths(parts...) }

// SanitizeStart converts backslashes to slashes and makes p start with exactly one '/'.
//
// If p, stripped of its leading slashes, is a bare query ("?a=b"), a bare fragment ("#top")
// or a string with a protocol or a host, it is sanitized with [Editor.SanitizeEnd] instead.
// Empty p stays empty, a slash-only p becomes "/".
func (e *Editor) SanitizeStart(p string) string {
	p = util.ToSlash(p)
	stripped := strings.TrimLeft(p, "/")
	if stripped == "" {
		if p == "" {
			return ""
		}
		return "/"
	}
	if stripped[0] == '?' || stripped[0] == '#' || HasAuthority(p) {
		return e.SanitizeEnd(stripped)
	}
	return "/" + stripped
}

// SanitizeEnd converts backslashes to slashes and removes the trailing slashes of the path.
//
// When s passes strict validation, dot segments of its path are removed
// ("a/./b" -> "a/b", "a/b/../c" -> "a/c"). A bare query or fragment is returned as is.
// The query and the fragment are never touched.
func (e *Editor) SanitizeEnd(s string) string {
	s = util.ToSlash(s)
	if s == "" || s[0] == '?' || s[0] == '#' {
		return s
	}

	sg := split(s)
	p := sg.get(segPath)
	if e.validator.Validate(s) == nil {
		p = removeDotSegments(p)
	}
	p = strings.TrimRight(p, "/")
	if p == sg.get(segPath) {
		return s
	}
	res, err := sg.with(edit{segPath, p})
	if err != nil {
		e.log.Debug("failed to sanitize URI end",
			slog.String("uri", s),
			slog.Any("error", err),
		)
		return s
	}
	return res
}

// JoinPaths joins URI parts.
// Blank parts are skipped, the first part is end-sanitized, the last part is start-sanitized,
// middle parts are sanitized on both sides. Parts are concatenated without extra separators.
//
//	JoinPaths("https://test.com/", "\\some\\", "path") // "https://test.com/some/path"
func (e *Editor) JoinPaths(parts ...string) string {
	parts = slices.DeleteFunc(slices.Clone(parts), util.IsBlank[string])
	if len(parts) == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, p := range parts {
		switch {
		case i == 0:
			p = e.SanitizeEnd(p)
		case i == len(parts)-1:
			p = e.SanitizeStart(p)
		default:
			p = e.SanitizeEnd(e.SanitizeStart(p))
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// sanitizePath returns p with slashes normalized and exactly one leading '/'.
// Blank p gives an empty path.
func sanitizePath(p string) string {
	if util.IsBlank(p) {
		return ""
	}
	return "/" + strings.TrimLeft(util.ToSlash(p), "/")
}

// removeDotSegments collapses "." and ".." segments of a path.
// The root of an absolute path is never popped, leading ".." of a relative path are kept.
// A path ending with a dot segment keeps a trailing slash.
func removeDotSegments(p string) string {
	if !strings.Contains(p, ".") {
		return p
	}

	abs := strings.HasPrefix(p, "/")
	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	out := make([]string, 0, len(segs))
	trail := false
	for i, seg := range segs {
		last := i == len(segs)-1
		switch seg {
		case ".":
			trail = last
		case "..":
			trail = last
			switch {
			case len(out) > 0 && out[len(out)-1] != "..":
				out = out[:len(out)-1]
			case !abs:
				out = append(out, seg)
			}
		default:
			trail = false
			out = append(out, seg)
		}
	}

	res := strings.Join(out, "/")
	if trail && res != "" {
		res += "/"
	}
	if abs {
		res = "/" + res
	}
	return res
}
