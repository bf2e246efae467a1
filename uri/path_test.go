package uri_test

import (
	"testing"

	"github.com/ghettovoice/urikit/uri"
)

func TestSanitizeEnd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"/", ""},
		{"https://test.com/", "https://test.com"},
		{`https://test.com\some\path\`, "https://test.com/some/path"},
		{"https://test.com/a/./b/../c/?x=1#f", "https://test.com/a/c?x=1#f"},
		{"https://test.com/?x=1", "https://test.com?x=1"},
		{"/some/path//", "/some/path"},
		{"test.com/a/", "test.com/a"},
		{"./file.txt/", "file.txt"},
		{"some path/./x/", "some path/./x"},
		{"?a=b/", "?a=b/"},
		{"#x/", "#x/"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := uri.SanitizeEnd(c.in); got != c.want {
				t.Errorf("uri.SanitizeEnd(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestSanitizeStart(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"/", "/"},
		{"///", "/"},
		{"some/path", "/some/path"},
		{`\\some\path`, "/some/path"},
		{"//some/path/", "/some/path/"},
		{"?a=b", "?a=b"},
		{"/?a=b/", "?a=b/"},
		{"#f", "#f"},
		{"https://test.com/", "https://test.com"},
		{"test.com/x/", "test.com/x"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := uri.SanitizeStart(c.in); got != c.want {
				t.Errorf("uri.SanitizeStart(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"/",
		"https://test.com/",
		`https://test.com\a\.\b\..\c\\`,
		"https://test.com/a/../..//?x#y",
		"some/path/",
		"./file.txt/",
		"../../a/..",
		"//test.com/",
		"/https://test.com/",
		"?a=b",
		"#f/",
		"some path/./",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			end := uri.SanitizeEnd(in)
			if got := uri.SanitizeEnd(end); got != end {
				t.Errorf("uri.SanitizeEnd(uri.SanitizeEnd(%q)) = %q, want %q", in, got, end)
			}
			start := uri.SanitizeStart(in)
			if got := uri.SanitizeStart(start); got != start {
				t.Errorf("uri.SanitizeStart(uri.SanitizeStart(%q)) = %q, want %q", in, got, start)
			}
		})
	}
}

func TestJoinPaths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{"no parts", nil, ""},
		{"blank parts", []string{"", "  "}, ""},
		{"single part", []string{"/a/"}, "/a"},
		{"host and path", []string{"https://test.com/", "/some/path"}, "https://test.com/some/path"},
		{"backslashes", []string{"https://test.com/", `\some\`, "path"}, "https://test.com/some/path"},
		{"blank in the middle", []string{"https://test.com", "", " ", "a/", "b"}, "https://test.com/a/b"},
		{"query tail", []string{"https://test.com/", "?x=1"}, "https://test.com?x=1"},
		{"relative", []string{"a", "b"}, "a/b"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := uri.JoinPaths(c.parts...); got != c.want {
				t.Errorf("uri.JoinPaths(%q) = %q, want %q", c.parts, got, c.want)
			}
		})
	}
}
