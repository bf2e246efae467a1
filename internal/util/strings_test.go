package util_test

import (
	"testing"

	"github.com/ghettovoice/urikit/internal/util"
)

func TestIndexAnyFrom(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s, chars string
		from     int
		want     int
	}{
		{"", "?#", 0, 0},
		{"a/b?c#d", "?#", 0, 3},
		{"a/b?c#d", "#", 4, 5},
		{"a/b?c#d", "?#", 6, 7},
		{"a/b", "?#", 0, 3},
		{"a/b", "?#", 10, 3},
	}
	for _, c := range cases {
		if got := util.IndexAnyFrom(c.s, c.from, c.chars); got != c.want {
			t.Errorf("util.IndexAnyFrom(%q, %d, %q) = %d, want %d", c.s, c.from, c.chars, got, c.want)
		}
	}
}

func TestOrEmpty(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "", " \t\n": "", " a ": " a ", "a": "a"} {
		if got := util.OrEmpty(in); got != want {
			t.Errorf("util.OrEmpty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToSlash(t *testing.T) {
	t.Parallel()

	if got, want := util.ToSlash(`C:\some\path/x`), "C:/some/path/x"; got != want {
		t.Errorf("util.ToSlash() = %q, want %q", got, want)
	}
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	if got := util.Coalesce("", "", "b", "c"); got != "b" {
		t.Errorf("util.Coalesce() = %q, want %q", got, "b")
	}
	if got := util.Coalesce(0, 0); got != 0 {
		t.Errorf("util.Coalesce() = %d, want 0", got)
	}
}
