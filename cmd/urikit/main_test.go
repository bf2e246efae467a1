package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghettovoice/urikit/uri"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	cmd.ErrWriter = &errOut
	cmd.Reader = strings.NewReader(stdin)
	err := cmd.Run(context.Background(), append([]string{"urikit"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
		err      error
	}{
		{name: "get host", args: []string{"get", "host", "https://test.com:80"}, expected: "test.com\n"},
		{name: "get port", args: []string{"get", "port", "https://test.com:80"}, expected: "80\n"},
		{name: "get scheme case insensitive", args: []string{"get", "SCHEME", "https://test.com:80"}, expected: "https\n"},
		{name: "get unknown segment", args: []string{"get", "user", "https://test.com"}, err: errUnknownSeg},
		{name: "get invalid uri", args: []string{"get", "host", "https://test.com/a b"}, err: uri.ErrInvalidURI},
		{name: "get missing args", args: []string{"get", "host"}, err: errUsage},
		{name: "set host", args: []string{"set", "host", "some/path", "test2.com"}, expected: "test2.com/some/path\n"},
		{name: "set port", args: []string{"set", "port", "https://test.com/x", "8080"}, expected: "https://test.com:8080/x\n"},
		{name: "set bad port", args: []string{"set", "port", "https://test.com/x", "http"}, err: errInvalidValue},
		{name: "remove query", args: []string{"remove", "query", "https://test.com/x?a#f"}, expected: "https://test.com/x#f\n"},
		{
			name:     "param add values",
			args:     []string{"param", "add", "https://test.com", "some", "v1", "v2"},
			expected: "https://test.com?some=v1&some=v2\n",
		},
		{name: "param add query", args: []string{"param", "add", "https://test.com?a", "b=1&c"}, expected: "https://test.com?a&b=1&c\n"},
		{name: "param update", args: []string{"param", "update", "https://test.com?a=1", "a", "2"}, expected: "https://test.com?a=2\n"},
		{
			name:     "param remove",
			args:     []string{"param", "remove", "https://test.com/some/path?there=was&some=param#frag", "some"},
			expected: "https://test.com/some/path?there=was#frag\n",
		},
		{name: "params", args: []string{"params", "https://test.com?a=1&flag&a=2"}, expected: "a=1\na=2\nflag\n"},
		{name: "join", args: []string{"join", "https://test.com/", "/some/path"}, expected: "https://test.com/some/path\n"},
		{name: "validate", args: []string{"validate", "https://test.com"}, expected: "valid\n"},
		{name: "validate blank", args: []string{"validate", " "}, err: uri.ErrInvalidInput},
		{name: "encode", args: []string{"encode", "a b&c"}, expected: "a+b%26c\n"},
		{name: "decode", args: []string{"decode", "a+b%26c"}, expected: "a b&c\n"},
		{name: "sanitize start", args: []string{"sanitize", "start", `some\path`}, expected: "/some/path\n"},
		{name: "sanitize end", args: []string{"sanitize", "end", "https://test.com/a/../b/"}, expected: "https://test.com/b\n"},
		{name: "sanitize wrong side", args: []string{"sanitize", "middle", "x"}, err: errUsage},
		{name: "verbose dev logger", args: []string{"--dev", "-v", "decode", "%zz"}, expected: "%zz\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, "", tt.args...)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

const script = `
- op: set-host
  value: test.com
- op: set-protocol
  value: https
- op: set-port
  value: "8080"
- op: add-param
  key: some
  values: ["v1", "v2"]
- op: update-param
  key: some
  value: v0
- op: set-fragment
  value: top
- op: remove-path
`

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("script file", func(t *testing.T) {
		t.Parallel()

		name := filepath.Join(t.TempDir(), "steps.yaml")
		require.NoError(t, os.WriteFile(name, []byte(script), 0o600))

		out, err := run(t, "", "apply", "--script", name, "some/path")
		require.NoError(t, err)
		assert.Equal(t, "https://test.com:8080?some=v0&some=v2#top\n", out)
	})

	t.Run("script from stdin", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "- op: join\n  values: [\"a/\", \"b\"]\n", "apply", "-s", "-", "https://test.com/")
		require.NoError(t, err)
		assert.Equal(t, "https://test.com/a/b\n", out)
	})

	t.Run("failed step", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "- op: remove-param\n  key: \"\"\n", "apply", "-s", "-", "https://test.com?a")
		require.ErrorIs(t, err, uri.ErrInvalidInput)
		assert.Contains(t, err.Error(), "step 1 (remove-param)")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "", "apply", "-s", filepath.Join(t.TempDir(), "none.yaml"), "https://test.com")
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		steps, err := parseScript([]byte(script))
		require.NoError(t, err)
		require.Len(t, steps, 7)
		assert.Equal(t, step{Op: "add-param", Key: "some", Values: []string{"v1", "v2"}}, steps[3])
	})

	t.Run("unknown ops", func(t *testing.T) {
		t.Parallel()

		_, err := parseScript([]byte("- op: explode\n- op: set-host\n- op: implode\n"))
		require.ErrorIs(t, err, errInvalidScript)
		assert.EqualError(t, err,
			"invalid script: unknown ops\n  - step 1: unknown op \"explode\"\n  - step 3: unknown op \"implode\"")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := parseScript([]byte("op: ["))
		require.ErrorIs(t, err, errInvalidScript)
	})
}
