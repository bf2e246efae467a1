package uri_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/urikit/internal/log"
	"github.com/ghettovoice/urikit/uri"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	ed := uri.New(nil, uri.WithValidator(nil), uri.WithLogger(nil))
	if _, err := ed.Host("https://test.com/a b"); !errors.Is(err, uri.ErrInvalidURI) {
		t.Errorf("ed.Host() error = %v, want %v", err, uri.ErrInvalidURI)
	}
	if uri.Default() == nil {
		t.Error("uri.Default() = nil, want default editor")
	}
}

func TestEditor_WithValidator(t *testing.T) {
	t.Parallel()

	t.Run("rejects", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		v := NewMockValidator(ctrl)
		errRejected := errors.New("rejected by policy")
		v.EXPECT().Validate("https://test.com").Return(errRejected)

		ed := uri.New(uri.WithValidator(v))
		_, err := ed.Host("https://test.com")
		if !errors.Is(err, uri.ErrInvalidURI) || !errors.Is(err, errRejected) {
			t.Errorf("ed.Host() error = %v, want %v wrapping %v", err, uri.ErrInvalidURI, errRejected)
		}
	})

	t.Run("accepts", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		v := NewMockValidator(ctrl)
		v.EXPECT().Validate(gomock.Any()).Return(nil).Times(2)

		ed := uri.New(uri.WithValidator(v))
		got, err := ed.Path("some path")
		if err != nil {
			t.Fatalf("ed.Path() error = %v, want nil", err)
		}
		if want := "/some path"; got != want {
			t.Errorf("ed.Path() = %q, want %q", got, want)
		}
		if !ed.IsValid(`some\path`) {
			t.Error("ed.IsValid() = false, want true")
		}
	})

	t.Run("blank input skips validation", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		ed := uri.New(uri.WithValidator(NewMockValidator(ctrl)))
		if got, err := ed.Host("  "); got != "" || err != nil {
			t.Errorf("ed.Host() = (%q, %v), want (\"\", nil)", got, err)
		}
		if got, err := ed.SetQuery("", "a=b"); got != "?a=b" || err != nil {
			t.Errorf("ed.SetQuery() = (%q, %v), want (\"?a=b\", nil)", got, err)
		}
	})

	t.Run("func", func(t *testing.T) {
		t.Parallel()

		ed := uri.New(uri.WithValidator(uri.ValidatorFunc(func(s string) error {
			if strings.HasPrefix(s, "ftp:") {
				return errors.New("ftp is not allowed")
			}
			return nil
		})))
		if _, err := ed.Host("ftp://test.com"); !errors.Is(err, uri.ErrInvalidURI) {
			t.Errorf("ed.Host() error = %v, want %v", err, uri.ErrInvalidURI)
		}
		if got, err := ed.Host("https://test.com"); got != "test.com" || err != nil {
			t.Errorf("ed.Host() = (%q, %v), want (\"test.com\", nil)", got, err)
		}
	})
}

func TestEditor_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ed := uri.New(uri.WithLogger(log.NewConsole(&buf, slog.LevelDebug)))

	got, err := ed.SetHost("some path", "test.com")
	if err != nil {
		t.Fatalf("ed.SetHost() error = %v, want nil", err)
	}
	if want := "test.com/some path"; got != want {
		t.Errorf("ed.SetHost() = %q, want %q", got, want)
	}
	if out := buf.String(); !strings.Contains(out, "failed strict validation") || !strings.Contains(out, "SetHost") {
		t.Errorf("log output = %q, want validation fallback record", out)
	}

	buf.Reset()
	if got := ed.Decode("%zz"); got != "%zz" {
		t.Errorf("ed.Decode() = %q, want %q", got, "%zz")
	}
	if out := buf.String(); !strings.Contains(out, "failed to decode") {
		t.Errorf("log output = %q, want decode failure record", out)
	}

	buf.Reset()
	if got, err := ed.SetPort("some/path", 80); got != "some/path" || err != nil {
		t.Errorf("ed.SetPort() = (%q, %v), want (\"some/path\", nil)", got, err)
	}
	if out := buf.String(); !strings.Contains(out, "no host to attach port") {
		t.Errorf("log output = %q, want port fallback record", out)
	}
}

func TestEditor_Concurrent(t *testing.T) {
	t.Parallel()

	ed := uri.New()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Go(func() {
			s, err := ed.AddQueryParam("https://test.com/x#f", "n", strings.Repeat("a", i))
			if err != nil {
				t.Errorf("ed.AddQueryParam() error = %v, want nil", err)
				return
			}
			if want := "https://test.com/x?n=" + strings.Repeat("a", i) + "#f"; s != want {
				t.Errorf("ed.AddQueryParam() = %q, want %q", s, want)
			}
		})
	}
	wg.Wait()
}
