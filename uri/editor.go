package uri

//go:generate go tool errtrace -w .

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urikit/internal/log"
	"github.com/ghettovoice/urikit/internal/util"
)

// Editor inspects and rewrites URI-like strings.
//
// An Editor is immutable after construction and safe for concurrent use.
// The zero value is not usable, create editors with [New].
type Editor struct {
	validator Validator
	log       *slog.Logger
}

// EditorOptions holds settings applied by [Option] values.
type EditorOptions struct {
	Validator Validator
	Logger    *slog.Logger
}

// Option configures an [Editor].
type Option interface {
	ApplyEditorOption(opts *EditorOptions)
}

type withValidator struct {
	v Validator
}

func (o withValidator) ApplyEditorOption(opts *EditorOptions) {
	opts.Validator = o.v
}

// WithValidator sets the strict validator used to check inputs of getters and mutators.
// Default is [RFC3986Validator].
func WithValidator(v Validator) Option {
	return withValidator{v}
}

type withLogger struct {
	l *slog.Logger
}

func (o withLogger) ApplyEditorOption(opts *EditorOptions) {
	opts.Logger = o.l
}

// WithLogger sets the logger for lenient fallbacks. Default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return withLogger{l}
}

// New creates a new Editor.
func New(opts ...Option) *Editor {
	var o EditorOptions
	for _, opt := range opts {
		if opt != nil {
			opt.ApplyEditorOption(&o)
		}
	}

	e := &Editor{
		validator: o.Validator,
		log:       o.Logger,
	}
	if e.validator == nil {
		e.validator = RFC3986Validator{}
	}
	if e.log == nil {
		e.log = log.Noop
	}
	return e
}

var std = New()

// Default returns the editor used by the package-level functions.
func Default() *Editor { return std }

// Validate checks s with the editor's validator.
// Blank s fails with [ErrInvalidInput], invalid s fails with [ErrInvalidURI].
func (e *Editor) Validate(s string) error {
	if util.IsBlank(s) {
		return errtrace.Wrap(newInvalidInputErr("blank URI"))
	}
	return errtrace.Wrap(e.validate(s))
}

// IsValid reports whether s is a non-blank valid URI reference.
func (e *Editor) IsValid(s string) bool {
	return e.Validate(s) == nil
}

func (e *Editor) validate(s string) error {
	if err := e.validator.Validate(s); err != nil {
		return errtrace.Wrap(newInvalidURIErr(err))
	}
	return nil
}

// checked returns s with blank input collapsed to "",
// non-empty input must pass strict validation.
func (e *Editor) checked(s string) (string, error) {
	s = util.OrEmpty(s)
	if s == "" {
		return "", nil
	}
	if err := e.validate(s); err != nil {
		return "", errtrace.Wrap(err)
	}
	return s, nil
}

// lenient is like checked, but a validation failure is only logged.
func (e *Editor) lenient(s, op string) string {
	s = util.OrEmpty(s)
	if s == "" {
		return ""
	}
	if err := e.validate(s); err != nil {
		e.log.Debug("URI failed strict validation, applying lenient rules",
			slog.String("op", op),
			slog.String("uri", s),
			slog.Any("error", err),
		)
	}
	return s
}
