package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/log"
	"github.com/ghettovoice/urikit/uri"
)

const errInvalidScript errorutil.Error = "invalid script"

// step is one edit of a script.
//
//	- op: set-host
//	  value: test.com
//	- op: add-param
//	  key: some
//	  values: [v1, v2]
type step struct {
	Op     string   `yaml:"op"`
	Key    string   `yaml:"key,omitempty"`
	Value  string   `yaml:"value,omitempty"`
	Values []string `yaml:"values,omitempty"`
}

type stepFunc func(ed *uri.Editor, s string, st step) (string, error)

var stepFuncs = func() map[string]stepFunc {
	fns := map[string]stepFunc{
		"add-param": func(ed *uri.Editor, s string, st step) (string, error) {
			if len(st.Values) == 0 {
				return errtrace.Wrap2(ed.AddQueryParam(s, st.Key, st.Value))
			}
			return errtrace.Wrap2(ed.AddMultiValueQueryParam(s, st.Key, st.Values...))
		},
		"update-param": func(ed *uri.Editor, s string, st step) (string, error) {
			return errtrace.Wrap2(ed.UpdateQueryParam(s, st.Key, st.Value))
		},
		"remove-param": func(ed *uri.Editor, s string, st step) (string, error) {
			return errtrace.Wrap2(ed.RemoveQueryParam(s, st.Key))
		},
		"set-params": func(ed *uri.Editor, s string, st step) (string, error) {
			return errtrace.Wrap2(ed.SetQueryParams(s, st.Values...))
		},
		"sanitize": func(ed *uri.Editor, s string, _ step) (string, error) {
			return ed.SanitizeEnd(s), nil
		},
		"join": func(ed *uri.Editor, s string, st step) (string, error) {
			return ed.JoinPaths(append([]string{s}, st.Values...)...), nil
		},
	}
	for seg, fn := range setters {
		fns["set-"+seg] = func(ed *uri.Editor, s string, st step) (string, error) {
			return errtrace.Wrap2(fn(ed, s, st.Value))
		}
	}
	for seg, fn := range removers {
		fns["remove-"+seg] = func(ed *uri.Editor, s string, _ step) (string, error) {
			return errtrace.Wrap2(fn(ed, s))
		}
	}
	return fns
}()

// parseScript decodes a YAML list of steps and checks that every op is known.
func parseScript(data []byte) ([]step, error) {
	var steps []step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(errInvalidScript, err))
	}

	var errs []error
	for i, st := range steps {
		if _, ok := stepFuncs[st.Op]; !ok {
			errs = append(errs, fmt.Errorf("step %d: unknown op %q", i+1, st.Op))
		}
	}
	if err := errorutil.JoinPrefix("unknown ops", errs...); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(errInvalidScript, err))
	}
	return steps, nil
}

func runScript(ed *uri.Editor, s string, steps []step) (string, error) {
	for i, st := range steps {
		var err error
		if s, err = stepFuncs[st.Op](ed, s, st); err != nil {
			return "", errtrace.Wrap(fmt.Errorf("step %d (%s): %w", i+1, st.Op, err))
		}
	}
	return s, nil
}

func (a *app) apply(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var data []byte
	if name := cmd.String("script"); name == "-" {
		data, err = io.ReadAll(cmd.Root().Reader)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return errtrace.Wrap(err)
	}

	steps, err := parseScript(data)
	if err != nil {
		return errtrace.Wrap(err)
	}
	a.log.Debug("script loaded",
		slog.Int("steps", len(steps)),
		slog.Any("script", log.StringValue(data)),
	)

	res, err := runScript(a.ed, as[0], steps)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, res))
}
