package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"braces.dev/errtrace"
	"github.com/urfave/cli/v3"

	"github.com/ghettovoice/urikit/internal/errorutil"
	"github.com/ghettovoice/urikit/internal/log"
	"github.com/ghettovoice/urikit/internal/util"
	"github.com/ghettovoice/urikit/uri"
)

const (
	errUsage        errorutil.Error = "invalid usage"
	errUnknownSeg   errorutil.Error = "unknown segment"
	errInvalidValue errorutil.Error = "invalid value"
)

type (
	getFunc    func(ed *uri.Editor, s string) (string, error)
	setFunc    func(ed *uri.Editor, s, v string) (string, error)
	removeFunc func(ed *uri.Editor, s string) (string, error)
)

var getters = map[string]getFunc{
	"protocol": (*uri.Editor).Protocol,
	"scheme":   (*uri.Editor).Scheme,
	"host":     (*uri.Editor).Host,
	"port":     (*uri.Editor).Port,
	"path":     (*uri.Editor).Path,
	"query":    (*uri.Editor).Query,
	"fragment": (*uri.Editor).Fragment,
}

var setters = map[string]setFunc{
	"protocol": (*uri.Editor).SetProtocol,
	"host":     (*uri.Editor).SetHost,
	"port":     setPort,
	"path":     (*uri.Editor).SetPath,
	"query":    (*uri.Editor).SetQuery,
	"fragment": (*uri.Editor).SetFragment,
}

var removers = map[string]removeFunc{
	"protocol": (*uri.Editor).RemoveProtocol,
	"host":     (*uri.Editor).RemoveHost,
	"port":     (*uri.Editor).RemovePort,
	"path":     (*uri.Editor).RemovePath,
	"query":    (*uri.Editor).RemoveQuery,
	"fragment": (*uri.Editor).RemoveFragment,
}

func setPort(ed *uri.Editor, s, v string) (string, error) {
	p, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(errInvalidValue, err))
	}
	return errtrace.Wrap2(ed.SetPort(s, uint16(p)))
}

func lookup[F any](fns map[string]F, seg string) (F, error) {
	fn, ok := fns[util.LCase(seg)]
	if !ok {
		return fn, errtrace.Wrap(errorutil.NewWrapperError(errUnknownSeg, "%q", seg))
	}
	return fn, nil
}

type app struct {
	ed  *uri.Editor
	log *slog.Logger
}

func newCommand() *cli.Command {
	a := new(app)
	return &cli.Command{
		Name:  "urikit",
		Usage: "inspect and rewrite URI-like strings",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dev", Usage: "developer log output"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log lenient fallbacks"},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print a segment",
				ArgsUsage: "<protocol|scheme|host|port|path|query|fragment> <uri>",
				Action:    a.get,
			},
			{
				Name:      "set",
				Usage:     "replace a segment",
				ArgsUsage: "<protocol|host|port|path|query|fragment> <uri> <value>",
				Action:    a.set,
			},
			{
				Name:      "remove",
				Usage:     "remove a segment",
				ArgsUsage: "<protocol|host|port|path|query|fragment> <uri>",
				Action:    a.remove,
			},
			{
				Name:  "param",
				Usage: "edit query parameters",
				Commands: []*cli.Command{
					{Name: "add", ArgsUsage: "<uri> <key|query> [value...]", Action: a.paramAdd},
					{Name: "update", ArgsUsage: "<uri> <key> <value>", Action: a.paramUpdate},
					{Name: "remove", ArgsUsage: "<uri> <key>", Action: a.paramRemove},
				},
			},
			{
				Name:      "params",
				Usage:     "print query parameters, one per line",
				ArgsUsage: "<uri>",
				Action:    a.params,
			},
			{
				Name:      "join",
				Usage:     "join URI parts",
				ArgsUsage: "<part>...",
				Action:    a.join,
			},
			{
				Name:      "validate",
				Usage:     "check a URI reference",
				ArgsUsage: "<uri>",
				Action:    a.validate,
			},
			{
				Name:      "encode",
				Usage:     "escape a string for a query",
				ArgsUsage: "<string>",
				Action:    a.encode,
			},
			{
				Name:      "decode",
				Usage:     "unescape a query string",
				ArgsUsage: "<string>",
				Action:    a.decode,
			},
			{
				Name:      "sanitize",
				Usage:     "normalize slashes",
				ArgsUsage: "<start|end> <string>",
				Action:    a.sanitize,
			},
			{
				Name:      "apply",
				Usage:     "apply a YAML edit script",
				ArgsUsage: "<uri>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "script", Aliases: []string{"s"}, Usage: "script file, - for stdin", Required: true},
				},
				Action: a.apply,
			},
		},
	}
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	w := util.Coalesce[io.Writer](cmd.ErrWriter, os.Stderr)
	lvl := slog.LevelInfo
	if cmd.Bool("verbose") {
		lvl = slog.LevelDebug
	}

	if cmd.Bool("dev") {
		a.log = log.NewDev(w, lvl)
	} else {
		a.log = log.NewConsole(w, lvl)
	}
	a.ed = uri.New(uri.WithLogger(a.log))
	return ctx, nil
}

func args(cmd *cli.Command, lo, hi int) ([]string, error) {
	as := cmd.Args().Slice()
	if len(as) < lo || hi >= 0 && len(as) > hi {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(errUsage, "%s %s", cmd.Name, cmd.ArgsUsage))
	}
	return as, nil
}

func output(cmd *cli.Command, vals ...any) error {
	_, err := fmt.Fprintln(cmd.Root().Writer, vals...)
	return errtrace.Wrap(err)
}

func (a *app) get(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 2, 2)
	if err != nil {
		return errtrace.Wrap(err)
	}
	fn, err := lookup(getters, as[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	res, err := fn(a.ed, as[1])
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, res))
}

func (a *app) set(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 3, 3)
	if err != nil {
		return errtrace.Wrap(err)
	}
	fn, err := lookup(setters, as[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	res, err := fn(a.ed, as[1], as[2])
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, res))
}

func (a *app) remove(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 2, 2)
	if err != nil {
		return errtrace.Wrap(err)
	}
	fn, err := lookup(removers, as[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	res, err := fn(a.ed, as[1])
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, res))
}

func (a *app) paramAdd(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 2, -1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	var res string
	if len(as) == 2 {
		res, err = a.ed.AddMultiValueQueryParams(as[0], uri.ParseQuery(as[1]))
	} else {
		res, err = a.ed.AddMultiValueQueryParam(as[0], as[1], as[2:]...)
	}
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, res))
}

func (a *app) paramUpdate(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 3, 3)
	if err != nil {
		return errtrace.Wrap(err)
	}
	res, err := a.ed.UpdateQueryParam(as[0], as[1], as[2])
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, res))
}

func (a *app) paramRemove(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 2, 2)
	if err != nil {
		return errtrace.Wrap(err)
	}
	res, err := a.ed.RemoveQueryParam(as[0], as[1])
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, res))
}

func (a *app) params(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	vs, err := a.ed.QueryParams(as[0])
	if err != nil {
		return errtrace.Wrap(err)
	}
	for k, v := range vs.All() {
		line := k
		if val, ok := v.Get(); ok {
			line += "=" + val
		}
		if err := output(cmd, line); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (a *app) join(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 1, -1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, a.ed.JoinPaths(as...)))
}

func (a *app) validate(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := a.ed.Validate(as[0]); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, "valid"))
}

func (a *app) encode(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, a.ed.Encode(as[0])))
}

func (a *app) decode(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 1, 1)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(output(cmd, a.ed.Decode(as[0])))
}

func (a *app) sanitize(_ context.Context, cmd *cli.Command) error {
	as, err := args(cmd, 2, 2)
	if err != nil {
		return errtrace.Wrap(err)
	}
	switch util.LCase(as[0]) {
	case "start":
		return errtrace.Wrap(output(cmd, a.ed.SanitizeStart(as[1])))
	case "end":
		return errtrace.Wrap(output(cmd, a.ed.SanitizeEnd(as[1])))
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(errUsage, "sanitize side must be start or end, got %q", as[0]))
	}
}
