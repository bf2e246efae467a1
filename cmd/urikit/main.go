// Command urikit inspects and rewrites URI-like strings from the command line.
//
// Usage:
//
//	urikit get host https://test.com:80/x
//	urikit set host some/path test.com
//	urikit param add https://test.com some v1 v2
//	urikit join https://test.com/ '\some\' path
//	urikit apply --script steps.yaml https://test.com
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghettovoice/urikit/internal/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Def.Error("command failed", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}
