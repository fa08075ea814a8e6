package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/forsslund/sie/loader"
	"github.com/forsslund/sie/telemetry"
	"github.com/forsslund/sie/web"
)

type WebCmd struct {
	File  string `help:"SIE file to serve." arg:"" type:"existingfile"`
	Port  int    `help:"Port to listen on." default:"8080"`
	Watch bool   `help:"Reload the file when it changes on disk." short:"w" default:"true" negatable:""`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	sieFile, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(sieFile); err != nil {
		return fmt.Errorf("failed to access file: %w", err)
	}

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	ldr := loader.New(loader.WithEncoding(loader.Encoding(globals.Encoding)))

	server := web.NewWithVersion(cmd.Port, sieFile, ldr, version, commitSHA)
	server.WatchEnabled = cmd.Watch

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving file: %s", pathStyle.Render(sieFile))

	return server.Start(runCtx)
}
