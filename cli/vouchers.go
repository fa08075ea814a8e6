package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/forsslund/sie/report"
	"github.com/forsslund/sie/telemetry"
)

type VouchersCmd struct {
	File   FileOrStdin `help:"SIE input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Series string      `help:"Only show vouchers from this series."`
	CSV    bool        `help:"Output as CSV instead of a table." name:"csv"`
	Output string      `help:"Write the report to a file instead of stdout." short:"o" type:"path"`
}

func (cmd *VouchersCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		timer := collector.Start(fmt.Sprintf("vouchers %s", filepath.Base(cmd.File.Filename)))
		defer func() {
			timer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	raw, err := cmd.File.ReadContents()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := globals.newLoader().LoadBytes(runCtx, cmd.File.Filename, raw)
	if err != nil {
		renderer := NewErrorRenderer(raw, globals.Encoding)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		return NewCommandError(1)
	}

	w, err := outputWriter(ctx, cmd.Output)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if err := report.Vouchers(w, doc, report.VouchersOptions{
		Series: cmd.Series,
		CSV:    cmd.CSV,
	}); err != nil {
		return err
	}

	if cmd.Output != "" {
		printSuccess(ctx.Stdout, fmt.Sprintf("Report written to %s", pathStyle.Render(cmd.Output)))
	}

	return nil
}
