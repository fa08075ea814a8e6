package cli

import (
	"context"
	stdErrors "errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/forsslund/sie/parser"
	"github.com/forsslund/sie/telemetry"
)

type CheckCmd struct {
	File FileOrStdin `help:"SIE input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				checkTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))

		defer reportTelemetry()
	}

	raw, err := cmd.File.ReadContents()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ldr := globals.newLoader()
	doc, err := ldr.LoadBytes(runCtx, cmd.File.Filename, raw)
	if err != nil {
		renderer := NewErrorRenderer(raw, globals.Encoding)
		formatted := renderer.Render(err)
		_, _ = fmt.Fprintln(ctx.Stderr, formatted)

		_, _ = fmt.Fprintln(ctx.Stderr)

		var parseErr *parser.ParseError
		if stdErrors.As(err, &parseErr) {
			printError(ctx.Stderr, "parse error")
		} else {
			printError(ctx.Stderr, "validation error")
		}

		reportTelemetry()
		return NewCommandError(1)
	}

	unbalanced := doc.Unbalanced()
	if len(unbalanced) > 0 {
		for _, v := range unbalanced {
			printInfof(ctx.Stderr, "voucher %s is off by %s", v.Label(), v.Check.Residual.String())
		}

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d unbalanced voucher(s) found", len(unbalanced)))

		reportTelemetry()
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Check passed: %d account(s), %d voucher(s), %d transaction(s)",
		len(doc.Accounts), len(doc.Vouchers), doc.TransactionCount()))

	return nil
}
