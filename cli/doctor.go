package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"golang.org/x/text/encoding/charmap"

	"github.com/forsslund/sie/parser"
)

// DoctorCmd provides doctor utilities for debugging SIE files.
type DoctorCmd struct {
	Lex  LexCmd  `cmd:"" help:"Show scanned fields from an SIE file."`
	Dump DumpCmd `cmd:"" help:"Dump the parsed document structure."`
}

// LexCmd shows the scanned fields of every line in an SIE file.
type LexCmd struct {
	File FileOrStdin `help:"SIE input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	raw, err := cmd.File.ReadContents()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	source := string(raw)
	if globals.Encoding == "cp437" {
		decoded, err := charmap.CodePage437.NewDecoder().Bytes(raw)
		if err != nil {
			return fmt.Errorf("failed to decode file: %w", err)
		}
		source = string(decoded)
	}

	for i, rawLine := range strings.Split(source, "\n") {
		ln, err := parser.ScanLine(rawLine, i+1)
		if err != nil {
			return fmt.Errorf("failed to scan line %d: %w", i+1, err)
		}
		if ln.Empty() {
			continue
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "%-8s %d    ", ln.Tag, ln.Number)
		for j, f := range ln.Fields {
			if j > 0 {
				_, _ = fmt.Fprint(ctx.Stdout, " ")
			}
			switch f.Kind {
			case parser.FieldOpenBrace:
				_, _ = fmt.Fprint(ctx.Stdout, "{")
			case parser.FieldCloseBrace:
				_, _ = fmt.Fprint(ctx.Stdout, "}")
			default:
				_, _ = fmt.Fprintf(ctx.Stdout, "%q", f.Text)
			}
		}
		_, _ = fmt.Fprintln(ctx.Stdout)
	}

	return nil
}

// DumpCmd dumps the parsed document structure for inspection.
type DumpCmd struct {
	File FileOrStdin `help:"SIE input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the dump command.
func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	raw, err := cmd.File.ReadContents()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := globals.newLoader().LoadBytes(context.Background(), cmd.File.Filename, raw)
	if err != nil {
		renderer := NewErrorRenderer(raw, globals.Encoding)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		return NewCommandError(1)
	}

	repr.New(ctx.Stdout, repr.Indent("  ")).Println(doc)

	return nil
}
