package cli

import (
	"github.com/forsslund/sie/loader"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations."`
	Strict    bool   `help:"Treat unbalanced vouchers as errors."`
	Encoding  string `help:"File encoding of the input." enum:"cp437,utf8" default:"cp437"`
}

// newLoader builds a loader configured from the global flags.
func (g *Globals) newLoader() *loader.Loader {
	opts := []loader.Option{loader.WithEncoding(loader.Encoding(g.Encoding))}
	if g.Strict {
		opts = append(opts, loader.WithStrictBalance())
	}
	return loader.New(opts...)
}

type Commands struct {
	Globals

	Check    CheckCmd    `cmd:"" help:"Parse and check an SIE file."`
	Accounts AccountsCmd `cmd:"" help:"List accounts with their classification and balance."`
	Vouchers VouchersCmd `cmd:"" help:"List vouchers with their balance status."`
	Summary  SummaryCmd  `cmd:"" help:"Show a summary of an SIE file."`
	Doctor   DoctorCmd   `cmd:"" help:"Doctor utilities for debugging SIE files."`
	Web      WebCmd      `cmd:"" help:"Start a web server exposing a parsed SIE file."`
}
