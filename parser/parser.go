// Package parser implements the SIE parsing-and-resolution engine.
//
// SIE (Standard Import Export) is a line-oriented text format for moving
// accounting data between Swedish accounting systems. The parser performs
// a single streaming pass over the decoded input: each line is tokenized,
// dispatched to a record handler, and immediately applied to an in-progress
// document. Voucher blocks are tracked by a small scope state machine so
// transaction lines are attributed to the correct voucher. #KTYP and #SRU
// records are queued and replayed in a deferred resolution pass after the
// scan, which makes account classification and tax-code overrides
// independent of declaration order. Each voucher is balance-checked when
// its scope closes; an unbalanced voucher is recorded on the document
// rather than failing the parse, unless strict mode is enabled.
//
// Example usage:
//
//	doc, err := parser.Parse(ctx, data, parser.WithFilename("year.se"))
//	if err != nil {
//	    var perr *parser.ParseError
//	    if errors.As(err, &perr) {
//	        log.Fatalf("bad input at line %d: %s", perr.Line, perr.Message)
//	    }
//	    log.Fatal(err)
//	}
//	for _, v := range doc.Unbalanced() {
//	    fmt.Printf("voucher %s off by %s\n", v.Label(), v.Check.Residual)
//	}
package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/forsslund/sie/document"
	"github.com/forsslund/sie/telemetry"
)

// Parser holds the configuration of one parse invocation.
type Parser struct {
	filename string
	strict   bool
}

// Option configures a parse invocation.
type Option func(*Parser)

// WithFilename sets the filename used in error messages.
func WithFilename(name string) Option {
	return func(p *Parser) {
		p.filename = name
	}
}

// WithStrictBalance makes an unbalanced voucher a hard failure instead of
// a recorded finding.
func WithStrictBalance() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// Parse scans the decoded SIE input and returns the finalized document.
// Structural problems return a *ParseError, semantic ones a
// *ValidationError; in both cases no document is returned. The context is
// checked between lines, so cancellation takes effect at line granularity.
func Parse(ctx context.Context, data []byte, opts ...Option) (*document.Document, error) {
	return ParseString(ctx, string(data), opts...)
}

// ParseString is Parse for string input.
func ParseString(ctx context.Context, src string, opts ...Option) (*document.Document, error) {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	// A UTF-8 BOM may survive transcoding from the source encoding.
	src = strings.TrimPrefix(src, "\uFEFF")
	lines := strings.Split(src, "\n")

	collector := telemetry.FromContext(ctx)
	scanTimer := collector.Start(fmt.Sprintf("parse.scan (%d lines)", len(lines)))

	pc := newParseContext()

	for i, raw := range lines {
		select {
		case <-ctx.Done():
			scanTimer.End()
			return nil, ctx.Err()
		default:
		}

		ln, err := ScanLine(raw, i+1)
		if err != nil {
			scanTimer.End()
			return nil, p.wrap(err)
		}
		if ln.Empty() {
			continue
		}

		if err := p.dispatch(pc, ln); err != nil {
			scanTimer.End()
			return nil, p.wrap(err)
		}
	}

	if err := pc.scope.atEnd(); err != nil {
		scanTimer.End()
		return nil, p.wrap(newParseError(len(lines), "%v", err))
	}
	scanTimer.End()

	resolveTimer := collector.Start(fmt.Sprintf("parse.resolve (%d overrides)", len(pc.overrides)))
	err := pc.resolve()
	resolveTimer.End()
	if err != nil {
		return nil, err
	}

	if err := pc.verifyTransactionAccounts(); err != nil {
		return nil, err
	}

	return pc.doc, nil
}

// dispatch routes one tokenized line to its record handler. Unknown tags
// fall through to the default arm and are skipped, so extension records do
// not break the parse.
func (p *Parser) dispatch(pc *parseContext, ln Line) error {
	switch ln.Tag {
	case "#FLAGGA":
		pc.doc.Flag = ln.Text(0)
	case "#FORMAT":
		pc.doc.Format = ln.Text(0)
	case "#SIETYP":
		pc.doc.SIEType = ln.Text(0)
	case "#PROGRAM":
		return handleProgram(pc, ln)
	case "#GEN":
		return handleGen(pc, ln)
	case "#FNR":
		pc.doc.FileNumber = ln.Text(0)
	case "#VALUTA":
		pc.doc.Currency = ln.Text(0)
	case "#TAXAR":
		pc.doc.Company.TaxYear = ln.Text(0)
	case "#KPTYP":
		pc.doc.ChartType = ln.Text(0)
	case "#FNAMN":
		pc.doc.Company.Name = ln.Text(0)
	case "#ORGNR":
		pc.doc.Company.OrgNumber = ln.Text(0)
	case "#ADRESS":
		return handleAddress(pc, ln)
	case "#KONTO":
		return handleKonto(pc, ln)
	case "#KTYP":
		return handleKtyp(pc, ln)
	case "#SRU":
		return handleSru(pc, ln)
	case "#RAR":
		return handleRar(pc, ln)
	case "#DIM":
		return handleDim(pc, ln)
	case "#OBJEKT":
		return handleObjekt(pc, ln)
	case "#IB":
		return handleBalance(pc, ln, document.OpeningBalance)
	case "#UB":
		return handleBalance(pc, ln, document.ClosingBalance)
	case "#RES":
		return handleBalance(pc, ln, document.ResultBalance)
	case "#VER":
		return handleVer(pc, ln)
	case "{":
		if err := pc.scope.openBody(); err != nil {
			return newParseError(ln.Number, "%v", err)
		}
	case "#TRANS":
		return handleTrans(pc, ln)
	case "}":
		return p.closeVoucher(pc, ln)
	default:
		// Unrecognized tags are skipped for forward compatibility.
	}
	return nil
}

// closeVoucher finalizes the current voucher: it leaves the scope, gets
// balance-checked, and is appended to the document.
func (p *Parser) closeVoucher(pc *parseContext, ln Line) error {
	v, err := pc.scope.closeBody()
	if err != nil {
		return newParseError(ln.Number, "%v", err)
	}

	v.Check = checkBalance(v)
	if p.strict && !v.Check.Balanced {
		return newValidationError(v.Label(),
			"voucher %s does not balance: residual %s", v.Label(), v.Check.Residual)
	}

	pc.doc.Vouchers = append(pc.doc.Vouchers, v)
	return nil
}

// wrap stamps the configured filename onto parse errors.
func (p *Parser) wrap(err error) error {
	if perr, ok := err.(*ParseError); ok && p.filename != "" {
		perr.Filename = p.filename
	}
	return err
}
