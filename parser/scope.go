package parser

import (
	"fmt"

	"github.com/forsslund/sie/document"
)

// scopeState tracks where the scan is relative to a voucher block.
type scopeState int

const (
	scopeIdle       scopeState = iota // outside any voucher
	scopeHeaderOpen                   // after #VER, before '{'
	scopeBodyOpen                     // after '{', accepting #TRANS
)

func (s scopeState) String() string {
	switch s {
	case scopeHeaderOpen:
		return "voucher header"
	case scopeBodyOpen:
		return "voucher body"
	default:
		return "idle"
	}
}

// voucherScope is the state machine that attributes transaction lines to
// the correct voucher and rejects stray ones. It starts in scopeIdle and
// must be back in scopeIdle at end of input.
type voucherScope struct {
	state   scopeState
	current *document.Voucher
}

// beginVoucher handles #VER. Only legal while idle; a voucher header
// inside an unfinished voucher means the previous block never closed.
func (s *voucherScope) beginVoucher(v *document.Voucher) error {
	if s.state != scopeIdle {
		return fmt.Errorf("voucher header while inside %s of voucher %s", s.state, s.current.Label())
	}
	s.state = scopeHeaderOpen
	s.current = v
	return nil
}

// openBody handles a bare '{'.
func (s *voucherScope) openBody() error {
	if s.state != scopeHeaderOpen {
		return fmt.Errorf("unexpected '{' while %s", s.state)
	}
	s.state = scopeBodyOpen
	return nil
}

// appendTransaction handles #TRANS. Rejecting transactions outside an open
// body is the safeguard against misattributing trailing transaction lines
// to the wrong voucher or to none.
func (s *voucherScope) appendTransaction(t *document.Transaction) error {
	if s.state != scopeBodyOpen {
		return fmt.Errorf("transaction outside voucher body (state: %s)", s.state)
	}
	t.VoucherID = s.current.Label()
	s.current.Transactions = append(s.current.Transactions, t)
	return nil
}

// closeBody handles a bare '}' and yields the finalized voucher.
func (s *voucherScope) closeBody() (*document.Voucher, error) {
	if s.state != scopeBodyOpen {
		return nil, fmt.Errorf("unexpected '}' while %s", s.state)
	}
	v := s.current
	s.state = scopeIdle
	s.current = nil
	return v, nil
}

// atEnd verifies the machine returned to idle; an open scope at end of
// input means the document is truncated.
func (s *voucherScope) atEnd() error {
	if s.state != scopeIdle {
		return fmt.Errorf("unclosed voucher %s at end of input", s.current.Label())
	}
	return nil
}
