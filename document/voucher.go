package document

import (
	"github.com/shopspring/decimal"
)

// Voucher is a dated group of transactions (a journal entry). It is
// mutable only while the parser has its scope open; once the closing
// delimiter is processed it is finalized, balance-checked, and appended to
// the Document.
type Voucher struct {
	Series       string
	Number       string
	Date         Date
	Text         string
	RegisteredAt Date // optional trailing #VER field

	Transactions []*Transaction

	// Check is the balance validation outcome computed when the voucher
	// scope closed.
	Check BalanceCheck
}

// Label returns the series-qualified voucher identifier, e.g. "A1".
func (v *Voucher) Label() string {
	return v.Series + v.Number
}

// Sum returns the net of all transaction amounts in the voucher.
func (v *Voucher) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range v.Transactions {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// BalanceCheck records whether a voucher's transactions net to zero within
// tolerance, and the residual that was computed.
type BalanceCheck struct {
	Balanced bool
	Residual decimal.Decimal
}

// Transaction is one debit/credit line inside a voucher.
type Transaction struct {
	// VoucherID is a back-reference to the owning voucher's label; the
	// voucher owns the transaction, not the other way around.
	VoucherID string

	Account  string
	Objects  []ObjectRef
	Amount   decimal.Decimal
	Date     Date // defaults to the voucher date
	Text     string
	Quantity decimal.Decimal
}

// ObjectRef points a transaction at a dimension object.
type ObjectRef struct {
	Dimension string
	Object    string
}
