package parser

import (
	"github.com/shopspring/decimal"

	"github.com/forsslund/sie/document"
)

// balanceTolerance absorbs rounding in stored decimal amounts. SIE amounts
// carry öre precision, so anything within half an öre nets to zero.
var balanceTolerance = decimal.NewFromFloat(0.005)

// checkBalance sums the signed amounts of a voucher's transactions and
// compares against zero within tolerance. The outcome is recorded on the
// voucher rather than failing the parse: an unbalanced voucher is a
// data-quality finding, not a structural error.
func checkBalance(v *document.Voucher) document.BalanceCheck {
	residual := v.Sum()
	return document.BalanceCheck{
		Balanced: residual.Abs().LessThanOrEqual(balanceTolerance),
		Residual: residual,
	}
}
