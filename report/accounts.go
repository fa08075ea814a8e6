package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/forsslund/sie/document"
)

// AccountsOptions configures the account listing.
type AccountsOptions struct {
	// NonZeroOnly skips accounts whose computed balance is below one öre.
	NonZeroOnly bool
	// CSV renders machine-readable output instead of an aligned table.
	CSV bool
}

// Accounts writes a listing of the chart of accounts with computed
// balances, sorted by account number.
func Accounts(w io.Writer, doc *document.Document, opts AccountsOptions) error {
	balances := Balances(doc)

	type row struct {
		acc     *document.Account
		balance string
	}
	var rows []row

	for _, id := range doc.AccountIDs() {
		acc := doc.Accounts[id]
		balance := balances[id]
		if opts.NonZeroOnly && balance.Abs().LessThan(nonZeroThreshold) {
			continue
		}
		rows = append(rows, row{acc: acc, balance: balance.StringFixed(2)})
	}

	if opts.CSV {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"number", "name", "type", "balance", "normal_balance", "sru_code"}); err != nil {
			return err
		}
		for _, r := range rows {
			record := []string{
				r.acc.ID, r.acc.Name, r.acc.Type.String(),
				r.balance, r.acc.Type.NormalBalance(), r.acc.SRU,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	var sb strings.Builder
	tbl := newTable("Account", "Name", "Type", "Balance", "Normal", "SRU").alignRight(3)
	for _, r := range rows {
		tbl.addRow(r.acc.ID, r.acc.Name, r.acc.Type.String(), r.balance, r.acc.Type.NormalBalance(), r.acc.SRU)
	}
	tbl.render(&sb)
	sb.WriteString(fmt.Sprintf("\nTotal accounts: %d\n", len(rows)))

	_, err := io.WriteString(w, sb.String())
	return err
}
