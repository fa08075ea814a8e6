// Package report renders read-only views of a parsed SIE document:
// an account listing, a voucher listing, and a file summary. Each view has
// an aligned-text form for terminals and a CSV form for machine
// consumption. Renderers only read from the document.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/forsslund/sie/document"
)

// nonZeroThreshold is the smallest balance magnitude treated as non-zero,
// one öre.
var nonZeroThreshold = decimal.NewFromFloat(0.01)

// Balances computes the working balance per account: the sum of all
// transaction amounts plus the current-year opening balance.
func Balances(doc *document.Document) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(doc.Accounts))

	for _, v := range doc.Vouchers {
		for _, t := range v.Transactions {
			balances[t.Account] = balances[t.Account].Add(t.Amount)
		}
	}

	for id, acc := range doc.Accounts {
		if opening, ok := acc.Balance(0, document.OpeningBalance); ok {
			balances[id] = balances[id].Add(opening.Amount)
		}
	}

	return balances
}

// table accumulates rows and renders them with columns padded to their
// widest cell. Account and voucher names may contain multi-byte runes, so
// widths are measured with runewidth rather than len.
type table struct {
	header []string
	rows   [][]string
	// rightAlign marks columns rendered flush right (amounts).
	rightAlign map[int]bool
}

func newTable(header ...string) *table {
	return &table{header: header, rightAlign: make(map[int]bool)}
}

func (t *table) alignRight(cols ...int) *table {
	for _, c := range cols {
		t.rightAlign[c] = true
	}
	return t
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(sb *strings.Builder) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			if t.rightAlign[i] {
				sb.WriteString(runewidth.FillLeft(cell, widths[i]))
			} else if i == len(cells)-1 {
				sb.WriteString(cell)
			} else {
				sb.WriteString(runewidth.FillRight(cell, widths[i]))
			}
		}
		sb.WriteByte('\n')
	}

	writeRow(t.header)

	total := 0
	for _, w := range widths {
		total += w
	}
	sb.WriteString(strings.Repeat("-", total+2*(len(widths)-1)))
	sb.WriteByte('\n')

	for _, row := range t.rows {
		writeRow(row)
	}
}
