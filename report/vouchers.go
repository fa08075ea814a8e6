package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/forsslund/sie/document"
)

// VouchersOptions configures the voucher listing.
type VouchersOptions struct {
	// Series restricts the listing to one voucher series.
	Series string
	// CSV renders machine-readable output instead of an aligned table.
	CSV bool
}

// Vouchers writes a listing of all vouchers with their balance-check
// outcome, in file order.
func Vouchers(w io.Writer, doc *document.Document, opts VouchersOptions) error {
	var vouchers []*document.Voucher
	for _, v := range doc.Vouchers {
		if opts.Series != "" && v.Series != opts.Series {
			continue
		}
		vouchers = append(vouchers, v)
	}

	if opts.CSV {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"voucher", "date", "text", "transactions", "balanced", "residual"}); err != nil {
			return err
		}
		for _, v := range vouchers {
			record := []string{
				v.Label(), v.Date.String(), v.Text,
				strconv.Itoa(len(v.Transactions)),
				strconv.FormatBool(v.Check.Balanced),
				v.Check.Residual.StringFixed(2),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	var sb strings.Builder
	tbl := newTable("Voucher", "Date", "Text", "Trans", "Check").alignRight(3)
	for _, v := range vouchers {
		check := "balanced"
		if !v.Check.Balanced {
			check = fmt.Sprintf("off by %s", v.Check.Residual.StringFixed(2))
		}
		tbl.addRow(v.Label(), v.Date.String(), v.Text, strconv.Itoa(len(v.Transactions)), check)
	}
	tbl.render(&sb)
	sb.WriteString(fmt.Sprintf("\nTotal vouchers: %d\n", len(vouchers)))

	_, err := io.WriteString(w, sb.String())
	return err
}
