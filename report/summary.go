package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/forsslund/sie/document"
)

// SummaryOptions configures the file summary.
type SummaryOptions struct {
	// CSV renders key/value pairs instead of the text summary.
	CSV bool
}

// Summary writes an overview of the parsed file: company identity, file
// metadata, fiscal period, entity counts, and unbalanced-voucher findings.
func Summary(w io.Writer, doc *document.Document, opts SummaryOptions) error {
	balances := Balances(doc)
	nonZero := 0
	for _, b := range balances {
		if b.Abs().GreaterThanOrEqual(nonZeroThreshold) {
			nonZero++
		}
	}

	period := ""
	if p, ok := doc.Period(0); ok {
		period = fmt.Sprintf("%s - %s", p.Start, p.End)
	}

	unbalanced := doc.Unbalanced()

	if opts.CSV {
		cw := csv.NewWriter(w)
		pairs := [][]string{
			{"company", doc.Company.Name},
			{"org_number", doc.Company.OrgNumber},
			{"sie_type", doc.SIEType},
			{"program", doc.Program},
			{"generated", doc.Generated.String()},
			{"currency", doc.Currency},
			{"period", period},
			{"accounts", strconv.Itoa(len(doc.Accounts))},
			{"non_zero_accounts", strconv.Itoa(nonZero)},
			{"dimensions", strconv.Itoa(len(doc.Dimensions))},
			{"vouchers", strconv.Itoa(len(doc.Vouchers))},
			{"transactions", strconv.Itoa(doc.TransactionCount())},
			{"unbalanced_vouchers", strconv.Itoa(len(unbalanced))},
		}
		for _, p := range pairs {
			if err := cw.Write(p); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	var sb strings.Builder
	write := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%-20s %s\n", label+":", value))
		}
	}

	write("Company", doc.Company.Name)
	write("Org number", doc.Company.OrgNumber)
	write("SIE type", doc.SIEType)
	write("Program", doc.Program)
	write("Generated", doc.Generated.String())
	write("Currency", doc.Currency)
	write("Period", period)
	sb.WriteByte('\n')
	write("Accounts", fmt.Sprintf("%d (%d with non-zero balance)", len(doc.Accounts), nonZero))
	write("Dimensions", strconv.Itoa(len(doc.Dimensions)))
	write("Vouchers", strconv.Itoa(len(doc.Vouchers)))
	write("Transactions", strconv.Itoa(doc.TransactionCount()))

	if len(unbalanced) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(fmt.Sprintf("%d voucher(s) do not balance:\n", len(unbalanced)))
		for _, v := range unbalanced {
			sb.WriteString(fmt.Sprintf("  %s (%s): residual %s\n",
				v.Label(), v.Date, v.Check.Residual.StringFixed(2)))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
