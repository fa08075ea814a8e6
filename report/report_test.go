package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/forsslund/sie/document"
)

func testDocument(t *testing.T) *document.Document {
	t.Helper()

	doc := document.New()
	doc.SIEType = "4"
	doc.Program = "Bokio 1.2"
	doc.Currency = "SEK"
	doc.Company.Name = "Exempelbolaget AB"
	doc.Company.OrgNumber = "556677-8899"

	start, _ := document.ParseDate("20240101")
	end, _ := document.ParseDate("20241231")
	doc.Periods[0] = document.Period{Index: 0, Start: start, End: end}

	bank := document.NewAccount("1930", "Företagskonto")
	bank.SetBalance(0, document.OpeningBalance, document.Balance{Amount: decimal.RequireFromString("10000.00")})
	doc.Accounts["1930"] = bank

	sales := document.NewAccount("3041", "Försäljning")
	sales.SRU = "7410"
	doc.Accounts["3041"] = sales

	doc.Accounts["2610"] = document.NewAccount("2610", "Utgående moms")

	date, _ := document.ParseDate("20240115")
	voucher := &document.Voucher{
		Series: "A", Number: "1", Date: date, Text: "Faktura 1001",
		Transactions: []*document.Transaction{
			{Account: "1930", Amount: decimal.RequireFromString("1250.00")},
			{Account: "3041", Amount: decimal.RequireFromString("-1250.00")},
		},
		Check: document.BalanceCheck{Balanced: true, Residual: decimal.Zero},
	}
	skewed := &document.Voucher{
		Series: "B", Number: "7", Date: date, Text: "Felaktig",
		Transactions: []*document.Transaction{
			{Account: "1930", Amount: decimal.RequireFromString("100.00")},
			{Account: "3041", Amount: decimal.RequireFromString("-90.00")},
		},
		Check: document.BalanceCheck{Balanced: false, Residual: decimal.RequireFromString("10.00")},
	}
	doc.Vouchers = []*document.Voucher{voucher, skewed}

	return doc
}

func TestBalances(t *testing.T) {
	doc := testDocument(t)
	balances := Balances(doc)

	// Transactions plus the opening balance.
	assert.True(t, balances["1930"].Equal(decimal.RequireFromString("11350.00")))
	assert.True(t, balances["3041"].Equal(decimal.RequireFromString("-1340.00")))
	assert.True(t, balances["2610"].IsZero())
}

func TestAccountsTable(t *testing.T) {
	var buf bytes.Buffer
	err := Accounts(&buf, testDocument(t), AccountsOptions{})
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "1930"))
	assert.True(t, strings.Contains(out, "Företagskonto"))
	assert.True(t, strings.Contains(out, "ASSET"))
	assert.True(t, strings.Contains(out, "11350.00"))
	assert.True(t, strings.Contains(out, "7410"))
	assert.True(t, strings.Contains(out, "Total accounts: 3"))
}

func TestAccountsNonZeroOnly(t *testing.T) {
	var buf bytes.Buffer
	err := Accounts(&buf, testDocument(t), AccountsOptions{NonZeroOnly: true})
	assert.NoError(t, err)

	out := buf.String()
	assert.False(t, strings.Contains(out, "2610"))
	assert.True(t, strings.Contains(out, "Total accounts: 2"))
}

func TestAccountsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := Accounts(&buf, testDocument(t), AccountsOptions{CSV: true})
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)

	assert.Equal(t, []string{"number", "name", "type", "balance", "normal_balance", "sru_code"}, records[0])
	assert.Equal(t, 4, len(records))
	assert.Equal(t, []string{"1930", "Företagskonto", "ASSET", "11350.00", "debit", ""}, records[1])
	assert.Equal(t, []string{"3041", "Försäljning", "INCOME", "-1340.00", "credit", "7410"}, records[3])
}

func TestVouchersTable(t *testing.T) {
	var buf bytes.Buffer
	err := Vouchers(&buf, testDocument(t), VouchersOptions{})
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "A1"))
	assert.True(t, strings.Contains(out, "balanced"))
	assert.True(t, strings.Contains(out, "B7"))
	assert.True(t, strings.Contains(out, "off by 10.00"))
	assert.True(t, strings.Contains(out, "Total vouchers: 2"))
}

func TestVouchersSeriesFilter(t *testing.T) {
	var buf bytes.Buffer
	err := Vouchers(&buf, testDocument(t), VouchersOptions{Series: "B"})
	assert.NoError(t, err)

	out := buf.String()
	assert.False(t, strings.Contains(out, "A1"))
	assert.True(t, strings.Contains(out, "B7"))
	assert.True(t, strings.Contains(out, "Total vouchers: 1"))
}

func TestVouchersCSV(t *testing.T) {
	var buf bytes.Buffer
	err := Vouchers(&buf, testDocument(t), VouchersOptions{CSV: true})
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)

	assert.Equal(t, []string{"voucher", "date", "text", "transactions", "balanced", "residual"}, records[0])
	assert.Equal(t, []string{"A1", "20240115", "Faktura 1001", "2", "true", "0.00"}, records[1])
	assert.Equal(t, []string{"B7", "20240115", "Felaktig", "2", "false", "10.00"}, records[2])
}

func TestSummaryText(t *testing.T) {
	var buf bytes.Buffer
	err := Summary(&buf, testDocument(t), SummaryOptions{})
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "Exempelbolaget AB"))
	assert.True(t, strings.Contains(out, "556677-8899"))
	assert.True(t, strings.Contains(out, "20240101 - 20241231"))
	assert.True(t, strings.Contains(out, "3 (2 with non-zero balance)"))
	assert.True(t, strings.Contains(out, "1 voucher(s) do not balance:"))
	assert.True(t, strings.Contains(out, "B7"))
}

func TestSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	err := Summary(&buf, testDocument(t), SummaryOptions{CSV: true})
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)

	byKey := make(map[string]string, len(records))
	for _, r := range records {
		byKey[r[0]] = r[1]
	}

	assert.Equal(t, "Exempelbolaget AB", byKey["company"])
	assert.Equal(t, "SEK", byKey["currency"])
	assert.Equal(t, "3", byKey["accounts"])
	assert.Equal(t, "2", byKey["vouchers"])
	assert.Equal(t, "4", byKey["transactions"])
	assert.Equal(t, "1", byKey["unbalanced_vouchers"])
}
