package web

import (
	"net/http"

	"github.com/shopspring/decimal"
)

// TransactionInfo represents a single voucher transaction.
type TransactionInfo struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date,omitempty"`
	Text    string          `json:"text,omitempty"`
}

// VoucherInfo represents a voucher with its transactions.
type VoucherInfo struct {
	Series       string            `json:"series"`
	Number       string            `json:"number"`
	Date         string            `json:"date"`
	Text         string            `json:"text,omitempty"`
	Balanced     bool              `json:"balanced"`
	Residual     decimal.Decimal   `json:"residual"`
	Transactions []TransactionInfo `json:"transactions"`
}

// VouchersResponse is the JSON response structure for the vouchers endpoint.
type VouchersResponse struct {
	Vouchers []VoucherInfo `json:"vouchers"`
}

// handleGetVouchers handles GET requests to /api/vouchers.
//
// Query parameters:
//   - series: Only return vouchers from this series.
func (s *Server) handleGetVouchers(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series := r.URL.Query().Get("series")

	vouchers := make([]VoucherInfo, 0, len(s.doc.Vouchers))
	for _, v := range s.doc.Vouchers {
		if series != "" && v.Series != series {
			continue
		}

		transactions := make([]TransactionInfo, 0, len(v.Transactions))
		for _, t := range v.Transactions {
			transactions = append(transactions, TransactionInfo{
				Account: t.Account,
				Amount:  t.Amount,
				Date:    t.Date.String(),
				Text:    t.Text,
			})
		}

		vouchers = append(vouchers, VoucherInfo{
			Series:       v.Series,
			Number:       v.Number,
			Date:         v.Date.String(),
			Text:         v.Text,
			Balanced:     v.Check.Balanced,
			Residual:     v.Check.Residual,
			Transactions: transactions,
		})
	}

	writeJSONResponse(w, &VouchersResponse{Vouchers: vouchers})
}
