package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/forsslund/sie/report"
)

// AccountInfo represents basic information about an account.
type AccountInfo struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	SRU     string          `json:"sru,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountsResponse is the JSON response structure for the accounts endpoint.
type AccountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
}

// handleGetAccounts handles GET requests to /api/accounts.
// Returns all accounts sorted by account number.
func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balances := report.Balances(s.doc)

	accounts := make([]AccountInfo, 0, len(s.doc.Accounts))
	for _, id := range s.doc.AccountIDs() {
		acc := s.doc.Accounts[id]
		accounts = append(accounts, AccountInfo{
			ID:      acc.ID,
			Name:    acc.Name,
			Type:    acc.Type.String(),
			SRU:     acc.SRU,
			Balance: balances[id],
		})
	}

	writeJSONResponse(w, &AccountsResponse{Accounts: accounts})
}
