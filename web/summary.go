package web

import (
	"net/http"
)

// CompanyResponse is the JSON response structure for the company endpoint.
type CompanyResponse struct {
	Name      string   `json:"name"`
	OrgNumber string   `json:"orgNumber,omitempty"`
	Address   []string `json:"address,omitempty"`
	TaxYear   string   `json:"taxYear,omitempty"`
	Currency  string   `json:"currency,omitempty"`
}

// handleGetCompany handles GET requests to /api/company.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSONResponse(w, &CompanyResponse{
		Name:      s.doc.Company.Name,
		OrgNumber: s.doc.Company.OrgNumber,
		Address:   s.doc.Company.Address,
		TaxYear:   s.doc.Company.TaxYear,
		Currency:  s.doc.Currency,
	})
}

// SummaryResponse is the JSON response structure for the summary endpoint.
type SummaryResponse struct {
	Company      string   `json:"company"`
	SIEType      string   `json:"sieType,omitempty"`
	Program      string   `json:"program,omitempty"`
	Generated    string   `json:"generated,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	PeriodStart  string   `json:"periodStart,omitempty"`
	PeriodEnd    string   `json:"periodEnd,omitempty"`
	Accounts     int      `json:"accounts"`
	Dimensions   int      `json:"dimensions"`
	Vouchers     int      `json:"vouchers"`
	Transactions int      `json:"transactions"`
	Unbalanced   []string `json:"unbalanced,omitempty"`
	Version      string   `json:"version,omitempty"`
	CommitSHA    string   `json:"commitSha,omitempty"`
}

// handleGetSummary handles GET requests to /api/summary.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := &SummaryResponse{
		Company:      s.doc.Company.Name,
		SIEType:      s.doc.SIEType,
		Program:      s.doc.Program,
		Generated:    s.doc.Generated.String(),
		Currency:     s.doc.Currency,
		Accounts:     len(s.doc.Accounts),
		Dimensions:   len(s.doc.Dimensions),
		Vouchers:     len(s.doc.Vouchers),
		Transactions: s.doc.TransactionCount(),
		Version:      s.Version,
		CommitSHA:    s.CommitSHA,
	}

	if p, ok := s.doc.Period(0); ok {
		resp.PeriodStart = p.Start.String()
		resp.PeriodEnd = p.End.String()
	}

	for _, v := range s.doc.Unbalanced() {
		resp.Unbalanced = append(resp.Unbalanced, v.Label())
	}

	writeJSONResponse(w, resp)
}
