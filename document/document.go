// Package document declares the types that make up a parsed SIE file.
//
// A Document is the root aggregate produced by the parser package: company
// metadata, the chart of accounts, dimensions and their objects, registered
// fiscal periods, and the ledger of vouchers with their transactions. The
// parser hands back a fully resolved Document; callers treat it as
// immutable and only read from it.
package document

import (
	"golang.org/x/exp/slices"
)

// Document is the root of a parsed SIE file.
type Document struct {
	// File-level metadata records.
	Flag       string // #FLAGGA
	Format     string // #FORMAT
	SIEType    string // #SIETYP
	Program    string // #PROGRAM
	Generated  Date   // #GEN date
	GeneratedBy string // #GEN signature (optional)
	FileNumber string // #FNR
	Currency   string // #VALUTA
	ChartType  string // #KPTYP

	Company CompanyInfo

	Accounts   map[string]*Account
	Dimensions map[string]*Dimension
	Objects    map[ObjectKey]*DimensionObject
	Periods    map[int]Period
	Vouchers   []*Voucher
}

// CompanyInfo holds the company identity records of the file.
type CompanyInfo struct {
	Name      string   // #FNAMN
	OrgNumber string   // #ORGNR
	Address   []string // #ADRESS quoted fields, in file order
	TaxYear   string   // #TAXAR
}

// Period is a fiscal year registered with #RAR. Index 0 is the current
// year, negative indices are prior years.
type Period struct {
	Index int
	Start Date
	End   Date
}

// Dimension is an analysis axis such as a cost center or project.
type Dimension struct {
	ID   string
	Name string
}

// DimensionObject is a discrete value of a dimension.
type DimensionObject struct {
	Dimension string
	ID        string
	Name      string
}

// ObjectKey uniquely identifies a DimensionObject within a Document.
type ObjectKey struct {
	Dimension string
	Object    string
}

// New creates an empty Document with all containers initialized.
func New() *Document {
	return &Document{
		Accounts:   make(map[string]*Account),
		Dimensions: make(map[string]*Dimension),
		Objects:    make(map[ObjectKey]*DimensionObject),
		Periods:    make(map[int]Period),
	}
}

// Account returns the account with the given identifier.
func (d *Document) Account(id string) (*Account, bool) {
	acc, ok := d.Accounts[id]
	return acc, ok
}

// AccountIDs returns all account identifiers in ascending order.
func (d *Document) AccountIDs() []string {
	ids := make([]string, 0, len(d.Accounts))
	for id := range d.Accounts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// DimensionIDs returns all dimension identifiers in ascending order.
func (d *Document) DimensionIDs() []string {
	ids := make([]string, 0, len(d.Dimensions))
	for id := range d.Dimensions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Unbalanced returns the vouchers whose transactions did not net to zero,
// in file order. An empty result means every voucher balanced.
func (d *Document) Unbalanced() []*Voucher {
	var out []*Voucher
	for _, v := range d.Vouchers {
		if !v.Check.Balanced {
			out = append(out, v)
		}
	}
	return out
}

// TransactionCount returns the total number of transactions across all
// vouchers.
func (d *Document) TransactionCount() int {
	n := 0
	for _, v := range d.Vouchers {
		n += len(v.Transactions)
	}
	return n
}

// Period returns the fiscal period registered for the given index.
func (d *Document) Period(index int) (Period, bool) {
	p, ok := d.Periods[index]
	return p, ok
}
