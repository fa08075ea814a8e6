package document

import (
	"fmt"
	"strings"
)

// BAS classification of accounts by their leading digit.
//
// The BAS chart of accounts assigns meaning to the first digit of an
// account number: 1xxx assets, 2xxx equity and liabilities, 3xxx operating
// income, 4xxx-7xxx costs, 8xxx financial income and expenses. The 8xxx
// range is mixed and is resolved through a fixed prefix table below.

// financialBands resolves the mixed 8xxx range. Longer prefixes are listed
// first and win over shorter ones.
var financialBands = []struct {
	prefix string
	typ    AccountType
}{
	{"801", TypeIncome},  // dividends from group companies
	{"802", TypeExpense}, // results from sale of group shares
	{"803", TypeIncome},  // result shares from partnerships
	{"807", TypeExpense}, // write-downs
	{"808", TypeIncome},  // reversals of write-downs
	{"81", TypeIncome},   // results from associated companies
	{"82", TypeIncome},   // results from other securities
	{"83", TypeIncome},   // other interest income
	{"84", TypeExpense},  // interest expenses
	{"85", TypeExpense},
	{"86", TypeExpense},
	{"87", TypeExpense},
	{"88", TypeExpense}, // year-end appropriations
	{"89", TypeExpense}, // taxes and year result
}

// Classify returns the default BAS classification for an account
// identifier. Non-numeric identifiers and identifiers outside the 1xxx-8xxx
// bands classify as TypeUnclassified; the result is only a default and a
// deferred #KTYP override always wins.
func Classify(id string) AccountType {
	if !isDigits(id) {
		return TypeUnclassified
	}

	switch id[0] {
	case '1':
		return TypeAsset
	case '2':
		return TypeLiability
	case '3':
		return TypeIncome
	case '4', '5', '6', '7':
		return TypeExpense
	case '8':
		return classifyFinancial(id)
	default:
		return TypeUnclassified
	}
}

// classifyFinancial resolves an 8xxx account through the prefix table.
// Unlisted 8xxx prefixes default to expense; most of the range is
// expense-related.
func classifyFinancial(id string) AccountType {
	for _, band := range financialBands {
		if strings.HasPrefix(id, band.prefix) {
			return band.typ
		}
	}
	return TypeExpense
}

// ParseTypeCode converts a #KTYP type code into an AccountType. Letter
// codes follow the SIE convention (K, S, I, T); a single digit is
// interpreted through the BAS leading-digit banding, so "2" yields
// TypeLiability.
func ParseTypeCode(code string) (AccountType, error) {
	switch strings.ToUpper(code) {
	case "K":
		return TypeAsset, nil
	case "S":
		return TypeLiability, nil
	case "I":
		return TypeIncome, nil
	case "T":
		return TypeExpense, nil
	}

	if len(code) == 1 && code[0] >= '1' && code[0] <= '8' {
		return Classify(code), nil
	}

	return TypeUnclassified, fmt.Errorf("unknown account type code %q", code)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
