package document

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account per the BAS chart of accounts.
type AccountType int

const (
	TypeUnclassified AccountType = iota
	TypeAsset
	TypeLiability
	TypeIncome
	TypeExpense
)

// String returns the classification name.
func (t AccountType) String() string {
	switch t {
	case TypeAsset:
		return "ASSET"
	case TypeLiability:
		return "LIABILITY"
	case TypeIncome:
		return "INCOME"
	case TypeExpense:
		return "EXPENSE"
	default:
		return "UNCLASSIFIED"
	}
}

// NormalBalance returns the side on which this account type normally
// carries its balance.
func (t AccountType) NormalBalance() string {
	if t == TypeLiability || t == TypeIncome {
		return "credit"
	}
	return "debit"
}

// BalanceMultiplier returns 1 for debit-normal accounts and -1 for
// credit-normal accounts.
func (t AccountType) BalanceMultiplier() int {
	if t == TypeLiability || t == TypeIncome {
		return -1
	}
	return 1
}

// BalanceKind distinguishes the three balance record flavors.
type BalanceKind int

const (
	OpeningBalance BalanceKind = iota // #IB
	ClosingBalance                    // #UB
	ResultBalance                     // #RES
)

// String returns the SIE record tag for the balance kind.
func (k BalanceKind) String() string {
	switch k {
	case OpeningBalance:
		return "#IB"
	case ClosingBalance:
		return "#UB"
	default:
		return "#RES"
	}
}

// BalanceKey identifies one balance slot on an account: a period index
// combined with a balance kind. Last write for a given key wins.
type BalanceKey struct {
	Period int
	Kind   BalanceKind
}

// Balance holds the amount (and optional quantity) recorded for a
// BalanceKey.
type Balance struct {
	Amount   decimal.Decimal
	Quantity decimal.Decimal
}

// Account is one entry in the chart of accounts. Identifiers are unique
// within a Document. The Type starts as the BAS default derived from the
// identifier and may be overridden by a deferred #KTYP record; SRU is set
// only by a deferred #SRU record.
type Account struct {
	ID       string
	Name     string
	Type     AccountType
	SRU      string
	Balances map[BalanceKey]Balance
}

// NewAccount creates an account with its default BAS classification and an
// empty balance map.
func NewAccount(id, name string) *Account {
	return &Account{
		ID:       id,
		Name:     name,
		Type:     Classify(id),
		Balances: make(map[BalanceKey]Balance),
	}
}

// Balance returns the recorded balance for the given period and kind.
func (a *Account) Balance(period int, kind BalanceKind) (Balance, bool) {
	b, ok := a.Balances[BalanceKey{Period: period, Kind: kind}]
	return b, ok
}

// SetBalance records a balance, replacing any earlier record for the same
// period and kind.
func (a *Account) SetBalance(period int, kind BalanceKind, b Balance) {
	a.Balances[BalanceKey{Period: period, Kind: kind}] = b
}
