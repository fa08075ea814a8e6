package document

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		id   string
		want AccountType
	}{
		{"1930", TypeAsset},
		{"1510", TypeAsset},
		{"2440", TypeLiability},
		{"2610", TypeLiability},
		{"3041", TypeIncome},
		{"3740", TypeIncome},
		{"4010", TypeExpense},
		{"5010", TypeExpense},
		{"6570", TypeExpense},
		{"7010", TypeExpense},

		// The 8xxx class is mixed: financial income and expenses.
		{"8010", TypeIncome},
		{"8030", TypeIncome},
		{"8080", TypeIncome},
		{"8100", TypeIncome},
		{"8210", TypeIncome},
		{"8310", TypeIncome},
		{"8020", TypeExpense},
		{"8070", TypeExpense},
		{"8400", TypeExpense},
		{"8999", TypeExpense},

		// Outside the BAS bands.
		{"0123", TypeUnclassified},
		{"9999", TypeUnclassified},
		{"19A0", TypeUnclassified},
		{"", TypeUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.id))
		})
	}
}

func TestParseTypeCode(t *testing.T) {
	tests := []struct {
		code    string
		want    AccountType
		wantErr bool
	}{
		{code: "K", want: TypeAsset},
		{code: "S", want: TypeLiability},
		{code: "I", want: TypeIncome},
		{code: "T", want: TypeExpense},
		{code: "k", want: TypeAsset},
		{code: "t", want: TypeExpense},

		// Single digits classify through the BAS bands.
		{code: "1", want: TypeAsset},
		{code: "2", want: TypeLiability},
		{code: "3", want: TypeIncome},
		{code: "5", want: TypeExpense},

		{code: "X", wantErr: true},
		{code: "9", wantErr: true},
		{code: "", wantErr: true},
		{code: "KS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseTypeCode(tt.code)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountTypeProperties(t *testing.T) {
	tests := []struct {
		typ        AccountType
		name       string
		normal     string
		multiplier int
	}{
		{TypeAsset, "ASSET", "debit", 1},
		{TypeExpense, "EXPENSE", "debit", 1},
		{TypeLiability, "LIABILITY", "credit", -1},
		{TypeIncome, "INCOME", "credit", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.typ.String())
			assert.Equal(t, tt.normal, tt.typ.NormalBalance())
			assert.Equal(t, tt.multiplier, tt.typ.BalanceMultiplier())
		})
	}
}

func TestNewAccountClassifies(t *testing.T) {
	acc := NewAccount("1930", "Bank")
	assert.Equal(t, TypeAsset, acc.Type)
	assert.Equal(t, "Bank", acc.Name)
}
