package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearMonthString(t *testing.T) {
	assert.Equal(t, "2024-03", YearMonth{Year: 2024, Month: time.March}.String())
	assert.Equal(t, "0999-12", YearMonth{Year: 999, Month: time.December}.String())
}

func TestYearMonthBefore(t *testing.T) {
	tests := []struct {
		a, b YearMonth
		want bool
	}{
		{YearMonth{2024, time.January}, YearMonth{2024, time.February}, true},
		{YearMonth{2023, time.December}, YearMonth{2024, time.January}, true},
		{YearMonth{2024, time.March}, YearMonth{2024, time.March}, false},
		{YearMonth{2025, time.January}, YearMonth{2024, time.December}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Before(tt.b), "%s before %s", tt.a, tt.b)
	}
}

func TestParseYearMonth(t *testing.T) {
	got, err := ParseYearMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.March}, got)

	for _, bad := range []string{"", "2024", "2024-13", "x-01", "2024-y"} {
		_, err := ParseYearMonth(bad)
		assert.Error(t, err, "ParseYearMonth(%q)", bad)
	}
}

func TestTransactionDated(t *testing.T) {
	assert.False(t, Transaction{}.Dated())

	txn := Transaction{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}
	assert.True(t, txn.Dated())
	assert.Equal(t, "2024-03", txn.Month().String())

	// Year one collides with the zero time and reads as undated.
	assert.False(t, Transaction{Date: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)}.Dated())
	assert.True(t, Transaction{Date: time.Date(1, 1, 2, 0, 0, 0, 0, time.UTC)}.Dated())
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryRent.Valid())
	assert.True(t, CategoryOther.Valid())
	assert.False(t, Category("groceries").Valid())
}

func TestDeclaredBudget(t *testing.T) {
	d := DeclaredBudget{
		Income:        decimal.NewFromInt(12000),
		PartnerIncome: decimal.NewFromInt(8000),
		OtherIncome:   decimal.NewFromInt(500),
		Expenses:      decimal.NewFromInt(9000),
		LoanRepayment: decimal.NewFromInt(2500),
		Rent:          decimal.NewFromInt(5000),
	}
	assert.Equal(t, "20500", d.TotalIncome().String())
	assert.Equal(t, "16500", d.TotalOutflow().String())
	assert.Equal(t, "4000", d.Net().String())
	assert.False(t, d.IsZero())
	assert.True(t, DeclaredBudget{}.IsZero())
}
