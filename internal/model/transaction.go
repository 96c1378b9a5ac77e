package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a closed-set spending/income label.
type Category string

const (
	CategorySalary   Category = "income/salary"
	CategoryLoans    Category = "loans"
	CategoryCredit   Category = "credit"
	CategoryFees     Category = "fees"
	CategoryRent     Category = "rent"
	CategoryBenefits Category = "benefits"
	CategoryOther    Category = "other"
)

// Categories lists every category in rule-table order, "other" last.
var Categories = []Category{
	CategorySalary,
	CategoryLoans,
	CategoryCredit,
	CategoryFees,
	CategoryRent,
	CategoryBenefits,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is one dated, described, signed line from a bank statement.
type Transaction struct {
	Date        time.Time       // zero when the statement date could not be parsed
	Description string          //nolint:revive // plain field name is clearest
	Amount      decimal.Decimal // positive = inflow, negative = outflow
	Category    Category
}

// Dated reports whether the transaction carries a usable calendar date.
// The zero time stands for "no date", so 01/01/0001 reads as undated; no
// statement carries that date.
func (t Transaction) Dated() bool {
	return !t.Date.IsZero()
}

// Month returns the calendar month of the transaction date.
// Only meaningful when Dated() is true.
func (t Transaction) Month() YearMonth {
	return YearMonth{Year: t.Date.Year(), Month: t.Date.Month()}
}

// CreditTotal is the accumulated debt figure found in one credit report.
type CreditTotal struct {
	Document string
	Amount   decimal.Decimal
}
