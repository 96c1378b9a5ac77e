package model

import "github.com/shopspring/decimal"

// MonthlyNet is the net signed amount for one calendar month.
type MonthlyNet struct {
	Month YearMonth       `json:"month"`
	Net   decimal.Decimal `json:"net"`
}

// Summary is the aggregate view over every document in a batch.
// Expense figures are magnitudes, so ExpenseByCategory sums to TotalExpense.
type Summary struct {
	TotalIncome       decimal.Decimal              `json:"total_income"`
	TotalExpense      decimal.Decimal              `json:"total_expense"`
	NetCashflow       decimal.Decimal              `json:"net_cashflow"`
	IncomeByCategory  map[Category]decimal.Decimal `json:"income_by_category"`
	ExpenseByCategory map[Category]decimal.Decimal `json:"expense_by_category"`
	Monthly           []MonthlyNet                 `json:"monthly"`
	TotalCreditDebt   decimal.Decimal              `json:"total_credit_debt"`
	TransactionCount  int                          `json:"transaction_count"`
}

// Empty reports whether the summary was built from zero transactions.
func (s *Summary) Empty() bool {
	return s.TransactionCount == 0
}

// DeclaredBudget holds the monthly figures a user states about themselves,
// as opposed to figures extracted from documents.
type DeclaredBudget struct {
	Income        decimal.Decimal `json:"income"`
	PartnerIncome decimal.Decimal `json:"partner_income"`
	OtherIncome   decimal.Decimal `json:"other_income"`
	Expenses      decimal.Decimal `json:"expenses"`
	LoanRepayment decimal.Decimal `json:"loan_repayment"`
	Rent          decimal.Decimal `json:"rent"`
}

// TotalIncome sums the declared income sources.
func (d DeclaredBudget) TotalIncome() decimal.Decimal {
	return d.Income.Add(d.PartnerIncome).Add(d.OtherIncome)
}

// TotalOutflow sums the declared recurring outflows.
func (d DeclaredBudget) TotalOutflow() decimal.Decimal {
	return d.Expenses.Add(d.LoanRepayment).Add(d.Rent)
}

// Net is declared income minus declared outflow.
func (d DeclaredBudget) Net() decimal.Decimal {
	return d.TotalIncome().Sub(d.TotalOutflow())
}

// IsZero reports whether nothing was declared.
func (d DeclaredBudget) IsZero() bool {
	return d.TotalIncome().IsZero() && d.TotalOutflow().IsZero()
}
