// Package aggregate derives a financial summary from classified transactions.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ramzor-dev/ramzor/internal/model"
)

// Summarize builds a Summary over txns and credit totals. It is a pure
// function of its inputs: the same inputs always produce an equal Summary.
//
// Zero amounts count toward TransactionCount but toward neither the income
// nor the expense side. Undated transactions are left out of Monthly only.
func Summarize(txns []model.Transaction, credits []model.CreditTotal) *model.Summary {
	s := &model.Summary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		NetCashflow:       decimal.Zero,
		IncomeByCategory:  make(map[model.Category]decimal.Decimal),
		ExpenseByCategory: make(map[model.Category]decimal.Decimal),
		Monthly:           []model.MonthlyNet{},
		TotalCreditDebt:   decimal.Zero,
		TransactionCount:  len(txns),
	}

	byMonth := make(map[model.YearMonth]decimal.Decimal)
	for _, txn := range txns {
		cat := txn.Category
		if cat == "" {
			cat = model.CategoryOther
		}

		switch txn.Amount.Sign() {
		case 1:
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
			s.IncomeByCategory[cat] = addTo(s.IncomeByCategory, cat, txn.Amount)
		case -1:
			mag := txn.Amount.Neg()
			s.TotalExpense = s.TotalExpense.Add(mag)
			s.ExpenseByCategory[cat] = addTo(s.ExpenseByCategory, cat, mag)
		}

		if txn.Dated() {
			m := txn.Month()
			byMonth[m] = addTo(byMonth, m, txn.Amount)
		}
	}
	s.NetCashflow = s.TotalIncome.Sub(s.TotalExpense)

	months := make([]model.YearMonth, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	for _, m := range months {
		s.Monthly = append(s.Monthly, model.MonthlyNet{Month: m, Net: byMonth[m]})
	}

	for _, c := range credits {
		s.TotalCreditDebt = s.TotalCreditDebt.Add(c.Amount)
	}

	return s
}

func addTo[K comparable](m map[K]decimal.Decimal, k K, v decimal.Decimal) decimal.Decimal {
	cur, ok := m[k]
	if !ok {
		return v
	}
	return cur.Add(v)
}
