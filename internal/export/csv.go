package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ramzor-dev/ramzor/internal/model"
)

// TransactionHeader is the CSV header for the transactions export.
const TransactionHeader = "date,description,amount,category"

// MonthlyHeader is the CSV header for the monthly series export.
const MonthlyHeader = "month,net"

const (
	dateFormat = "2006-01-02"
	numFields  = 4
	colDate    = 0
	colDesc    = 1
	colAmount  = 2
	colCat     = 3
)

// MarshalTransaction converts a Transaction to a CSV row. Undated
// transactions get an empty date column.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	if t.Dated() {
		row[colDate] = t.Date.Format(dateFormat)
	}
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.StringFixed(2)
	row[colCat] = string(t.Category)
	return row
}

// WriteTransactions writes transactions to w (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMonthly writes the monthly net series to w (including header).
func WriteMonthly(w io.Writer, monthly []model.MonthlyNet) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(MonthlyHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, m := range monthly {
		if err := cw.Write([]string{m.Month.String(), m.Net.StringFixed(2)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
