package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ramzor-dev/ramzor/internal/model"
	"github.com/ramzor-dev/ramzor/internal/pipeline"
)

// Transaction is the JSON form of a model.Transaction.
type Transaction struct {
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    model.Category  `json:"category"`
}

// Document is the JSON form of a run report.
type Document struct {
	*pipeline.Report
	Warning      string        `json:"warning,omitempty"`
	Transactions []Transaction `json:"transactions"`
}

// NewDocument builds the JSON view of r.
func NewDocument(r *pipeline.Report) Document {
	doc := Document{Report: r, Transactions: make([]Transaction, 0, len(r.Transactions))}
	if err := r.Warning(); err != nil {
		doc.Warning = err.Error()
	}
	for _, t := range r.Transactions {
		jt := Transaction{Description: t.Description, Amount: t.Amount, Category: t.Category}
		if t.Dated() {
			jt.Date = t.Date.Format(dateFormat)
		}
		doc.Transactions = append(doc.Transactions, jt)
	}
	return doc
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *pipeline.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(r)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
