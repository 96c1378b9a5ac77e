package pipeline

import (
	"github.com/ramzor-dev/ramzor/internal/aggregate"
	"github.com/ramzor-dev/ramzor/internal/model"
)

// DocumentFailure is a document that could not be extracted.
type DocumentFailure struct {
	Document string `json:"document"`
	Error    string `json:"error"`
}

// DocumentStat summarises what one document contributed.
type DocumentStat struct {
	Name         string             `json:"name"`
	Kind         model.DocumentKind `json:"kind"`
	Transactions int                `json:"transactions"`
	Skipped      int                `json:"skipped"`
	CreditTotal  string             `json:"credit_total,omitempty"`
}

// Report is the outcome of one batch run.
type Report struct {
	RunID        string                `json:"run_id"`
	Summary      *model.Summary        `json:"summary"`
	Transactions []model.Transaction   `json:"-"`
	Documents    []DocumentStat        `json:"documents"`
	Failures     []DocumentFailure     `json:"failures,omitempty"`
	Skipped      int                   `json:"skipped"`
	Declared     *model.DeclaredBudget `json:"declared,omitempty"`
}

// newReport merges per-document results in input order and aggregates them.
func newReport(runID string, results []DocumentResult) *Report {
	r := &Report{RunID: runID}

	var credits []model.CreditTotal
	for _, res := range results {
		if res.Failed() {
			r.Failures = append(r.Failures, DocumentFailure{Document: res.Name, Error: res.Err.Error()})
			continue
		}

		stat := DocumentStat{
			Name:         res.Name,
			Kind:         res.Kind,
			Transactions: len(res.Transactions),
			Skipped:      len(res.Skips),
		}
		if res.Credit != nil {
			credits = append(credits, *res.Credit)
			stat.CreditTotal = res.Credit.Amount.String()
		}
		r.Documents = append(r.Documents, stat)
		r.Transactions = append(r.Transactions, res.Transactions...)
		r.Skipped += len(res.Skips)
	}

	r.Summary = aggregate.Summarize(r.Transactions, credits)
	return r
}

// Warning returns ErrEmptyBatch when no transactions were extracted.
func (r *Report) Warning() error {
	if r.Summary != nil && r.Summary.Empty() {
		return ErrEmptyBatch
	}
	return nil
}

// WithDeclared attaches user-declared figures. The summary is unchanged.
func (r *Report) WithDeclared(d model.DeclaredBudget) *Report {
	if !d.IsZero() {
		r.Declared = &d
	}
	return r
}
