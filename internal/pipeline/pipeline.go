// Package pipeline runs a batch of documents through extraction,
// classification, parsing and aggregation.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ramzor-dev/ramzor/internal/category"
	"github.com/ramzor-dev/ramzor/internal/classify"
	"github.com/ramzor-dev/ramzor/internal/credit"
	"github.com/ramzor-dev/ramzor/internal/extract"
	"github.com/ramzor-dev/ramzor/internal/model"
	"github.com/ramzor-dev/ramzor/internal/statement"
)

// ErrEmptyBatch is the warning for a batch that yielded no transactions.
var ErrEmptyBatch = errors.New("no valid transactions were extracted")

const (
	defaultTimeout     = 30 * time.Second
	defaultConcurrency = 4
)

// Options configures a Pipeline. Zero values select the defaults.
type Options struct {
	Extractors  *extract.Registry
	Documents   classify.Classifier
	Categories  *category.Classifier
	Credit      credit.Extractor
	Timeout     time.Duration // per-document extraction limit
	Concurrency int
}

// Pipeline processes document batches. It holds no state between runs.
type Pipeline struct {
	opts   Options
	parser *statement.Parser
	logger *log.Logger
}

// New creates a Pipeline.
func New(opts Options, logger *log.Logger) *Pipeline {
	if opts.Extractors == nil {
		opts.Extractors = extract.DefaultRegistry()
	}
	if opts.Documents == nil {
		opts.Documents = classify.Default()
	}
	if opts.Categories == nil {
		opts.Categories = category.Default()
	}
	if opts.Credit == nil {
		opts.Credit = credit.NewMarkerExtractor(credit.DefaultMarker)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{opts: opts, parser: &statement.Parser{}, logger: logger}
}

// DocumentResult is the per-document outcome of a run.
type DocumentResult struct {
	Name         string
	Kind         model.DocumentKind
	Transactions []model.Transaction
	Skips        []statement.Skip
	Credit       *model.CreditTotal
	Err          error
}

// Failed reports whether the document could not be extracted.
func (d DocumentResult) Failed() bool {
	return d.Err != nil
}

// Run processes docs and returns a report. Per-document failures are
// recorded in the report and never abort the batch; the returned error is
// non-nil only when ctx itself is cancelled.
func (p *Pipeline) Run(ctx context.Context, docs []model.Document) (*Report, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run", runID)
	logger.Info("starting batch", "documents", len(docs))

	results := make([]DocumentResult, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.process(gctx, doc, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := newReport(runID, results)
	logger.Info("batch complete",
		"transactions", report.Summary.TransactionCount,
		"skipped", report.Skipped,
		"failures", len(report.Failures),
		"net", report.Summary.NetCashflow.StringFixed(2),
	)
	if w := report.Warning(); w != nil {
		logger.Warn(w.Error())
	}
	return report, nil
}

func (p *Pipeline) process(ctx context.Context, doc model.Document, logger *log.Logger) DocumentResult {
	res := DocumentResult{Name: doc.Name}

	dctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	text, err := p.opts.Extractors.Document(dctx, doc.Name, doc.Data)
	if err != nil {
		logger.Warn("extraction failed", "document", doc.Name, "error", err)
		res.Err = err
		return res
	}

	res.Kind = p.opts.Documents.Classify(doc.Name, text)
	switch res.Kind {
	case model.KindCreditReport:
		amount := p.opts.Credit.Total(text)
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		res.Credit = &model.CreditTotal{Document: doc.Name, Amount: amount}
		logger.Debug("credit report", "document", doc.Name, "total", amount.String())
	default:
		parsed := p.parser.Parse(text)
		res.Transactions = p.opts.Categories.Apply(parsed.Transactions)
		res.Skips = parsed.Skips
		for _, s := range parsed.Skips {
			logger.Debug("record skipped", "document", doc.Name, "reason", s.Reason, "text", s.Text)
		}
		logger.Debug("bank statement", "document", doc.Name,
			"transactions", len(res.Transactions), "skipped", len(res.Skips))
	}
	return res
}
