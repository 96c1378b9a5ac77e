package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ramzor-dev/ramzor/internal/config"
	"github.com/ramzor-dev/ramzor/internal/export"
	"github.com/ramzor-dev/ramzor/internal/importer"
	"github.com/ramzor-dev/ramzor/internal/model"
	"github.com/ramzor-dev/ramzor/internal/pipeline"
)

type analyzeFlags struct {
	json        bool
	csvPath     string
	monthlyPath string
	timeout     time.Duration
	concurrency int
	declared    config.DeclaredConfig
}

func newAnalyzeCommand(gf *globalFlags) *cobra.Command {
	var af analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze <file|directory>...",
		Short: "Extract, categorize and summarize statements and credit reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(gf)
			if err != nil {
				return err
			}
			applyAnalyzeFlags(cmd.Flags(), &af, p.cfg)
			return runAnalyze(cmd, p, &af, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&af.json, "json", false, "print the report as JSON")
	f.StringVar(&af.csvPath, "csv", "", "write transactions to a CSV file")
	f.StringVar(&af.monthlyPath, "monthly-csv", "", "write the monthly net series to a CSV file")
	f.DurationVar(&af.timeout, "timeout", 0, "per-document extraction timeout (overrides config)")
	f.IntVar(&af.concurrency, "concurrency", 0, "documents processed in parallel (overrides config)")
	f.Float64Var(&af.declared.Income, "income", 0, "declared net monthly income")
	f.Float64Var(&af.declared.PartnerIncome, "partner-income", 0, "declared partner monthly income")
	f.Float64Var(&af.declared.OtherIncome, "other-income", 0, "declared other monthly income")
	f.Float64Var(&af.declared.Expenses, "expenses", 0, "declared fixed monthly expenses")
	f.Float64Var(&af.declared.LoanRepayment, "loan-repayment", 0, "declared monthly loan repayment")
	f.Float64Var(&af.declared.Rent, "rent", 0, "declared monthly rent")

	return cmd
}

// applyAnalyzeFlags copies explicitly set flags over the config values.
func applyAnalyzeFlags(f *pflag.FlagSet, af *analyzeFlags, cfg *config.Config) {
	if f.Changed("timeout") {
		cfg.Extraction.Timeout = config.Duration(af.timeout)
	}
	if f.Changed("concurrency") {
		cfg.Extraction.Concurrency = af.concurrency
	}

	d := &cfg.Declared
	overrides := []struct {
		flag string
		dst  *float64
		src  float64
	}{
		{"income", &d.Income, af.declared.Income},
		{"partner-income", &d.PartnerIncome, af.declared.PartnerIncome},
		{"other-income", &d.OtherIncome, af.declared.OtherIncome},
		{"expenses", &d.Expenses, af.declared.Expenses},
		{"loan-repayment", &d.LoanRepayment, af.declared.LoanRepayment},
		{"rent", &d.Rent, af.declared.Rent},
	}
	for _, o := range overrides {
		if f.Changed(o.flag) {
			*o.dst = o.src
		}
	}
}

func runAnalyze(cmd *cobra.Command, p *project, af *analyzeFlags, paths []string) error {
	logger, err := p.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	files, err := importer.Scan(paths...)
	if err != nil {
		return fmt.Errorf("scanning inputs: %w", err)
	}
	docs, err := importer.Load(files)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	pl, err := p.pipeline(logger)
	if err != nil {
		return err
	}

	report, err := pl.Run(cmd.Context(), docs)
	if err != nil {
		return fmt.Errorf("analyzing: %w", err)
	}
	report.WithDeclared(p.cfg.Declared.Budget())

	if af.csvPath != "" {
		if err := writeFileWith(af.csvPath, func(w io.Writer) error {
			return export.WriteTransactions(w, report.Transactions)
		}); err != nil {
			return err
		}
	}
	if af.monthlyPath != "" {
		if err := writeFileWith(af.monthlyPath, func(w io.Writer) error {
			return export.WriteMonthly(w, monthly(report))
		}); err != nil {
			return err
		}
	}

	if af.json {
		return export.WriteJSON(cmd.OutOrStdout(), report)
	}
	return export.WriteText(cmd.OutOrStdout(), report)
}

func monthly(r *pipeline.Report) []model.MonthlyNet {
	if r.Summary == nil {
		return nil
	}
	return r.Summary.Monthly
}
