package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ramzor-dev/ramzor/internal/model"
	"github.com/ramzor-dev/ramzor/internal/pipeline"
)

// Currency is the symbol prefixed to displayed amounts.
const Currency = "₪"

var printer = message.NewPrinter(language.English)

// FormatAmount renders d rounded half-to-even to whole shekels with
// thousands separators, e.g. ₪7,000 or ₪-1,250.
func FormatAmount(d decimal.Decimal) string {
	r := d.RoundBank(0)
	if r.Abs().GreaterThan(maxGrouped) {
		return Currency + groupDigits(r.String())
	}
	return Currency + printer.Sprintf("%d", r.IntPart())
}

// maxGrouped is the largest magnitude the printer can take as an int64.
var maxGrouped = decimal.NewFromInt(math.MaxInt64)

// groupDigits inserts thousands separators into an integer string.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String()
}

// WriteText prints a human-readable summary of r.
func WriteText(w io.Writer, r *pipeline.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s\n", r.RunID)
	fmt.Fprintf(&b, "Documents: %d processed, %d failed, %d records skipped\n",
		len(r.Documents), len(r.Failures), r.Skipped)

	if s := r.Summary; s != nil {
		fmt.Fprintf(&b, "\nNet cash flow: %s\n", FormatAmount(s.NetCashflow))
		fmt.Fprintf(&b, "Income:        %s\n", FormatAmount(s.TotalIncome))
		writeBreakdown(&b, s.IncomeByCategory)
		fmt.Fprintf(&b, "Expenses:      %s\n", FormatAmount(s.TotalExpense))
		writeBreakdown(&b, s.ExpenseByCategory)
		fmt.Fprintf(&b, "Credit debt:   %s\n", FormatAmount(s.TotalCreditDebt))

		if len(s.Monthly) > 0 {
			b.WriteString("\nMonthly net:\n")
			for _, m := range s.Monthly {
				fmt.Fprintf(&b, "  %s  %s\n", m.Month, FormatAmount(m.Net))
			}
		}
	}

	if d := r.Declared; d != nil {
		b.WriteString("\nDeclared (monthly):\n")
		fmt.Fprintf(&b, "  income   %s\n", FormatAmount(d.TotalIncome()))
		fmt.Fprintf(&b, "  outflow  %s\n", FormatAmount(d.TotalOutflow()))
		fmt.Fprintf(&b, "  net      %s\n", FormatAmount(d.Net()))
	}

	if len(r.Failures) > 0 {
		b.WriteString("\nFailed documents:\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "  %s: %s\n", f.Document, f.Error)
		}
	}

	if err := r.Warning(); err != nil {
		fmt.Fprintf(&b, "\nWarning: %s\n", err)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBreakdown(b *strings.Builder, byCat map[model.Category]decimal.Decimal) {
	for _, c := range model.Categories {
		if v, ok := byCat[c]; ok {
			fmt.Fprintf(b, "  %-14s %s\n", c, FormatAmount(v))
		}
	}
}
