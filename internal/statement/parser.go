// Package statement turns bank-statement text into signed transactions.
package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ramzor-dev/ramzor/internal/model"
)

const dateFormat = "02/01/2006"

var (
	// dateToken finds candidate record starts.
	dateToken = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

	// recordPattern is anchored at a date token: date, shortest one-line
	// description, amount. Fields may sit on separate lines. The amount must
	// not run into a slash, so the next record's date is never taken for it.
	recordPattern = regexp.MustCompile(
		`^(\d{2}/\d{2}/\d{4})[\s\x{00A0}]+([^\n]+?)[\s\x{00A0}]+([-\x{2013}]?\d[\d,.]*)(?:[^/\d,.]|\z)`,
	)
)

// SkipReason says why a candidate record was dropped.
type SkipReason string

const (
	// SkipNoMatch is a date token not followed by a description and amount.
	SkipNoMatch SkipReason = "no_match"
	// SkipBadAmount is a matched record whose amount is not a number.
	SkipBadAmount SkipReason = "bad_amount"
)

// Skip records one dropped candidate.
type Skip struct {
	Offset int // byte offset of the date token in the input text
	Text   string
	Reason SkipReason
}

// Result is the outcome of parsing one document's text.
type Result struct {
	Transactions []model.Transaction
	Skips        []Skip
}

// Skipped returns the number of dropped candidates.
func (r Result) Skipped() int {
	return len(r.Skips)
}

// Parser extracts transactions from statement text.
type Parser struct{}

// Parse scans text for "date description amount" records in order.
// Matches do not overlap; a date token inside a consumed record is not a
// new candidate. Malformed candidates are recorded as skips, never errors.
// Returned transactions have no category yet.
func (p *Parser) Parse(text string) Result {
	var res Result

	pos := 0
	for pos < len(text) {
		loc := dateToken.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]

		m := recordPattern.FindStringSubmatchIndex(text[start:])
		if m == nil {
			res.Skips = append(res.Skips, Skip{
				Offset: start,
				Text:   lineAt(text, start),
				Reason: SkipNoMatch,
			})
			pos = start + (loc[1] - loc[0])
			continue
		}

		rawDate := text[start+m[2] : start+m[3]]
		desc := text[start+m[4] : start+m[5]]
		rawAmount := text[start+m[6] : start+m[7]]
		end := start + m[7]

		amount, err := ParseAmount(rawAmount)
		if err != nil {
			res.Skips = append(res.Skips, Skip{
				Offset: start,
				Text:   text[start:end],
				Reason: SkipBadAmount,
			})
			pos = end
			continue
		}

		res.Transactions = append(res.Transactions, model.Transaction{
			Date:        parseDate(rawDate),
			Description: strings.TrimSpace(desc),
			Amount:      amount,
		})
		pos = end
	}

	return res
}

// ParseAmount converts "10,000", "-3,000" or "–45.90" into a signed decimal.
// Commas are grouping separators; a leading hyphen or en-dash means outflow.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	} else if strings.HasPrefix(s, "–") {
		negative = true
		s = strings.TrimPrefix(s, "–")
	}

	s = strings.ReplaceAll(s, ",", "")
	// A trailing full stop is sentence punctuation, not a decimal point.
	s = strings.TrimRight(s, ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d = d.Abs()
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// parseDate reads a day-first date. Impossible dates yield the zero time.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func lineAt(text string, offset int) string {
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return text[offset:]
	}
	return text[offset : offset+end]
}
