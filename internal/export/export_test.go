package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramzor-dev/ramzor/internal/aggregate"
	"github.com/ramzor-dev/ramzor/internal/model"
	"github.com/ramzor-dev/ramzor/internal/pipeline"
)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Description: "משכורת מרץ", Amount: decimal.NewFromInt(10000), Category: model.CategorySalary},
		{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Description: "שכירות, דירה", Amount: decimal.NewFromInt(-3000), Category: model.CategoryRent},
		{Description: "עמלה", Amount: decimal.RequireFromString("-12.5"), Category: model.CategoryFees},
	}
}

func sampleReport() *pipeline.Report {
	txns := sampleTransactions()
	credits := []model.CreditTotal{{Document: "credit.pdf", Amount: decimal.RequireFromString("1700.5")}}
	return &pipeline.Report{
		RunID:        "run-1",
		Summary:      aggregate.Summarize(txns, credits),
		Transactions: txns,
		Documents: []pipeline.DocumentStat{
			{Name: "statement.txt", Kind: model.KindBankStatement, Transactions: 3},
			{Name: "credit.pdf", Kind: model.KindCreditReport, CreditTotal: "1700.5"},
		},
		Skipped: 1,
	}
}

func TestWriteTransactions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, sampleTransactions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, TransactionHeader, lines[0])
	assert.Equal(t, "2024-03-01,משכורת מרץ,10000.00,income/salary", lines[1])
	assert.Equal(t, `2024-03-05,"שכירות, דירה",-3000.00,rent`, lines[2])
	assert.Equal(t, ",עמלה,-12.50,fees", lines[3])
}

func TestWriteTransactions_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, nil))
	assert.Equal(t, TransactionHeader+"\n", buf.String())
}

func TestWriteMonthly(t *testing.T) {
	monthly := []model.MonthlyNet{
		{Month: model.YearMonth{Year: 2024, Month: time.March}, Net: decimal.NewFromInt(7000)},
		{Month: model.YearMonth{Year: 2024, Month: time.April}, Net: decimal.RequireFromString("-250.5")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMonthly(&buf, monthly))
	assert.Equal(t, "month,net\n2024-03,7000.00\n2024-04,-250.50\n", buf.String())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"7000", "₪7,000"},
		{"0", "₪0"},
		{"1700.5", "₪1,700"},
		{"1701.5", "₪1,702"},
		{"-1250", "₪-1,250"},
		{"1234567.49", "₪1,234,567"},
		{"99999999999999999999", "₪99,999,999,999,999,999,999"},
		{"-12345678901234567890.4", "₪-12,345,678,901,234,567,890"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestWriteText(t *testing.T) {
	r := sampleReport()
	r.WithDeclared(model.DeclaredBudget{Income: decimal.NewFromInt(9000), Rent: decimal.NewFromInt(5000)})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Run run-1")
	assert.Contains(t, out, "Net cash flow: ₪6,988")
	assert.Contains(t, out, "income/salary")
	assert.Contains(t, out, "Credit debt:   ₪1,700")
	assert.Contains(t, out, "2024-03  ₪7,000")
	assert.Contains(t, out, "net      ₪4,000")
	assert.NotContains(t, out, "Warning")
}

func TestWriteText_EmptyBatchWarns(t *testing.T) {
	r := &pipeline.Report{RunID: "empty", Summary: aggregate.Summarize(nil, nil)}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), "Warning: "+pipeline.ErrEmptyBatch.Error())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "run-1", got["run_id"])
	assert.NotContains(t, got, "warning")

	summary, ok := got["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "6987.5", summary["net_cashflow"])
	assert.Equal(t, "1700.5", summary["total_credit_debt"])

	txns, ok := got["transactions"].([]any)
	require.True(t, ok)
	require.Len(t, txns, 3)
	first := txns[0].(map[string]any)
	assert.Equal(t, "2024-03-01", first["date"])
	assert.Equal(t, "income/salary", first["category"])
	third := txns[2].(map[string]any)
	assert.NotContains(t, third, "date")
}
