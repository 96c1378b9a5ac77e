package credit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMarkerExtractor_Total(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"spaced and unspaced figures", "₪ 1,200\n₪500.50\n", "1700.5"},
		{"several figures on one line", "קרן ₪1,000 ריבית ₪ 250", "1250"},
		{"lines without marker ignored", "1,000\nסה\"כ 200\n₪ 10", "10"},
		{"marker without number", "₪ לא זמין", "0"},
		{"empty text", "", "0"},
		{"number before marker not counted", "300 ₪", "0"},
	}

	e := NewMarkerExtractor("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Total(tt.text)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestMarkerExtractor_CustomMarker(t *testing.T) {
	e := NewMarkerExtractor("$")
	got := e.Total("balance $ 12.5 and ₪ 100\n$7")
	assert.Equal(t, "19.5", got.String())
}

func TestMarkerExtractor_ZeroValueUsesField(t *testing.T) {
	e := &MarkerExtractor{Marker: "₪"}
	assert.Equal(t, "42", e.Total("₪42").String())
}

func TestMarkerExtractor_Deterministic(t *testing.T) {
	var x Extractor = NewMarkerExtractor(DefaultMarker)
	text := "₪ 1,200\n₪500.50"
	assert.True(t, x.Total(text).Equal(x.Total(text)))
}
