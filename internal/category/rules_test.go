package category

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramzor-dev/ramzor/internal/model"
)

func TestClassify_DefaultTable(t *testing.T) {
	c := Default()

	tests := []struct {
		desc string
		want model.Category
	}{
		{"משכורת חודש מרץ", model.CategorySalary},
		{`הו"ק ועד בית`, model.CategoryLoans},
		{"החזר הלוואה 12/36", model.CategoryLoans},
		{"חיוב כרטיס ויזה", model.CategoryCredit},
		{"אשראי ישראכרט", model.CategoryCredit},
		{"עמלה פעולה בסניף", model.CategoryFees},
		{"שכירות דירה", model.CategoryRent},
		{"ביטוח לאומי גמלה", model.CategoryBenefits},
		{"קצבת ילדים", model.CategoryBenefits},
		{"סופרמרקט", model.CategoryOther},
		{"", model.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.desc))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := Default()
	// Matches both salary and credit; salary is earlier in the table.
	assert.Equal(t, model.CategorySalary, c.Classify("משכורת דרך כרטיס"))
	// Matches both fees and rent; fees is earlier.
	assert.Equal(t, model.CategoryFees, c.Classify("עמלה שכירות"))
}

func TestClassify_ReorderingOnlyAffectsOverlaps(t *testing.T) {
	rules := DefaultRules()
	// Swap fees and rent.
	rules[3], rules[4] = rules[4], rules[3]
	reordered, err := NewClassifier(rules)
	require.NoError(t, err)
	base := Default()

	assert.Equal(t, model.CategoryRent, reordered.Classify("עמלה שכירות"))
	for _, desc := range []string{"עמלה", "שכירות", "משכורת", "סופר"} {
		assert.Equal(t, base.Classify(desc), reordered.Classify(desc), desc)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := Default()
	for _, desc := range []string{"משכורת", "כרטיס", "other"} {
		assert.Equal(t, c.Classify(desc), c.Classify(desc))
	}
}

func TestClassify_CaseSensitive(t *testing.T) {
	c, err := NewClassifier([]Rule{{Category: model.CategoryFees, Keywords: []string{"Fee"}}})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFees, c.Classify("Bank Fee"))
	assert.Equal(t, model.CategoryOther, c.Classify("bank fee"))
}

func TestApply(t *testing.T) {
	txns := []model.Transaction{{Description: "שכירות"}, {Description: "xyz"}}
	out := Default().Apply(txns)
	require.Len(t, out, 2)
	assert.Equal(t, model.CategoryRent, out[0].Category)
	assert.Equal(t, model.CategoryOther, out[1].Category)
	assert.Empty(t, txns[0].Category, "input must not be mutated")
	assert.Nil(t, Default().Apply(nil))
}

func TestNewClassifier_Validation(t *testing.T) {
	_, err := NewClassifier([]Rule{{Category: "groceries", Keywords: []string{"x"}}})
	assert.ErrorContains(t, err, "unknown category")

	_, err = NewClassifier([]Rule{{Category: model.CategoryRent}})
	assert.ErrorContains(t, err, "no keywords")

	_, err = NewClassifier(nil)
	assert.ErrorContains(t, err, "rule table is empty")
}

func TestRulesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), RulesFile)
	require.NoError(t, SaveRules(path, DefaultRules()))

	got, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "category: income/salary")
}

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), c.Rules())

	c, err = Load("")
	require.NoError(t, err)
	assert.Len(t, c.Rules(), 6)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - category: rent\n    keywords: [\"rent\"]\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryRent, c.Classify("monthly rent"))
	assert.Equal(t, model.CategoryOther, c.Classify("שכירות"))

	require.NoError(t, os.WriteFile(path, []byte("rules: [\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing rules")

	for _, empty := range []string{"", "rules: []\n"} {
		require.NoError(t, os.WriteFile(path, []byte(empty), 0o644))
		_, err = Load(path)
		assert.ErrorContains(t, err, "rule table is empty")
	}
}
