// Package category assigns transaction categories from an ordered keyword table.
package category

import (
	"fmt"
	"strings"

	"github.com/ramzor-dev/ramzor/internal/model"
)

// Rule maps a keyword set to a category. A description matches when it
// contains any keyword as a substring.
type Rule struct {
	Category model.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
}

// Matches reports whether desc contains one of the rule's keywords.
func (r Rule) Matches(desc string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in table. Order matters: the first
// matching rule wins.
func DefaultRules() []Rule {
	return []Rule{
		{Category: model.CategorySalary, Keywords: []string{"משכורת"}},
		{Category: model.CategoryLoans, Keywords: []string{`הו"ק`, "הו״ק", "הלוואה"}},
		{Category: model.CategoryCredit, Keywords: []string{"אשראי", "כרטיס"}},
		{Category: model.CategoryFees, Keywords: []string{"עמלה"}},
		{Category: model.CategoryRent, Keywords: []string{"שכירות"}},
		{Category: model.CategoryBenefits, Keywords: []string{"ביטוח לאומי", "ילדים"}},
	}
}

// Classifier evaluates rules top to bottom.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier over rules. An empty table, an unknown
// category or a rule without keywords is rejected.
func NewClassifier(rules []Rule) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("rule table is empty")
	}
	for i, r := range rules {
		if !r.Category.Valid() {
			return nil, fmt.Errorf("rule %d: unknown category %q", i+1, r.Category)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s): no keywords", i+1, r.Category)
		}
	}
	return &Classifier{rules: rules}, nil
}

// Default returns a Classifier over DefaultRules.
func Default() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// Rules returns the table in evaluation order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify returns the category of the first matching rule, or "other".
func (c *Classifier) Classify(desc string) model.Category {
	for _, r := range c.rules {
		if r.Matches(desc) {
			return r.Category
		}
	}
	return model.CategoryOther
}

// Apply returns a copy of txns with every Category assigned.
func (c *Classifier) Apply(txns []model.Transaction) []model.Transaction {
	if txns == nil {
		return nil
	}
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		txn.Category = c.Classify(txn.Description)
		out[i] = txn
	}
	return out
}
