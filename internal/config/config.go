package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ramzor-dev/ramzor/internal/category"
	"github.com/ramzor-dev/ramzor/internal/classify"
	"github.com/ramzor-dev/ramzor/internal/credit"
	"github.com/ramzor-dev/ramzor/internal/model"
)

// FileName is the default config file name in a project directory.
const FileName = "ramzor.yaml"

// Config represents the top-level ramzor.yaml configuration.
type Config struct {
	Extraction     ExtractionConfig     `yaml:"extraction"`
	Classification ClassificationConfig `yaml:"classification"`
	Credit         CreditConfig         `yaml:"credit"`
	Rules          RulesConfig          `yaml:"rules"`
	Declared       DeclaredConfig       `yaml:"declared,omitempty"`
	Log            LogConfig            `yaml:"log"`
}

// ExtractionConfig bounds per-document text extraction.
type ExtractionConfig struct {
	Timeout     Duration `yaml:"timeout"`
	Concurrency int      `yaml:"concurrency"`
}

// ClassificationConfig holds the markers that identify credit reports.
type ClassificationConfig struct {
	CreditFilenameMarkers []string `yaml:"credit_filename_markers"`
	CreditContentMarkers  []string `yaml:"credit_content_markers"`
}

// CreditConfig controls credit-report total extraction.
type CreditConfig struct {
	CurrencyMarker string `yaml:"currency_marker"`
}

// RulesConfig points at the categorization rule table.
type RulesConfig struct {
	Path string `yaml:"path"`
}

// DeclaredConfig holds the questionnaire figures, all monthly.
type DeclaredConfig struct {
	Income        float64 `yaml:"income,omitempty"`
	PartnerIncome float64 `yaml:"partner_income,omitempty"`
	OtherIncome   float64 `yaml:"other_income,omitempty"`
	Expenses      float64 `yaml:"expenses,omitempty"`
	LoanRepayment float64 `yaml:"loan_repayment,omitempty"`
	Rent          float64 `yaml:"rent,omitempty"`
}

// Budget converts the declared figures to exact amounts.
func (d DeclaredConfig) Budget() model.DeclaredBudget {
	return model.DeclaredBudget{
		Income:        decimal.NewFromFloat(d.Income),
		PartnerIncome: decimal.NewFromFloat(d.PartnerIncome),
		OtherIncome:   decimal.NewFromFloat(d.OtherIncome),
		Expenses:      decimal.NewFromFloat(d.Expenses),
		LoanRepayment: decimal.NewFromFloat(d.LoanRepayment),
		Rent:          decimal.NewFromFloat(d.Rent),
	}
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Duration is a time.Duration written as "30s" in YAML.
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads a ramzor.yaml file from disk. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the built-in markers and limits.
func Default() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Timeout:     Duration(30 * time.Second),
			Concurrency: 4,
		},
		Classification: ClassificationConfig{
			CreditFilenameMarkers: append([]string(nil), classify.DefaultFilenameMarkers...),
			CreditContentMarkers:  append([]string(nil), classify.DefaultContentMarkers...),
		},
		Credit: CreditConfig{
			CurrencyMarker: credit.DefaultMarker,
		},
		Rules: RulesConfig{
			Path: category.RulesFile,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
