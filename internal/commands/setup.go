package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ramzor-dev/ramzor/internal/category"
	"github.com/ramzor-dev/ramzor/internal/classify"
	"github.com/ramzor-dev/ramzor/internal/config"
	"github.com/ramzor-dev/ramzor/internal/credit"
	"github.com/ramzor-dev/ramzor/internal/logging"
	"github.com/ramzor-dev/ramzor/internal/pipeline"
)

// project is a loaded configuration plus the directory relative paths in it
// resolve against.
type project struct {
	cfg *config.Config
	dir string
}

// loadProject reads the config named by the --config flag. With no flag it
// uses ./ramzor.yaml when present and the defaults otherwise.
func loadProject(gf *globalFlags) (*project, error) {
	path := gf.configPath
	explicit := path != ""
	if !explicit {
		path = config.FileName
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	default:
		return nil, err
	}

	dir := filepath.Dir(path)
	if gf.logLevel != "" {
		cfg.Log.Level = gf.logLevel
	}
	return &project{cfg: cfg, dir: dir}, nil
}

// rulesPath resolves the configured rule file against the project directory.
func (p *project) rulesPath() string {
	path := p.cfg.Rules.Path
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.dir, path)
}

func (p *project) logger(w io.Writer) (*log.Logger, error) {
	return logging.New(w, p.cfg.Log.Level)
}

func (p *project) categories() (*category.Classifier, error) {
	c, err := category.Load(p.rulesPath())
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return c, nil
}

func (p *project) pipeline(logger *log.Logger) (*pipeline.Pipeline, error) {
	cats, err := p.categories()
	if err != nil {
		return nil, err
	}
	cfg := p.cfg
	return pipeline.New(pipeline.Options{
		Documents:   classify.New(cfg.Classification.CreditFilenameMarkers, cfg.Classification.CreditContentMarkers),
		Categories:  cats,
		Credit:      credit.NewMarkerExtractor(cfg.Credit.CurrencyMarker),
		Timeout:     time.Duration(cfg.Extraction.Timeout),
		Concurrency: cfg.Extraction.Concurrency,
	}, logger), nil
}

func writeFileWith(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
