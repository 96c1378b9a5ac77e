// Package extract turns raw document bytes into page text.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Extractor converts document bytes into ordered page texts.
type Extractor interface {
	Extract(data []byte) ([]string, error)
	Format() string
}

// ExtractionError reports that one document could not be read.
type ExtractionError struct {
	Document string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Document, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Registry maps file extensions to extractors.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]Extractor)}
}

// Register adds an extractor under its format (a file extension without the
// dot). Panics on duplicate format.
func (r *Registry) Register(e Extractor) {
	key := strings.ToLower(e.Format())
	if _, ok := r.extractors[key]; ok {
		panic("duplicate extractor format: " + key)
	}
	r.extractors[key] = e
}

// Get returns the extractor for format, or nil.
func (r *Registry) Get(format string) Extractor {
	return r.extractors[strings.ToLower(format)]
}

// ForFile returns the extractor matching the file's extension, or nil.
func (r *Registry) ForFile(name string) Extractor {
	return r.Get(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Formats lists the registered formats.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	return formats
}

// DefaultRegistry returns a registry with the PDF and plain-text extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PDFExtractor{})
	r.Register(&TextExtractor{})
	return r
}

// Document extracts the text of one named document, bounded by ctx.
// Every failure, including an unsupported extension or ctx expiry, is
// returned as an *ExtractionError.
func (r *Registry) Document(ctx context.Context, name string, data []byte) (string, error) {
	e := r.ForFile(name)
	if e == nil {
		return "", &ExtractionError{Document: name, Err: fmt.Errorf("unsupported file type %q", filepath.Ext(name))}
	}

	pages, err := WithContext(ctx, e, data)
	if err != nil {
		return "", &ExtractionError{Document: name, Err: err}
	}
	return strings.Join(pages, "\n"), nil
}

type extractResult struct {
	pages []string
	err   error
}

// WithContext runs e.Extract and gives up when ctx is done. Extractors do
// not take a context, so an abandoned extraction finishes in the background
// and its result is discarded.
func WithContext(ctx context.Context, e Extractor, data []byte) ([]string, error) {
	done := make(chan extractResult, 1)
	go func() {
		pages, err := e.Extract(data)
		done <- extractResult{pages: pages, err: err}
	}()

	select {
	case res := <-done:
		return res.pages, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
