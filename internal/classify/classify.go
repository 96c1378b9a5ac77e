// Package classify decides whether a document is a bank statement or a credit report.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/ramzor-dev/ramzor/internal/model"
)

// DefaultFilenameMarkers are filename substrings that mark a credit report.
var DefaultFilenameMarkers = []string{"credit", "summary", "אשראי", "סיכום"}

// DefaultContentMarkers are phrases that only appear in credit-report text.
var DefaultContentMarkers = []string{"credit report", "דוח אשראי", "נתוני אשראי"}

// Classifier assigns a DocumentKind from a filename and its extracted text.
// Text may be empty when classification runs before extraction.
type Classifier interface {
	Classify(name, text string) model.DocumentKind
}

// FilenameClassifier matches markers against the base filename, ignoring case.
type FilenameClassifier struct {
	Markers []string
}

// Classify implements Classifier.
func (c FilenameClassifier) Classify(name, _ string) model.DocumentKind {
	if containsAny(strings.ToLower(filepath.Base(name)), c.Markers) {
		return model.KindCreditReport
	}
	return model.KindBankStatement
}

// ContentClassifier matches markers against the document text, ignoring case.
type ContentClassifier struct {
	Markers []string
}

// Classify implements Classifier.
func (c ContentClassifier) Classify(_, text string) model.DocumentKind {
	if containsAny(strings.ToLower(text), c.Markers) {
		return model.KindCreditReport
	}
	return model.KindBankStatement
}

// Chain asks each classifier in order; the first to report a credit report wins.
type Chain []Classifier

// Classify implements Classifier.
func (c Chain) Classify(name, text string) model.DocumentKind {
	for _, cl := range c {
		if cl.Classify(name, text) == model.KindCreditReport {
			return model.KindCreditReport
		}
	}
	return model.KindBankStatement
}

// Default returns the filename rule with a content fallback.
func Default() Classifier {
	return New(DefaultFilenameMarkers, DefaultContentMarkers)
}

// New builds a filename-then-content chain. Empty marker lists disable that stage.
func New(filenameMarkers, contentMarkers []string) Classifier {
	var chain Chain
	if len(filenameMarkers) > 0 {
		chain = append(chain, FilenameClassifier{Markers: filenameMarkers})
	}
	if len(contentMarkers) > 0 {
		chain = append(chain, ContentClassifier{Markers: contentMarkers})
	}
	return chain
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(n)
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
