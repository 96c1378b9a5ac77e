package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PageBreak separates pages in pre-extracted text files.
const PageBreak = "\f"

// TextExtractor reads documents that are already plain UTF-8 text.
type TextExtractor struct{}

// Format returns the file extension handled.
func (e *TextExtractor) Format() string { return "txt" }

// Extract splits the text on form feeds into pages.
func (e *TextExtractor) Extract(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("text is not valid UTF-8")
	}
	s := strings.TrimPrefix(string(data), "\ufeff")
	return strings.Split(s, PageBreak), nil
}
