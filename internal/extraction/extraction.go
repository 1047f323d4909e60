// Package extraction converts a source document into plain text plus zero
// or more recovered tables.
//
// PDF documents go through an ordered chain of strategies of decreasing
// fidelity: table-aware, layout-aware, then minimal. The first strategy
// producing non-blank text wins; strategy failures are swallowed and the
// chain proceeds. Non-PDF documents are read directly, with HTML stripped
// down to its visible text first.
package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// TextExtractor is one extraction strategy. Implementations return the full
// document text (with inline page/table markers) and any tables they could
// recover.
type TextExtractor interface {
	Name() string
	Extract(path string) (text string, tables []types.TableRecord, err error)
}

// pdfStrategies is the fallback chain, in priority order.
var pdfStrategies = []TextExtractor{
	tableAwareExtractor{},
	layoutExtractor{},
	minimalExtractor{},
}

// Extract reads the document at path and returns its text and tables. PDF
// extraction never fails: if every strategy comes up blank the text is
// empty, which the caller reports as an unextractable document. Read errors
// on plain-text documents propagate.
func Extract(path string) (string, []types.TableRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, tables := runChain(pdfStrategies, path)
		return text, tables, nil
	case ".html", ".htm":
		text, err := extractHTML(path)
		return text, nil, err
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil, nil
	}
}

// runChain tries each strategy in order and keeps the first usable result.
func runChain(strategies []TextExtractor, path string) (string, []types.TableRecord) {
	for _, strategy := range strategies {
		text, tables, err := runStrategy(strategy, path)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, tables
		}
	}
	return "", nil
}

// runStrategy invokes one strategy, converting panics from malformed PDF
// content streams into ordinary errors so the chain can move on.
func runStrategy(strategy TextExtractor, path string) (text string, tables []types.TableRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s extraction failed: %v", strategy.Name(), r)
		}
	}()
	return strategy.Extract(path)
}
