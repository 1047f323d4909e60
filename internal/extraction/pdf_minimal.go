package extraction

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-parser/internal/types"
)

// minimalExtractor is the last resort: concatenated page text with no
// markers and no table awareness.
type minimalExtractor struct{}

func (minimalExtractor) Name() string { return "minimal" }

func (minimalExtractor) Extract(path string) (string, []types.TableRecord, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", nil, err
	}
	return buf.String(), nil, nil
}
