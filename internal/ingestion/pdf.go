// Package ingestion extracts plain text from uploaded resume documents.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText extracts plain text from a PDF document. Pages that
// cannot be read are skipped rather than failing the whole document.
func ExtractPDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// ExtractPDFTextFromBytes is a convenience wrapper over ExtractPDFText
// for callers that already buffered the document.
func ExtractPDFTextFromBytes(data []byte) (string, error) {
	return ExtractPDFText(bytes.NewReader(data), int64(len(data)))
}
