package extract

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls text out of a PDF. The whole-document reader is tried
// first; on failure a page-by-page pass runs as fallback. Both failing, or a
// whitespace-only result, signals an extraction failure.
func extractPDF(data []byte) (*Result, error) {
	text, err := pdfPlainText(data)
	if err != nil {
		log.Printf("[extract] primary PDF extraction failed, trying page-by-page: %v", err)
		text, err = pdfPageByPage(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no text could be extracted from the PDF", ErrExtractionFailed)
	}

	return &Result{Text: text, Kind: KindPDF}, nil
}

func pdfPlainText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	r, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func pdfPageByPage(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
