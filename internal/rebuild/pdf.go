package rebuild

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont     = "Helvetica"
	pdfFontSize = 12.0
	pdfMargin   = 40.0
	pdfLeading  = 14.0
)

// buildPDF renders translated text as flat left-aligned lines on a single
// page with one fixed font and size, writing downward from a fixed top
// margin. Long text is not paginated: overflow runs off the page. That
// boundary behavior is intentional and preserved.
func buildPDF(translated string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetFont(pdfFont, "", pdfFontSize)

	tr := doc.UnicodeTranslatorFromDescriptor("")

	y := pdfMargin
	for _, line := range strings.Split(translated, "\n") {
		doc.Text(pdfMargin, y, tr(line))
		y += pdfLeading
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
