package extract

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ocrLanguages mirrors the language packs the OCR engine is loaded with.
var ocrLanguages = []string{"eng", "fra", "spa", "deu"}

// extractImage runs OCR against the raw image data. A whitespace-only OCR
// result signals that no text was found.
func extractImage(data []byte) (*Result, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(ocrLanguages...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: image contains no legible text", ErrNoTextFound)
	}

	return &Result{Text: strings.TrimSpace(text), Kind: KindImage}, nil
}
