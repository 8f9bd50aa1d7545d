package extract

import (
	"fmt"
	"log"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// extractText decodes a plain-text blob. Byte-level encoding is sniffed
// statistically and the detected charset used for decoding, defaulting to
// UTF-8 when detection is ambiguous or decoding fails.
func extractText(data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty text file", ErrExtractionFailed)
	}

	text := decodeCharset(data)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text file contains no text", ErrExtractionFailed)
	}

	return &Result{Text: text, Kind: KindText}, nil
}

func decodeCharset(data []byte) string {
	detected, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || detected == nil {
		return string(data)
	}

	enc, err := ianaindex.IANA.Encoding(detected.Charset)
	if err != nil || enc == nil {
		return string(data)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		log.Printf("[extract] charset %s decode failed, falling back to UTF-8: %v", detected.Charset, err)
		return string(data)
	}
	return string(decoded)
}
