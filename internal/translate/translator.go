package translate

import (
	"context"
	"errors"
)

// ChunkSize is the maximum text length (in runes) sent in a single API call.
// Longer inputs are split into contiguous fixed-size chunks with no
// sentence-boundary awareness, and the per-chunk results are joined with a
// single space. The join loses original newline structure for long inputs;
// that is a known fidelity gap carried over deliberately.
const ChunkSize = 10000

// ErrTranslationFailed covers any transport or API error from the remote
// translation service. Callers surface it as an inline message instead of
// aborting the interaction; there are no automatic retries.
var ErrTranslationFailed = errors.New("translation failed")

// Translator is the common interface for translation engines.
type Translator interface {
	// Translate translates text into the target language. targetLang is a
	// display name such as "Spanish".
	Translate(ctx context.Context, text, targetLang string) (string, error)
	// Name returns the engine name.
	Name() string
}

// SplitChunks splits text into contiguous chunks of at most size runes.
func SplitChunks(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
