package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector guesses the language code of a text blob. It is pure and total:
// any detection failure yields the default code instead of an error.
type Detector struct {
	detector lingua.LanguageDetector
}

var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Russian,
	lingua.Hindi,
	lingua.Arabic,
	lingua.Tamil,
	lingua.Kannada,
	lingua.Telugu,
	lingua.Malayalam,
}

// NewDetector builds a detector restricted to the supported language set.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build(),
	}
}

// Detect returns the language code for text, or the default code when the
// text is empty, ambiguous, or outside the supported set.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Default
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Default
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	if !IsSpeechSupported(code) {
		return Default
	}
	return code
}
