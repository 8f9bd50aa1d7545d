package language

// Default is returned whenever detection fails or yields a code outside the
// supported set.
const Default = "en"

// Core maps display names to codes for the text/file/image pipelines.
var Core = map[string]string{
	"English":    "en",
	"Spanish":    "es",
	"French":     "fr",
	"German":     "de",
	"Italian":    "it",
	"Portuguese": "pt",
	"Chinese":    "zh",
	"Japanese":   "ja",
	"Russian":    "ru",
	"Hindi":      "hi",
	"Arabic":     "ar",
	"Tamil":      "ta",
}

// Speech extends the core set for the speech and video pipelines.
var Speech = map[string]string{
	"English":    "en",
	"Spanish":    "es",
	"French":     "fr",
	"German":     "de",
	"Italian":    "it",
	"Portuguese": "pt",
	"Chinese":    "zh",
	"Japanese":   "ja",
	"Russian":    "ru",
	"Hindi":      "hi",
	"Arabic":     "ar",
	"Tamil":      "ta",
	"Kannada":    "kn",
	"Telugu":     "te",
	"Malayalam":  "ml",
}

// Locales maps language codes to the locale hints the speech recognition API
// expects, e.g. "en" -> "en-US".
var Locales = map[string]string{
	"en": "en-US",
	"es": "es-MX",
	"fr": "fr-FR",
	"de": "de-DE",
	"it": "it-IT",
	"pt": "pt-BR",
	"zh": "zh-CN",
	"ja": "ja-JP",
	"ru": "ru-RU",
	"hi": "hi-IN",
	"ar": "ar-SA",
	"ta": "ta-IN",
	"kn": "kn-IN",
	"te": "te-IN",
	"ml": "ml-IN",
}

var codeToName = func() map[string]string {
	m := make(map[string]string, len(Speech))
	for name, code := range Speech {
		m[code] = name
	}
	return m
}()

// NameFor returns the display name for a language code, or the code itself
// when it is not in the supported set.
func NameFor(code string) string {
	if name, ok := codeToName[code]; ok {
		return name
	}
	return code
}

// CodeFor resolves a display name to its code.
func CodeFor(name string) (string, bool) {
	code, ok := Speech[name]
	return code, ok
}

// IsSupported reports whether code is in the core set.
func IsSupported(code string) bool {
	name, ok := codeToName[code]
	if !ok {
		return false
	}
	_, ok = Core[name]
	return ok
}

// IsSpeechSupported reports whether code is in the extended speech set.
func IsSpeechSupported(code string) bool {
	_, ok := codeToName[code]
	return ok
}

// LocaleFor returns the ASR locale hint for a code, defaulting to en-US.
func LocaleFor(code string) string {
	if loc, ok := Locales[code]; ok {
		return loc
	}
	return Locales[Default]
}
