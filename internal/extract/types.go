package extract

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedKind is returned for media types outside the supported
	// upload set.
	ErrUnsupportedKind = errors.New("unsupported media kind")
	// ErrExtractionFailed means the artifact could not be read or parsed at
	// all. It is terminal for the request.
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrNoTextFound means the artifact parsed fine but contained no
	// recognizable text (blank OCR result, silent audio).
	ErrNoTextFound = errors.New("no text found")
)

// Kind is the declared media kind of an uploaded artifact.
type Kind string

const (
	KindText  Kind = "text"
	KindPDF   Kind = "pdf"
	KindDocx  Kind = "docx"
	KindImage Kind = "image"
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// KindFromMIME resolves a declared MIME type to a media kind. Resolution is
// by declared type only; content is never sniffed.
func KindFromMIME(mime string) (Kind, bool) {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	switch {
	case mime == "text/plain":
		return KindText, true
	case mime == "application/pdf":
		return KindPDF, true
	case mime == docxMIME:
		return KindDocx, true
	case strings.HasPrefix(mime, "image/"):
		return KindImage, true
	case strings.HasPrefix(mime, "audio/"):
		return KindAudio, true
	case strings.HasPrefix(mime, "video/"):
		return KindVideo, true
	}
	return "", false
}

// Artifact is an opaque input blob with a declared media type. Immutable
// once received.
type Artifact struct {
	Name string // original filename
	MIME string // declared media type, not sniffed
	Data []byte
}

// StyleHint captures per-paragraph formatting from a source document for
// reapplication after translation.
type StyleHint struct {
	Alignment string `json:"alignment,omitempty"`
	StyleName string `json:"style,omitempty"`
	FontName  string `json:"font_name,omitempty"`
	FontSize  string `json:"font_size,omitempty"`
}

// Result is the output of extraction. StyleHints is populated only for docx
// inputs and is positionally correlated with lines of Text split on newline;
// the reconstructor depends on that correlation.
type Result struct {
	Text       string      `json:"text"`
	Kind       Kind        `json:"kind"`
	StyleHints []StyleHint `json:"style_hints,omitempty"`
}
