package extract

import (
	"context"
	"fmt"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/speech"
)

// Extractor turns an uploaded artifact into plain text plus optional style
// metadata, delegating to format-specific libraries and to the speech bridge
// for audio and video.
type Extractor struct {
	recognizer speech.Recognizer
}

func New(recognizer speech.Recognizer) *Extractor {
	return &Extractor{recognizer: recognizer}
}

// Extract dispatches on the artifact's declared media kind.
func (e *Extractor) Extract(ctx context.Context, a Artifact) (*Result, error) {
	kind, ok := KindFromMIME(a.MIME)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, a.MIME)
	}

	switch kind {
	case KindText:
		return extractText(a.Data)
	case KindPDF:
		return extractPDF(a.Data)
	case KindDocx:
		return extractDocx(a.Data)
	case KindImage:
		return extractImage(a.Data)
	case KindAudio:
		return e.extractAudio(ctx, a)
	case KindVideo:
		return e.extractVideo(ctx, a)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, a.MIME)
}
