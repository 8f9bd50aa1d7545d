package rebuild

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/extract"
)

// ErrRebuildFailed covers failures while assembling the output artifact.
var ErrRebuildFailed = errors.New("reconstruction failed")

// OutputArtifact is a rebuilt file ready for delivery: a byte buffer plus
// the download filename and the MIME type of the original upload.
type OutputArtifact struct {
	Filename string
	MIME     string
	Data     []byte
}

// OutputName derives the delivery filename from the original upload name.
func OutputName(original string) string {
	return "translated_" + filepath.Base(original)
}

// Rebuild produces an output artifact of the original's kind from translated
// text. DOCX output reapplies the captured style hints positionally; see
// buildDocx for the mismatch caveat.
func Rebuild(translated string, original extract.Artifact, kind extract.Kind, hints []extract.StyleHint) (*OutputArtifact, error) {
	var data []byte
	var err error

	switch kind {
	case extract.KindText:
		data = []byte(translated)
	case extract.KindDocx:
		data, err = buildDocx(translated, hints)
	case extract.KindPDF:
		data, err = buildPDF(translated)
	default:
		return nil, fmt.Errorf("%w: cannot rebuild kind %q", extract.ErrUnsupportedKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRebuildFailed, err)
	}

	return &OutputArtifact{
		Filename: OutputName(original.Name),
		MIME:     original.MIME,
		Data:     data,
	}, nil
}
