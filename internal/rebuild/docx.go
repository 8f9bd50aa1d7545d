package rebuild

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/extract"
)

// buildDocx creates a new document with one paragraph per translated line.
// Style hints are reapplied by position: output line i gets the style of
// original paragraph i, lines beyond the hint list get default styling.
// Translation can alter line counts, so the correlation can mis-map styles;
// that is a documented limitation of the capture format, not patched here.
func buildDocx(translated string, hints []extract.StyleHint) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for i, line := range strings.Split(translated, "\n") {
		para := doc.AddParagraph()

		var hint extract.StyleHint
		if i < len(hints) {
			hint = hints[i]
		}

		if hint.Alignment != "" {
			para.Justification(hint.Alignment)
		}

		run := para.AddText(line)
		if hint.FontName != "" {
			run.Font(hint.FontName, "", "", "")
		}
		if hint.FontSize != "" {
			run.Size(hint.FontSize)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
