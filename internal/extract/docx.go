package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// extractDocx iterates paragraphs in document order, skips empty ones, and
// records per-paragraph style aligned positionally with the kept paragraphs.
func extractDocx(data []byte) (*Result, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var paragraphs []string
	var hints []StyleHint

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		paragraphs = append(paragraphs, text)
		hints = append(hints, paragraphStyle(para))
	}

	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("%w: no text could be extracted from the DOCX", ErrExtractionFailed)
	}

	return &Result{
		Text:       strings.Join(paragraphs, "\n"),
		Kind:       KindDocx,
		StyleHints: hints,
	}, nil
}

func paragraphText(para *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
	}
	return sb.String()
}

func paragraphStyle(para *docx.Paragraph) StyleHint {
	var hint StyleHint

	if props := para.Properties; props != nil {
		if props.Justification != nil {
			hint.Alignment = props.Justification.Val
		}
		if props.Style != nil {
			hint.StyleName = props.Style.Val
		}
	}

	// First run's font carries the hint, matching the captured metadata shape.
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok || run.RunProperties == nil {
			continue
		}
		if run.RunProperties.Fonts != nil {
			hint.FontName = run.RunProperties.Fonts.ASCII
		}
		if run.RunProperties.Size != nil {
			hint.FontSize = run.RunProperties.Size.Val
		}
		break
	}

	return hint
}
