package pipeline

import (
	"context"
	"log"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/extract"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/history"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/translate"
)

// Extractor is the extraction stage seen by the pipeline.
type Extractor interface {
	Extract(ctx context.Context, a extract.Artifact) (*extract.Result, error)
}

// Detector guesses a language code; it never fails.
type Detector interface {
	Detect(text string) string
}

// Pipeline is the single parameterized extract→detect→translate chain shared
// by every modality. Stages run sequentially per request; the only shared
// mutable state is the history store, which serializes its own writes.
type Pipeline struct {
	extractor  Extractor
	detector   Detector
	translator translate.Translator
	history    *history.Store
}

func New(extractor Extractor, detector Detector, translator translate.Translator, hist *history.Store) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		detector:   detector,
		translator: translator,
		history:    hist,
	}
}

// Request is one translation interaction.
type Request struct {
	Artifact   extract.Artifact
	TargetLang string // language code
	Session    string // history session key; empty means the default chat
}

// Outcome is the result of a pipeline run. When translation fails the
// original text is still populated and TranslationError carries the
// user-visible message; extraction failures are returned as errors instead.
type Outcome struct {
	Extraction       *extract.Result
	SourceLang       string
	TargetLang       string
	Translated       string
	Skipped          bool // source equals target; translator not called
	TranslationError string
}

// Run executes one extract→detect→translate chain. Translation is skipped
// entirely when the detected source language equals the target, and the
// original text is surfaced unchanged. A history record is appended only
// after a successful translation.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Outcome, error) {
	res, err := p.extractor.Extract(ctx, req.Artifact)
	if err != nil {
		return nil, err
	}

	source := p.detector.Detect(res.Text)
	out := &Outcome{
		Extraction: res,
		SourceLang: source,
		TargetLang: req.TargetLang,
	}

	if source == req.TargetLang {
		out.Skipped = true
		out.Translated = res.Text
		return out, nil
	}

	translated, err := p.translator.Translate(ctx, res.Text, language.NameFor(req.TargetLang))
	if err != nil {
		log.Printf("[pipeline] translation failed (%s -> %s): %v", source, req.TargetLang, err)
		out.TranslationError = err.Error()
		return out, nil
	}

	out.Translated = translated
	p.history.Append(req.Session, history.Record{
		Original:       res.Text,
		SourceLanguage: source,
		TargetLanguage: req.TargetLang,
		Translated:     translated,
	})

	return out, nil
}
