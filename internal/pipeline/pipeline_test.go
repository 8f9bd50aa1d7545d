package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/extract"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/history"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/translate"
)

type fakeExtractor struct {
	result *extract.Result
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, a extract.Artifact) (*extract.Result, error) {
	return f.result, f.err
}

type fakeDetector struct{ code string }

func (f *fakeDetector) Detect(text string) string { return f.code }

type fakeTranslator struct {
	calls  int
	output string
	err    error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func (f *fakeTranslator) Name() string { return "fake" }

func textArtifact(text string) extract.Artifact {
	return extract.Artifact{Name: "input.txt", MIME: "text/plain", Data: []byte(text)}
}

func TestRunTranslates(t *testing.T) {
	tr := &fakeTranslator{output: "Hola mundo"}
	hist := history.NewStore()
	p := New(
		&fakeExtractor{result: &extract.Result{Text: "Hello world", Kind: extract.KindText}},
		&fakeDetector{code: "en"},
		tr,
		hist,
	)

	out, err := p.Run(context.Background(), Request{
		Artifact:   textArtifact("Hello world"),
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.calls != 1 {
		t.Errorf("translator called %d times, want 1", tr.calls)
	}
	if out.Translated != "Hola mundo" || out.SourceLang != "en" || out.Skipped {
		t.Errorf("outcome = %+v", out)
	}

	records := hist.Records(history.DefaultSession)
	if len(records) != 1 {
		t.Fatalf("history has %d records, want 1", len(records))
	}
	if records[0].Original != "Hello world" || records[0].Translated != "Hola mundo" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestRunSkipsWhenSourceEqualsTarget(t *testing.T) {
	tr := &fakeTranslator{output: "should not be used"}
	hist := history.NewStore()
	p := New(
		&fakeExtractor{result: &extract.Result{Text: "Bonjour", Kind: extract.KindText}},
		&fakeDetector{code: "fr"},
		tr,
		hist,
	)

	out, err := p.Run(context.Background(), Request{
		Artifact:   textArtifact("Bonjour"),
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.calls != 0 {
		t.Errorf("translator must not be called when source equals target, got %d calls", tr.calls)
	}
	if !out.Skipped || out.Translated != "Bonjour" {
		t.Errorf("original text must be surfaced unchanged: %+v", out)
	}
	if len(hist.Records(history.DefaultSession)) != 0 {
		t.Error("skipped run must not append history")
	}
}

func TestRunExtractionFailureIsTerminal(t *testing.T) {
	tr := &fakeTranslator{}
	p := New(
		&fakeExtractor{err: extract.ErrUnsupportedKind},
		&fakeDetector{code: "en"},
		tr,
		history.NewStore(),
	)

	_, err := p.Run(context.Background(), Request{
		Artifact:   extract.Artifact{Name: "a.zip", MIME: "application/zip"},
		TargetLang: "es",
	})
	if !errors.Is(err, extract.ErrUnsupportedKind) {
		t.Errorf("error = %v, want ErrUnsupportedKind", err)
	}
	if tr.calls != 0 {
		t.Error("no downstream stage may run after extraction failure")
	}
}

func TestRunHaltsWhenNoTextFound(t *testing.T) {
	tr := &fakeTranslator{}
	p := New(
		&fakeExtractor{err: extract.ErrNoTextFound},
		&fakeDetector{code: "en"},
		tr,
		history.NewStore(),
	)

	_, err := p.Run(context.Background(), Request{
		Artifact:   extract.Artifact{Name: "blank.png", MIME: "image/png"},
		TargetLang: "es",
	})
	if !errors.Is(err, extract.ErrNoTextFound) {
		t.Errorf("error = %v, want ErrNoTextFound", err)
	}
	if tr.calls != 0 {
		t.Error("translation must not run when extraction found no text")
	}
}

func TestRunTranslationFailureDegrades(t *testing.T) {
	hist := history.NewStore()
	p := New(
		&fakeExtractor{result: &extract.Result{Text: "Hello", Kind: extract.KindText}},
		&fakeDetector{code: "en"},
		&fakeTranslator{err: translate.ErrTranslationFailed},
		hist,
	)

	out, err := p.Run(context.Background(), Request{
		Artifact:   textArtifact("Hello"),
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("translation failure must not abort the interaction: %v", err)
	}
	if out.TranslationError == "" {
		t.Error("expected a user-visible translation error message")
	}
	if out.Extraction.Text != "Hello" {
		t.Error("original text must still be available after translation failure")
	}
	if len(hist.Records(history.DefaultSession)) != 0 {
		t.Error("failed translation must not append history")
	}
}

func TestRunNamedSession(t *testing.T) {
	hist := history.NewStore()
	p := New(
		&fakeExtractor{result: &extract.Result{Text: "Hi", Kind: extract.KindText}},
		&fakeDetector{code: "en"},
		&fakeTranslator{output: "Salut"},
		hist,
	)

	if _, err := p.Run(context.Background(), Request{
		Artifact:   textArtifact("Hi"),
		TargetLang: "fr",
		Session:    "work-chat",
	}); err != nil {
		t.Fatal(err)
	}

	if len(hist.Records("work-chat")) != 1 {
		t.Error("record should land in the named session")
	}
	if len(hist.Records(history.DefaultSession)) != 0 {
		t.Error("default session should stay empty")
	}
}
