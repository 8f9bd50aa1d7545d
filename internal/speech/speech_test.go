package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSpeechToTextSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		if got := r.FormValue("language"); got != "fr" {
			t.Errorf("language hint = %q, want fr", got)
		}
		w.Write([]byte("Bonjour le monde\n"))
	}))
	defer srv.Close()

	c := NewWhisperClient("test-key")
	c.baseURL = srv.URL

	got, err := c.SpeechToText(context.Background(), []byte("fake-wav"), "audio.wav", "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bonjour le monde" {
		t.Errorf("transcript = %q", got)
	}
}

func TestSpeechToTextRemoteFailureYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad audio", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewWhisperClient("test-key")
	c.baseURL = srv.URL

	got, err := c.SpeechToText(context.Background(), []byte("noise"), "audio.wav", "en")
	if err != nil {
		t.Fatalf("remote failure must not propagate, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty transcript, got %q", got)
	}
}

func TestSpeechToTextMissingKey(t *testing.T) {
	c := NewWhisperClient("")
	_, err := c.SpeechToText(context.Background(), []byte("x"), "a.wav", "en")
	if !errors.Is(err, ErrRecognitionFailed) {
		t.Errorf("expected ErrRecognitionFailed, got %v", err)
	}
}

func TestTextToSpeechConcatenatesChunks(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.URL.Query().Get("tl"); got != "es" {
			t.Errorf("tl = %q, want es", got)
		}
		w.Write([]byte("MP3"))
	}))
	defer srv.Close()

	c := NewGoogleTTSClient()
	c.baseURL = srv.URL

	text := strings.Repeat("hola ", 100) // 500 runes -> multiple chunks
	audio, err := c.TextToSpeech(context.Background(), text, "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls < 2 {
		t.Errorf("long text should be synthesized in chunks, got %d calls", calls)
	}
	if len(audio) != calls*3 {
		t.Errorf("audio should concatenate all segments: %d bytes from %d calls", len(audio), calls)
	}
}

func TestTextToSpeechEmptyText(t *testing.T) {
	c := NewGoogleTTSClient()
	if _, err := c.TextToSpeech(context.Background(), "", "en"); !errors.Is(err, ErrSynthesisFailed) {
		t.Errorf("expected ErrSynthesisFailed for empty text, got %v", err)
	}
}

func TestSplitTTSChunks(t *testing.T) {
	short := splitTTSChunks("hello", 200)
	if len(short) != 1 || short[0] != "hello" {
		t.Errorf("short text should be one chunk: %v", short)
	}

	text := strings.Repeat("word ", 100)
	chunks := splitTTSChunks(strings.TrimSpace(text), 50)
	for i, c := range chunks {
		if len([]rune(c)) > 50 {
			t.Errorf("chunk %d exceeds limit: %d runes", i, len([]rune(c)))
		}
	}
	rejoined := strings.Join(chunks, " ")
	if rejoined != strings.TrimSpace(text) {
		t.Errorf("chunks lose words:\n got %q\nwant %q", rejoined, strings.TrimSpace(text))
	}
}
