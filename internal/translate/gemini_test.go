package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newGeminiServer returns a test server that answers every generateContent
// call with respond(callNumber) and counts calls.
func newGeminiServer(t *testing.T, calls *int, respond func(n int) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{
							{"text": respond(*calls)},
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(url string) *GeminiClient {
	c := NewGeminiClient("test-key", "")
	c.baseURL = url
	return c
}

func TestTranslateSingleCall(t *testing.T) {
	calls := 0
	srv := newGeminiServer(t, &calls, func(int) string { return "  Hola mundo  " })
	defer srv.Close()

	got, err := testClient(srv.URL).Translate(context.Background(), "Hello world", "Spanish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hola mundo" {
		t.Errorf("Translate = %q, want trimmed %q", got, "Hola mundo")
	}
	if calls != 1 {
		t.Errorf("expected 1 API call, got %d", calls)
	}
}

func TestTranslateChunking(t *testing.T) {
	calls := 0
	srv := newGeminiServer(t, &calls, func(n int) string { return fmt.Sprintf("part%d", n) })
	defer srv.Close()

	// 25000 runes -> ceil(25000/10000) = 3 calls
	text := strings.Repeat("a", 25000)
	got, err := testClient(srv.URL).Translate(context.Background(), text, "French")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 API calls, got %d", calls)
	}
	if got != "part1 part2 part3" {
		t.Errorf("chunks not space-joined in order: %q", got)
	}
}

func TestTranslateAtThresholdIsSingleCall(t *testing.T) {
	calls := 0
	srv := newGeminiServer(t, &calls, func(int) string { return "ok" })
	defer srv.Close()

	text := strings.Repeat("b", ChunkSize)
	if _, err := testClient(srv.URL).Translate(context.Background(), text, "German"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("input at threshold should issue 1 call, got %d", calls)
	}
}

func TestTranslateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Translate(context.Background(), "hello", "Spanish")
	if !errors.Is(err, ErrTranslationFailed) {
		t.Errorf("expected ErrTranslationFailed, got %v", err)
	}
}

func TestTranslateMissingKey(t *testing.T) {
	c := NewGeminiClient("", "")
	_, err := c.Translate(context.Background(), "hello", "Spanish")
	if !errors.Is(err, ErrTranslationFailed) {
		t.Errorf("expected ErrTranslationFailed, got %v", err)
	}
}

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 1},
		{1, 1},
		{ChunkSize, 1},
		{ChunkSize + 1, 2},
		{ChunkSize*2 + 500, 3},
	}
	for _, tt := range tests {
		chunks := SplitChunks(strings.Repeat("x", tt.length), ChunkSize)
		if len(chunks) != tt.want {
			t.Errorf("SplitChunks(len %d) = %d chunks, want %d", tt.length, len(chunks), tt.want)
		}
		if joined := strings.Join(chunks, ""); len(joined) != tt.length {
			t.Errorf("chunks lose content: got %d runes, want %d", len(joined), tt.length)
		}
	}
}

func TestSplitChunksMultibyte(t *testing.T) {
	text := strings.Repeat("日", ChunkSize+5)
	chunks := SplitChunks(text, ChunkSize)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if strings.Join(chunks, "") != text {
		t.Error("multibyte text corrupted by chunking")
	}
}
