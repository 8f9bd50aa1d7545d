package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	googleTTSURL = "https://translate.google.com/translate_tts"

	// ttsChunkSize is the synthesis endpoint's per-request text limit in
	// runes. Longer text is synthesized piecewise and the MP3 segments
	// concatenated.
	ttsChunkSize = 200
)

// ErrSynthesisFailed covers transport and API errors from the synthesis
// endpoint.
var ErrSynthesisFailed = errors.New("speech synthesis failed")

// Synthesizer converts text to audio bytes.
type Synthesizer interface {
	// TextToSpeech synthesizes text in the given language code and returns
	// MP3 audio bytes buffered in memory.
	TextToSpeech(ctx context.Context, text, lang string) ([]byte, error)
}

// GoogleTTSClient synthesizes speech through the Google Translate TTS
// endpoint.
type GoogleTTSClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGoogleTTSClient() *GoogleTTSClient {
	return &GoogleTTSClient{
		baseURL: googleTTSURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// TextToSpeech synthesizes text chunk by chunk and returns the concatenated
// MP3 bytes.
func (c *GoogleTTSClient) TextToSpeech(ctx context.Context, text, lang string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesisFailed)
	}

	var audio []byte
	for _, chunk := range splitTTSChunks(text, ttsChunkSize) {
		segment, err := c.synthesize(ctx, chunk, lang)
		if err != nil {
			return nil, err
		}
		audio = append(audio, segment...)
	}
	return audio, nil
}

func (c *GoogleTTSClient) synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", text)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: TTS API error (status %d): %s", ErrSynthesisFailed, resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// splitTTSChunks splits text into pieces of at most size runes, breaking at
// the last space inside the window when one exists.
func splitTTSChunks(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= size {
			chunks = append(chunks, string(runes))
			break
		}
		cut := size
		for i := size - 1; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
		if len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	return chunks
}
