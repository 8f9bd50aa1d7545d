package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const openAITranscriptionURL = "https://api.openai.com/v1/audio/transcriptions"

// ErrRecognitionFailed indicates the recognition client cannot be used at
// all (missing API key, malformed request). Transient remote failures and
// unrecognizable audio do NOT produce this error: they yield an empty
// transcript, which callers treat as "no speech detected" and reprompt.
var ErrRecognitionFailed = errors.New("speech recognition failed")

// Recognizer converts audio bytes to text.
type Recognizer interface {
	// SpeechToText transcribes audio. lang is a language code hint ("en",
	// "ta", ...) or empty for auto-detection. An empty transcript with a nil
	// error means no speech was recognized.
	SpeechToText(ctx context.Context, audio []byte, filename, lang string) (string, error)
}

// WhisperClient transcribes audio through an OpenAI-compatible
// transcriptions endpoint.
type WhisperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewWhisperClient(apiKey string) *WhisperClient {
	return &WhisperClient{
		apiKey:  apiKey,
		baseURL: openAITranscriptionURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

func (c *WhisperClient) Name() string {
	return "whisper"
}

// SpeechToText sends the audio as a multipart upload. Network and API errors
// are logged and reported as an empty transcript rather than propagated.
func (c *WhisperClient) SpeechToText(ctx context.Context, audio []byte, filename, lang string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: API key not configured", ErrRecognitionFailed)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	writer.WriteField("model", "whisper-1")
	writer.WriteField("response_format", "text")
	if lang != "" && lang != "auto" {
		writer.WriteField("language", lang)
	}
	writer.Close()

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[whisper] transcription request failed: %v", err)
		return "", nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[whisper] reading transcription response failed: %v", err)
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[whisper] transcription API error (status %d): %s", resp.StatusCode, string(body))
		return "", nil
	}

	return strings.TrimSpace(string(body)), nil
}
