package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiClient translates text using the Google Gemini generateContent API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiAPIBase,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

func (g *GeminiClient) Name() string {
	return "gemini"
}

// Translate sends text to the API with an instruction to translate verbatim.
// Inputs longer than ChunkSize runes are translated chunk by chunk and the
// results joined with a single space.
func (g *GeminiClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: Gemini API key not configured", ErrTranslationFailed)
	}

	chunks := SplitChunks(text, ChunkSize)
	if len(chunks) == 1 {
		prompt := fmt.Sprintf(
			"Translate the following text to %s. Only return the translated text without any additional commentary. Text: %s",
			targetLang, text)
		out, err := g.generate(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
		}
		return out, nil
	}

	log.Printf("[gemini] translating %d chunks of at most %d runes", len(chunks), ChunkSize)

	translated := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		prompt := fmt.Sprintf(
			"Translate this text chunk to %s. Only return the translated text without any additional commentary.\n\n%s",
			targetLang, chunk)
		out, err := g.generate(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("%w: chunk %d/%d: %v", ErrTranslationFailed, i+1, len(chunks), err)
		}
		translated = append(translated, out)
	}

	return strings.Join(translated, " "), nil
}

// generate issues a single generateContent call and returns the trimmed text
// of the first candidate.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.3,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("Gemini API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty Gemini response")
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
