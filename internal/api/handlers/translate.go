package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/extract"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/pipeline"
)

// TranslateHandler serves the synchronous translation endpoints (text,
// file, image) backed by the shared pipeline.
type TranslateHandler struct {
	pipeline *pipeline.Pipeline
}

func NewTranslateHandler(p *pipeline.Pipeline) *TranslateHandler {
	return &TranslateHandler{pipeline: p}
}

type textRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
	Session    string `json:"session,omitempty"`
}

type translateResponse struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Text translates a raw text snippet.
func (h *TranslateHandler) Text(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}
	if !language.IsSupported(req.TargetLang) {
		jsonError(w, "unsupported target language: "+req.TargetLang, http.StatusBadRequest)
		return
	}

	out, err := h.pipeline.Run(r.Context(), pipeline.Request{
		Artifact:   extract.Artifact{Name: "input.txt", MIME: "text/plain", Data: []byte(req.Text)},
		TargetLang: req.TargetLang,
		Session:    req.Session,
	})
	if err != nil {
		jsonError(w, err.Error(), statusForExtract(err))
		return
	}

	jsonResponse(w, outcomeResponse(out), http.StatusOK)
}

// Image extracts text from an uploaded image via OCR and translates it.
func (h *TranslateHandler) Image(w http.ResponseWriter, r *http.Request) {
	artifact, targetLang, session, ok := readUpload(w, r, "image", 20<<20)
	if !ok {
		return
	}
	if !language.IsSupported(targetLang) {
		jsonError(w, "unsupported target language: "+targetLang, http.StatusBadRequest)
		return
	}

	out, err := h.pipeline.Run(r.Context(), pipeline.Request{
		Artifact:   artifact,
		TargetLang: targetLang,
		Session:    session,
	})
	if err != nil {
		jsonError(w, err.Error(), statusForExtract(err))
		return
	}

	jsonResponse(w, outcomeResponse(out), http.StatusOK)
}

func outcomeResponse(out *pipeline.Outcome) translateResponse {
	return translateResponse{
		Original:   out.Extraction.Text,
		Translated: out.Translated,
		SourceLang: out.SourceLang,
		TargetLang: out.TargetLang,
		Skipped:    out.Skipped,
		Error:      out.TranslationError,
	}
}

// readUpload parses a multipart upload and returns the artifact plus the
// target_lang and session form values.
func readUpload(w http.ResponseWriter, r *http.Request, field string, maxBytes int64) (extract.Artifact, string, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		jsonError(w, "invalid multipart form", http.StatusBadRequest)
		return extract.Artifact{}, "", "", false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		jsonError(w, "missing "+field+" upload", http.StatusBadRequest)
		return extract.Artifact{}, "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, "failed to read upload", http.StatusBadRequest)
		return extract.Artifact{}, "", "", false
	}

	return extract.Artifact{
		Name: header.Filename,
		MIME: header.Header.Get("Content-Type"),
		Data: data,
	}, r.FormValue("target_lang"), r.FormValue("session"), true
}

// statusForExtract maps extraction failures to HTTP statuses.
func statusForExtract(err error) int {
	switch {
	case errors.Is(err, extract.ErrUnsupportedKind):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, extract.ErrNoTextFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, extract.ErrExtractionFailed):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
