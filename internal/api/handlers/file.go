package handlers

import (
	"fmt"
	"net/http"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/pipeline"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/rebuild"
)

// FileHandler translates an uploaded document and returns the rebuilt file
// as a download.
type FileHandler struct {
	pipeline *pipeline.Pipeline
}

func NewFileHandler(p *pipeline.Pipeline) *FileHandler {
	return &FileHandler{pipeline: p}
}

// Translate runs the document pipeline and streams back a rebuilt artifact
// named translated_<original>, with the MIME type of the upload.
func (h *FileHandler) Translate(w http.ResponseWriter, r *http.Request) {
	artifact, targetLang, session, ok := readUpload(w, r, "file", 50<<20)
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
	if out.TranslationError != "" {
		jsonError(w, out.TranslationError, http.StatusBadGateway)
		return
	}

	built, err := rebuild.Rebuild(out.Translated, artifact, out.Extraction.Kind, out.Extraction.StyleHints)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", built.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", built.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(built.Data)))
	w.Write(built.Data)
}
