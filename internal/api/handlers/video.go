package handlers

import (
	"net/http"
	"strings"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/job"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/storage"
)

const maxVideoUpload = 500 << 20

// VideoHandler accepts a video upload and enqueues a dubbing job. The heavy
// work (demux, recognition, translation, synthesis, mux) runs on the job
// queue worker.
type VideoHandler struct {
	store *storage.Store
	queue *job.JobQueue
}

func NewVideoHandler(store *storage.Store, queue *job.JobQueue) *VideoHandler {
	return &VideoHandler{store: store, queue: queue}
}

func (h *VideoHandler) Translate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxVideoUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		jsonError(w, "missing video upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	targetLang := r.FormValue("target_lang")
	if !language.IsSpeechSupported(targetLang) {
		jsonError(w, "unsupported target language: "+targetLang, http.StatusBadRequest)
		return
	}

	mime := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mime, "video/") && !storage.IsVideoFile(header.Filename) {
		jsonError(w, "unsupported media kind: "+mime, http.StatusUnsupportedMediaType)
		return
	}

	path, err := h.store.SaveUpload(header.Filename, file)
	if err != nil {
		jsonError(w, "failed to save upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	j, err := h.queue.Enqueue(job.JobDub, path, job.DubParams{
		SourceLang: r.FormValue("source_lang"),
		TargetLang: targetLang,
		Session:    r.FormValue("session"),
	})
	if err != nil {
		h.store.Remove(path)
		jsonError(w, "failed to enqueue job: "+err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(w, j, http.StatusAccepted)
}
