package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/job"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/storage"
)

type JobHandler struct {
	queue *job.JobQueue
	store *storage.Store
}

func NewJobHandler(queue *job.JobQueue, store *storage.Store) *JobHandler {
	return &JobHandler{queue: queue, store: store}
}

// ListJobs returns all jobs
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.queue.ListJobs()
	if err != nil {
		jsonError(w, "failed to list jobs: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []*job.Job{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jobs)
}

// GetJob returns a single job by ID
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		jsonError(w, "missing job ID", http.StatusBadRequest)
		return
	}

	j, err := h.queue.GetJob(id)
	if err != nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(j)
}

// CancelJob cancels a pending or running job
func (h *JobHandler) CancelJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		jsonError(w, "missing job ID", http.StatusBadRequest)
		return
	}

	if err := h.queue.CancelJob(id); err != nil {
		jsonError(w, "failed to cancel job: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Download serves the output file of a completed dubbing job.
func (h *JobHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		jsonError(w, "missing job ID", http.StatusBadRequest)
		return
	}

	j, err := h.queue.GetJob(id)
	if err != nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	if j.Status != job.StatusCompleted {
		jsonError(w, fmt.Sprintf("job is %s, not completed", j.Status), http.StatusConflict)
		return
	}

	var result job.DubResult
	if err := json.Unmarshal(j.Result, &result); err != nil {
		jsonError(w, "job has no result", http.StatusInternalServerError)
		return
	}

	path, err := h.store.OutputFile(filepath.Base(result.OutputPath))
	if err != nil {
		jsonError(w, "invalid output path", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	http.ServeFile(w, r, path)
}
