package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/history"
)

type HistoryHandler struct {
	store *history.Store
}

func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// Get returns the translation history of one session, oldest first.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := chi.URLParam(r, "session")
	if session == "" {
		session = history.DefaultSession
	}

	records := h.store.Records(session)
	if records == nil {
		records = []history.Record{}
	}

	jsonResponse(w, map[string]interface{}{
		"session": session,
		"records": records,
	}, http.StatusOK)
}

// Sessions lists the session keys that have at least one record.
func (h *HistoryHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.store.Sessions()
	if sessions == nil {
		sessions = []string{}
	}
	jsonResponse(w, map[string]interface{}{"sessions": sessions}, http.StatusOK)
}
