package handlers

import (
	"net/http"
	"sort"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
)

type LanguagesHandler struct{}

func NewLanguagesHandler() *LanguagesHandler {
	return &LanguagesHandler{}
}

type languageEntry struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Locale string `json:"locale,omitempty"`
}

// List returns the core language set for text, file, and image translation.
func (h *LanguagesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]interface{}{
		"languages": sortedEntries(language.Core, false),
		"default":   language.Default,
	}, http.StatusOK)
}

// ListSpeech returns the extended set for speech and video, with the locale
// hint each recognition call would use.
func (h *LanguagesHandler) ListSpeech(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]interface{}{
		"languages": sortedEntries(language.Speech, true),
		"default":   language.Default,
	}, http.StatusOK)
}

func sortedEntries(set map[string]string, withLocale bool) []languageEntry {
	entries := make([]languageEntry, 0, len(set))
	for name, code := range set {
		e := languageEntry{Name: name, Code: code}
		if withLocale {
			e.Locale = language.LocaleFor(code)
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
