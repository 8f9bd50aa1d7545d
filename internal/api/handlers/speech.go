package handlers

import (
	"encoding/base64"
	"log"
	"net/http"
	"strings"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/history"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/pipeline"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/speech"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/translate"
)

// SpeechHandler translates an uploaded utterance: recognize, translate,
// synthesize. The client records and plays audio; this endpoint only sees
// the uploaded bytes.
type SpeechHandler struct {
	recognizer  speech.Recognizer
	synthesizer speech.Synthesizer
	detector    pipeline.Detector
	translator  translate.Translator
	history     *history.Store
}

func NewSpeechHandler(recognizer speech.Recognizer, synthesizer speech.Synthesizer, detector pipeline.Detector, translator translate.Translator, hist *history.Store) *SpeechHandler {
	return &SpeechHandler{
		recognizer:  recognizer,
		synthesizer: synthesizer,
		detector:    detector,
		translator:  translator,
		history:     hist,
	}
}

// speechResponse carries the original utterance before the translated one.
type speechResponse struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Audio      string `json:"audio,omitempty"` // base64 MP3 of the translated utterance
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *SpeechHandler) Translate(w http.ResponseWriter, r *http.Request) {
	artifact, targetLang, session, ok := readUpload(w, r, "audio", 50<<20)
	if !ok {
		return
	}
	if !language.IsSpeechSupported(targetLang) {
		jsonError(w, "unsupported target language: "+targetLang, http.StatusBadRequest)
		return
	}
	sourceLang := r.FormValue("source_lang")

	transcript, err := h.recognizer.SpeechToText(r.Context(), artifact.Data, artifact.Name, sourceLang)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadGateway)
		return
	}
	if strings.TrimSpace(transcript) == "" {
		jsonError(w, "no speech detected", http.StatusUnprocessableEntity)
		return
	}

	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = h.detector.Detect(transcript)
	}

	resp := speechResponse{
		Original:   transcript,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}

	if sourceLang == targetLang {
		resp.Translated = transcript
		resp.Skipped = true
	} else {
		translated, err := h.translator.Translate(r.Context(), transcript, language.NameFor(targetLang))
		if err != nil {
			log.Printf("[speech] translation failed (%s -> %s): %v", sourceLang, targetLang, err)
			resp.Translated = transcript
			resp.Error = err.Error()
			jsonResponse(w, resp, http.StatusOK)
			return
		}
		resp.Translated = translated

		h.history.Append(session, history.Record{
			Original:       transcript,
			SourceLanguage: sourceLang,
			TargetLanguage: targetLang,
			Translated:     translated,
		})
	}

	audio, err := h.synthesizer.TextToSpeech(r.Context(), resp.Translated, targetLang)
	if err != nil {
		// Synthesis is best-effort; the text result still stands.
		log.Printf("[speech] synthesis failed for %s: %v", targetLang, err)
	} else {
		resp.Audio = base64.StdEncoding.EncodeToString(audio)
	}

	jsonResponse(w, resp, http.StatusOK)
}
