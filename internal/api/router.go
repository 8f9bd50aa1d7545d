package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/api/handlers"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/api/middleware"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/auth"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/config"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/db"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/history"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/job"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/pipeline"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/speech"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/storage"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/translate"
)

// Services bundles the translation services the handlers depend on. main
// builds them once and shares them with the job queue handler.
type Services struct {
	Pipeline    *pipeline.Pipeline
	Recognizer  speech.Recognizer
	Synthesizer speech.Synthesizer
	Detector    pipeline.Detector
	Translator  translate.Translator
	History     *history.Store
	Store       *storage.Store
}

func NewRouter(database *db.Database, jwtService *auth.JWTService, cfg *config.Config, jobQueue *job.JobQueue, svc *Services) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(middleware.CORSHandler(cfg.CORSOrigins)))

	// Handlers
	authHandler := handlers.NewAuthHandler(database, jwtService)
	translateHandler := handlers.NewTranslateHandler(svc.Pipeline)
	fileHandler := handlers.NewFileHandler(svc.Pipeline)
	speechHandler := handlers.NewSpeechHandler(svc.Recognizer, svc.Synthesizer, svc.Detector, svc.Translator, svc.History)
	videoHandler := handlers.NewVideoHandler(svc.Store, jobQueue)
	jobHandler := handlers.NewJobHandler(jobQueue, svc.Store)
	historyHandler := handlers.NewHistoryHandler(svc.History)
	languagesHandler := handlers.NewLanguagesHandler()

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/api", func(r chi.Router) {
		// Auth (public, rate limited)
		r.With(loginLimiter.Handler, middleware.MaxBodySize(1<<20)).
			Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(jwtService))

			// Auth
			r.Get("/auth/me", authHandler.Me)

			// Languages
			r.Get("/languages", languagesHandler.List)
			r.Get("/languages/speech", languagesHandler.ListSpeech)

			// Translation (synchronous)
			r.With(middleware.MaxBodySize(1 << 20)).
				Post("/translate/text", translateHandler.Text)
			r.Post("/translate/file", fileHandler.Translate)
			r.Post("/translate/image", translateHandler.Image)
			r.Post("/translate/speech", speechHandler.Translate)

			// Video dubbing (async via job queue)
			r.Post("/translate/video", videoHandler.Translate)
			r.Get("/jobs", jobHandler.ListJobs)
			r.Get("/jobs/{id}", jobHandler.GetJob)
			r.Delete("/jobs/{id}", jobHandler.CancelJob)
			r.Get("/jobs/{id}/download", jobHandler.Download)

			// History
			r.Get("/history", historyHandler.Sessions)
			r.Get("/history/{session}", historyHandler.Get)
		})
	})

	return r
}
