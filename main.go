package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/api"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/auth"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/config"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/db"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/dub"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/extract"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/ffmpeg"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/history"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/job"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/pipeline"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/rebuild"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/speech"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/storage"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/translate"
)

func main() {
	cfg := config.Load()

	// Ensure data directory exists
	os.MkdirAll(cfg.DataPath, 0755)

	// Initialize database
	database, err := db.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Ensure admin user exists
	if err := database.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Admin user ensured: %s", cfg.AdminUsername)

	// Detect media tooling; video dubbing degrades without it
	tools := ffmpeg.DetectTools()
	if !tools.FFmpeg || !tools.FFprobe {
		log.Println("WARNING: ffmpeg/ffprobe not found, video translation will fail")
	}

	// Upload and output directories
	store, err := storage.NewStore(cfg.UploadPath, cfg.OutputPath)
	if err != nil {
		log.Fatalf("Failed to prepare storage: %v", err)
	}

	// Translation services
	detector := language.NewDetector()
	translator := translate.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	recognizer := speech.NewWhisperClient(cfg.OpenAIAPIKey)
	synthesizer := speech.NewGoogleTTSClient()
	hist := history.NewStore()
	extractor := extract.New(recognizer)
	pipe := pipeline.New(extractor, detector, translator, hist)
	dubber := rebuild.NewVideoDubber(synthesizer)

	// Job queue for long-running video dubs
	jobQueue := job.NewJobQueue(database.DB())
	defer jobQueue.Stop()

	dubService := dub.NewService(recognizer, detector, translator, dubber, hist, cfg.OutputPath)
	jobQueue.RegisterHandler(job.JobDub, dubService.HandleJob)

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Create router
	router := api.NewRouter(database, jwtService, cfg, jobQueue, &api.Services{
		Pipeline:    pipe,
		Recognizer:  recognizer,
		Synthesizer: synthesizer,
		Detector:    detector,
		Translator:  translator,
		History:     hist,
		Store:       store,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("Translator: %s", translator.Name())

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		jobQueue.Stop()
		database.Close()
		os.Exit(0)
	}()

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
