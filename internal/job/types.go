package job

import (
	"context"
	"encoding/json"
	"time"
)

// JobType represents the kind of job
type JobType string

const (
	// JobDub replaces a video's audio track with translated synthesized speech.
	JobDub JobType = "dub"
)

// JobStatus represents the current state of a job
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusCancelled JobStatus = "cancelled"
)

// Job represents a queued long-running task (video dubbing)
type Job struct {
	ID          string          `json:"id"`
	Type        JobType         `json:"type"`
	Status      JobStatus       `json:"status"`
	FilePath    string          `json:"file_path"`
	Params      json.RawMessage `json:"params"`
	Progress    float64         `json:"progress"`
	Result      json.RawMessage `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	StartedAt   *time.Time      `json:"started_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// DubParams are parameters for a video dubbing job
type DubParams struct {
	SourceLang string `json:"source_lang"` // "auto" or a supported code
	TargetLang string `json:"target_lang"` // "es", "ta", etc.
	Session    string `json:"session"`     // history session key
}

// DubResult is the output of a successful dubbing job
type DubResult struct {
	OutputPath string `json:"output_path"` // path to the dubbed video
	Filename   string `json:"filename"`    // delivery filename
	SourceLang string `json:"source_lang"` // detected source language
	Transcript string `json:"transcript"`  // recognized speech
	Translated string `json:"translated"`  // translated transcript
}

// JobHandler processes a job. Implementations are provided by the dub service.
type JobHandler func(ctx context.Context, job *Job, updateProgress func(float64)) error
