package job

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
	CREATE TABLE jobs (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		file_path TEXT NOT NULL,
		params TEXT NOT NULL,
		progress REAL DEFAULT 0,
		result TEXT,
		error TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		started_at DATETIME,
		completed_at DATETIME
	)`)
	if err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func TestEnqueueAndGet(t *testing.T) {
	q := NewJobQueue(testDB(t))
	defer q.Stop()

	j, err := q.Enqueue(JobDub, "/uploads/video.mp4", DubParams{TargetLang: "es"})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if j.ID == "" {
		t.Fatal("job ID not assigned")
	}

	got, err := q.GetJob(j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != JobDub || got.FilePath != "/uploads/video.mp4" {
		t.Errorf("job = %+v", got)
	}

	var params DubParams
	if err := json.Unmarshal(got.Params, &params); err != nil {
		t.Fatalf("unmarshal params: %v", err)
	}
	if params.TargetLang != "es" {
		t.Errorf("target_lang = %q", params.TargetLang)
	}
}

func TestJobProcessing(t *testing.T) {
	q := NewJobQueue(testDB(t))
	defer q.Stop()

	done := make(chan struct{})
	q.RegisterHandler(JobDub, func(ctx context.Context, j *Job, updateProgress func(float64)) error {
		updateProgress(0.5)
		result, _ := json.Marshal(DubResult{OutputPath: "/outputs/translated_video.mp4"})
		j.Result = result
		close(done)
		return nil
	})

	j, err := q.Enqueue(JobDub, "video.mp4", DubParams{TargetLang: "ta"})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler never ran")
	}

	// Completion is written after the handler returns; poll briefly.
	deadline := time.Now().Add(5 * time.Second)
	for {
		got, err := q.GetJob(j.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status == StatusCompleted {
			var res DubResult
			if err := json.Unmarshal(got.Result, &res); err != nil {
				t.Fatalf("result not persisted: %v", err)
			}
			if res.OutputPath != "/outputs/translated_video.mp4" {
				t.Errorf("result = %+v", res)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("job never completed, status %s", got.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestCancelPendingJob(t *testing.T) {
	q := NewJobQueue(testDB(t))
	q.Stop() // stop the worker so the job stays pending

	j, err := q.Enqueue(JobDub, "video.mp4", DubParams{TargetLang: "fr"})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if err := q.CancelJob(j.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := q.GetJob(j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
}

func TestListJobsNewestFirst(t *testing.T) {
	q := NewJobQueue(testDB(t))
	q.Stop()

	first, _ := q.Enqueue(JobDub, "a.mp4", DubParams{})
	time.Sleep(10 * time.Millisecond)
	second, _ := q.Enqueue(JobDub, "b.mp4", DubParams{})

	jobs, err := q.ListJobs()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs", len(jobs))
	}
	if jobs[0].ID != second.ID || jobs[1].ID != first.ID {
		t.Error("jobs not ordered newest first")
	}
}
