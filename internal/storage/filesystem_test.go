package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveUploadKeepsBaseName(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "up"), filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.SaveUpload("report.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(path, "_report.pdf") {
		t.Errorf("path = %q, want original base name preserved", path)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "content" {
		t.Errorf("read back: %q, %v", data, err)
	}
}

func TestSaveUploadStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "up"), filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.SaveUpload("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.Contains(path, "..") {
		t.Errorf("path %q escaped the upload dir", path)
	}
	if filepath.Dir(path) != filepath.Join(dir, "up") {
		t.Errorf("file landed outside the upload dir: %q", path)
	}
}

func TestOutputFileRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "up"), filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.OutputFile("translated_video.mp4")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if filepath.Dir(got) != filepath.Join(dir, "out") {
		t.Errorf("resolved outside output dir: %q", got)
	}

	got, err = s.OutputFile("../secret")
	if err != nil {
		return // rejected outright is fine
	}
	if filepath.Dir(got) != filepath.Join(dir, "out") {
		t.Errorf("traversal escaped output dir: %q", got)
	}
}

func TestOriginalNameStripsPrefix(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "up"), filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.SaveUpload("movie.mp4", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}
	if got := OriginalName(path); got != "movie.mp4" {
		t.Errorf("OriginalName(%q) = %q", path, got)
	}

	// Names without a collision prefix pass through untouched
	if got := OriginalName("/outputs/translated_movie.mp4"); got != "translated_movie.mp4" {
		t.Errorf("OriginalName = %q", got)
	}
}

func TestMediaExtensions(t *testing.T) {
	if !IsVideoFile("clip.MP4") || IsVideoFile("doc.pdf") {
		t.Error("video extension detection wrong")
	}
	if !IsAudioFile("voice.wav") || IsAudioFile("clip.mp4") {
		t.Error("audio extension detection wrong")
	}
}
