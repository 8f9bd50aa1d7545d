package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var videoExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".avi": true, ".mov": true,
	".wmv": true, ".flv": true, ".webm": true, ".m4v": true,
	".ts": true, ".mpg": true, ".mpeg": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".m4a": true, ".flac": true,
	".ogg": true, ".aac": true, ".wma": true, ".opus": true,
}

func IsVideoFile(name string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(name))]
}

func IsAudioFile(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// Store manages the upload and output directories.
type Store struct {
	uploadPath string
	outputPath string
}

func NewStore(uploadPath, outputPath string) (*Store, error) {
	for _, dir := range []string{uploadPath, outputPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return &Store{uploadPath: uploadPath, outputPath: outputPath}, nil
}

// SaveUpload writes an uploaded file under a collision-proof name and
// returns its path. The original base name is kept so output filenames
// derived from it stay recognizable.
func (s *Store) SaveUpload(name string, r io.Reader) (string, error) {
	base := sanitizeName(name)
	path := filepath.Join(s.uploadPath, uuid.New().String()[:8]+"_"+base)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// OutputFile resolves a filename inside the output directory, rejecting
// path traversal.
func (s *Store) OutputFile(name string) (string, error) {
	full := filepath.Join(s.outputPath, filepath.Base(name))
	absBase, err := filepath.Abs(s.outputPath)
	if err != nil {
		return "", err
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(absFull, absBase) {
		return "", os.ErrPermission
	}
	return full, nil
}

func (s *Store) OutputPath() string {
	return s.outputPath
}

func (s *Store) Remove(path string) error {
	return os.Remove(path)
}

// OriginalName recovers the uploaded base name from a path produced by
// SaveUpload, stripping the collision prefix.
func OriginalName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '_'); i == 8 && len(base) > 9 {
		return base[9:]
	}
	return base
}

// sanitizeName strips directory components and characters that do not
// survive Content-Disposition headers.
func sanitizeName(name string) string {
	base := filepath.Base(name)
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '"', '\n', '\r':
			return '_'
		}
		return r
	}, base)
	if base == "" || base == "." {
		base = "upload"
	}
	return base
}
