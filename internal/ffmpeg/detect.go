package ffmpeg

import (
	"log"
	"os/exec"
	"sync"
)

// Tools reports which external media binaries are present on PATH.
type Tools struct {
	FFmpeg  bool `json:"ffmpeg"`
	FFprobe bool `json:"ffprobe"`
}

var (
	cachedTools *Tools
	detectOnce  sync.Once
)

// DetectTools probes PATH for ffmpeg and ffprobe. Detection runs once and
// the result is cached.
func DetectTools() *Tools {
	detectOnce.Do(func() {
		cachedTools = &Tools{
			FFmpeg:  lookPath("ffmpeg"),
			FFprobe: lookPath("ffprobe"),
		}
		log.Printf("[ffmpeg] tool detection: ffmpeg=%v ffprobe=%v",
			cachedTools.FFmpeg, cachedTools.FFprobe)
	})
	return cachedTools
}

func lookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
