package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/ffmpeg"
)

// extractAudio runs speech recognition directly against the uploaded audio.
func (e *Extractor) extractAudio(ctx context.Context, a Artifact) (*Result, error) {
	text, err := e.recognizer.SpeechToText(ctx, a.Data, a.Name, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no speech detected", ErrNoTextFound)
	}
	return &Result{Text: text, Kind: KindAudio}, nil
}

// extractVideo demuxes the audio track to a temporary waveform file and runs
// speech recognition against it. Both temporaries are removed on success and
// failure paths alike.
func (e *Extractor) extractVideo(ctx context.Context, a Artifact) (*Result, error) {
	videoFile, err := os.CreateTemp("", "extract-video-*"+safeExt(a.Name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer os.Remove(videoFile.Name())

	if _, err := videoFile.Write(a.Data); err != nil {
		videoFile.Close()
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	videoFile.Close()

	wavPath, err := ffmpeg.ExtractWAV(ctx, videoFile.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer os.Remove(wavPath)

	wav, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	text, err := e.recognizer.SpeechToText(ctx, wav, "audio.wav", "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no speech detected in video", ErrNoTextFound)
	}

	return &Result{Text: text, Kind: KindVideo}, nil
}

func safeExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && !strings.ContainsAny(name[i:], "/\\") {
		return name[i:]
	}
	return ".bin"
}
