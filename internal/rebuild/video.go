package rebuild

import (
	"context"
	"fmt"
	"os"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/ffmpeg"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/speech"
)

// VideoDubber replaces a video's audio track with synthesized speech.
type VideoDubber struct {
	tts speech.Synthesizer
}

func NewVideoDubber(tts speech.Synthesizer) *VideoDubber {
	return &VideoDubber{tts: tts}
}

// Dub synthesizes translated text in the target language and muxes it over
// the video at videoPath, writing the result to outPath. The original audio
// track is fully discarded. The intermediate audio file is removed on all
// paths.
func (d *VideoDubber) Dub(ctx context.Context, videoPath, translatedText, langCode, outPath string) error {
	audio, err := d.tts.TextToSpeech(ctx, translatedText, langCode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRebuildFailed, err)
	}

	audioFile, err := os.CreateTemp("", "dub-tts-*.mp3")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRebuildFailed, err)
	}
	defer os.Remove(audioFile.Name())

	if _, err := audioFile.Write(audio); err != nil {
		audioFile.Close()
		return fmt.Errorf("%w: %v", ErrRebuildFailed, err)
	}
	audioFile.Close()

	if err := ffmpeg.ReplaceAudio(ctx, videoPath, audioFile.Name(), outPath); err != nil {
		return fmt.Errorf("%w: %v", ErrRebuildFailed, err)
	}
	return nil
}
