package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ExtractWAV demuxes the audio track of a media file to a temporary WAV file
// (16 kHz mono PCM, the format recognition engines expect). The caller owns
// the returned path and must remove it on every exit path.
func ExtractWAV(ctx context.Context, mediaPath string) (string, error) {
	tmpFile, err := os.CreateTemp("", "dub-audio-*.wav")
	if err != nil {
		return "", err
	}
	tmpFile.Close()

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner",
		"-loglevel", "error",
		"-i", mediaPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		tmpFile.Name(),
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("ffmpeg: %s: %w", string(output), err)
	}

	return tmpFile.Name(), nil
}
