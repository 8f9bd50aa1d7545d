package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
)

// ReplaceAudio muxes videoPath with audioPath into outPath, discarding the
// original audio track entirely. The video stream is stream-copied; the new
// audio is encoded to AAC so the result plays in common containers.
func ReplaceAudio(ctx context.Context, videoPath, audioPath, outPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", "aac",
		"-shortest",
		"-y",
		outPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg mux: %s: %w", string(output), err)
	}
	return nil
}
