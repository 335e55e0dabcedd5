/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package dl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const transcodeTimeout = 3 * time.Minute

// transcode is swapped out in tests to exercise the cleanup paths
// without an ffmpeg binary.
var transcode = extractAudio

// extractAudio transcodes the audio track of input into an MP3 file at output.
func extractAudio(ctx context.Context, input, output string) error {
	ctx, cancel := context.WithTimeout(ctx, transcodeTimeout)
	defer cancel()

	args := []string{
		"-y",
		"-i", input,
		"-vn",
		"-acodec", "libmp3lame",
		"-q:a", "2",
		output,
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("ffmpeg timed out for %s", input)
	}

	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("ffmpeg failed: %s", msg)
	}

	return nil
}
