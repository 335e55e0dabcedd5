/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package dl

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rohitmeena/ytfetch/src/config"
	"rohitmeena/ytfetch/src/utils"

	"github.com/Laky-64/gologging"
	"github.com/google/uuid"
	youtube "github.com/kkdai/youtube/v2"
)

const downloadDirPerm = 0755

// FetchVideo downloads the best progressive MP4 stream to the scratch
// directory, preferring the 720p tier and falling back to the highest
// resolution available.
func (y *YouTube) FetchVideo(ctx context.Context, track Track) (string, error) {
	video, err := y.yt.GetVideoContext(ctx, track.Id)
	if err != nil {
		return "", fmt.Errorf("resolve video %s: %w", track.Id, err)
	}

	format := selectProgressiveFormat(video.Formats)
	if format == nil {
		return "", ErrNoStream
	}

	path, err := scratchPath(track.Title, "mp4")
	if err != nil {
		return "", err
	}

	if err := y.downloadStream(ctx, video, format, path); err != nil {
		return "", err
	}

	return path, nil
}

// FetchAudio downloads the best audio-only stream, transcodes it to MP3
// and removes the intermediate file. If transcoding fails the intermediate
// is removed as well, after its path has been logged.
func (y *YouTube) FetchAudio(ctx context.Context, track Track) (string, error) {
	video, err := y.yt.GetVideoContext(ctx, track.Id)
	if err != nil {
		return "", fmt.Errorf("resolve video %s: %w", track.Id, err)
	}

	format := selectAudioFormat(video.Formats)
	if format == nil {
		return "", ErrNoStream
	}

	rawPath, err := scratchPath(track.Title, "m4a")
	if err != nil {
		return "", err
	}

	if err := y.downloadStream(ctx, video, format, rawPath); err != nil {
		return "", err
	}

	return finishAudio(ctx, rawPath)
}

// finishAudio converts a downloaded stream to MP3. The intermediate file
// is removed on both outcomes; on failure its path is logged first.
func finishAudio(ctx context.Context, rawPath string) (string, error) {
	mp3Path := strings.TrimSuffix(rawPath, ".m4a") + ".mp3"
	if err := transcode(ctx, rawPath, mp3Path); err != nil {
		gologging.WarnF("Transcode failed, removing intermediate file %s", rawPath)
		_ = os.Remove(rawPath)
		return "", fmt.Errorf("extract audio: %w", err)
	}

	_ = os.Remove(rawPath)
	return mp3Path, nil
}

// downloadStream copies one media stream into a scratch file.
// The partial file is removed when the copy fails.
func (y *YouTube) downloadStream(ctx context.Context, video *youtube.Video, format *youtube.Format, path string) error {
	stream, _, err := y.yt.GetStreamContext(ctx, video, format)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	defer stream.Close()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}

	if _, err := io.Copy(file, stream); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf("download stream: %w", err)
	}

	return file.Close()
}

// selectProgressiveFormat picks a pre-muxed audio+video stream.
// MP4 at 720p wins, then the highest MP4 resolution, then any progressive stream.
func selectProgressiveFormat(formats youtube.FormatList) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels == 0 || f.Width == 0 || f.Height == 0 {
			continue
		}

		if best == nil || progressiveRank(f) > progressiveRank(best) {
			best = f
		}
	}
	return best
}

// progressiveRank orders progressive formats: the 720p MP4 tier first,
// then by container and resolution.
func progressiveRank(f *youtube.Format) int {
	rank := f.Height
	if isMP4(f) {
		rank += 10_000
		if f.Height == 720 {
			rank += 10_000
		}
	}
	return rank
}

// selectAudioFormat picks the highest-bitrate audio-only stream,
// preferring the MP4/M4A container.
func selectAudioFormat(formats youtube.FormatList) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels == 0 || f.Width != 0 || f.Height != 0 {
			continue
		}

		if best == nil || audioRank(f) > audioRank(best) {
			best = f
		}
	}
	return best
}

func audioRank(f *youtube.Format) int {
	rank := f.Bitrate
	if isMP4(f) {
		rank += 10_000_000
	}
	return rank
}

func isMP4(f *youtube.Format) bool {
	return strings.Contains(f.MimeType, "mp4")
}

// scratchPath builds a unique file path inside the downloads directory.
// The name carries a per-task token so concurrent downloads of videos with
// colliding titles (or of the same video) never share a path.
func scratchPath(title, ext string) (string, error) {
	dir := config.Conf.DownloadsDir
	if err := os.MkdirAll(dir, downloadDirPerm); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	name := utils.SanitizeFilename(title)
	if name == "" {
		name = "media"
	}

	token := uuid.NewString()[:8]
	return filepath.Join(dir, fmt.Sprintf("%s-%s.%s", name, token, ext)), nil
}
