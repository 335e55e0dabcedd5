/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package dl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rohitmeena/ytfetch/src/config"

	youtube "github.com/kkdai/youtube/v2"
)

func progressive(height, bitrate int, mime string) youtube.Format {
	return youtube.Format{
		MimeType:      mime,
		Width:         height * 16 / 9,
		Height:        height,
		Bitrate:       bitrate,
		AudioChannels: 2,
	}
}

func audioOnly(bitrate int, mime string) youtube.Format {
	return youtube.Format{
		MimeType:      mime,
		Bitrate:       bitrate,
		AudioChannels: 2,
	}
}

func videoOnly(height int) youtube.Format {
	return youtube.Format{
		MimeType: `video/mp4; codecs="avc1.640028"`,
		Width:    height * 16 / 9,
		Height:   height,
		Bitrate:  2_000_000,
	}
}

func TestSelectProgressiveFormat(t *testing.T) {
	tests := []struct {
		name       string
		formats    youtube.FormatList
		wantHeight int
		wantNil    bool
	}{
		{
			name: "prefers 720p mp4 over higher resolution",
			formats: youtube.FormatList{
				progressive(1080, 5_000_000, `video/mp4; codecs="avc1"`),
				progressive(720, 2_000_000, `video/mp4; codecs="avc1"`),
				progressive(360, 700_000, `video/mp4; codecs="avc1"`),
			},
			wantHeight: 720,
		},
		{
			name: "falls back to highest available",
			formats: youtube.FormatList{
				progressive(360, 700_000, `video/mp4; codecs="avc1"`),
				progressive(480, 1_000_000, `video/mp4; codecs="avc1"`),
			},
			wantHeight: 480,
		},
		{
			name: "ignores video-only and audio-only streams",
			formats: youtube.FormatList{
				videoOnly(2160),
				audioOnly(160_000, `audio/mp4; codecs="mp4a.40.2"`),
				progressive(360, 700_000, `video/mp4; codecs="avc1"`),
			},
			wantHeight: 360,
		},
		{
			name: "no progressive stream at all",
			formats: youtube.FormatList{
				videoOnly(1080),
				audioOnly(160_000, `audio/webm; codecs="opus"`),
			},
			wantNil: true,
		},
		{name: "empty format list", formats: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectProgressiveFormat(tt.formats)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("got format %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("got nil format")
			}
			if got.Height != tt.wantHeight {
				t.Errorf("selected height = %d, want %d", got.Height, tt.wantHeight)
			}
		})
	}
}

func TestSelectAudioFormat(t *testing.T) {
	formats := youtube.FormatList{
		progressive(360, 700_000, `video/mp4; codecs="avc1"`),
		audioOnly(128_000, `audio/webm; codecs="opus"`),
		audioOnly(64_000, `audio/mp4; codecs="mp4a.40.2"`),
		audioOnly(160_000, `audio/mp4; codecs="mp4a.40.2"`),
	}

	got := selectAudioFormat(formats)
	if got == nil {
		t.Fatal("got nil format")
	}
	if got.Bitrate != 160_000 || !strings.Contains(got.MimeType, "mp4") {
		t.Errorf("selected %+v, want highest-bitrate mp4 audio", got)
	}

	if f := selectAudioFormat(youtube.FormatList{videoOnly(720)}); f != nil {
		t.Errorf("selectAudioFormat on video-only list = %+v, want nil", f)
	}
}

func TestScratchPathUnique(t *testing.T) {
	config.Conf = &config.Config{DownloadsDir: t.TempDir()}

	a, err := scratchPath("Same Title", "m4a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := scratchPath("Same Title", "m4a")
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Errorf("two scratch paths for the same title collide: %q", a)
	}
}

func TestScratchPathSanitized(t *testing.T) {
	config.Conf = &config.Config{DownloadsDir: t.TempDir()}

	path, err := scratchPath(`Weird/Title: "Part*2"`, "mp4")
	if err != nil {
		t.Fatal(err)
	}

	base := filepath.Base(path)
	if strings.ContainsAny(base, `\/*?:"<>|`) {
		t.Errorf("scratch file name %q contains forbidden characters", base)
	}
	if !strings.HasSuffix(base, ".mp4") {
		t.Errorf("scratch file name %q missing extension", base)
	}
	if !strings.Contains(base, "WeirdTitle") {
		t.Errorf("scratch file name %q does not derive from the title", base)
	}
}

func TestFinishAudioCleansUpIntermediate(t *testing.T) {
	tests := []struct {
		name    string
		stub    func(ctx context.Context, input, output string) error
		wantErr bool
	}{
		{
			name: "transcode succeeds",
			stub: func(_ context.Context, _, output string) error {
				return os.WriteFile(output, []byte("mp3"), 0644)
			},
		},
		{
			name: "transcode fails",
			stub: func(context.Context, string, string) error {
				return errors.New("exit status 1")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := transcode
			transcode = tt.stub
			defer func() { transcode = orig }()

			rawPath := filepath.Join(t.TempDir(), "Some Song-1a2b3c4d.m4a")
			if err := os.WriteFile(rawPath, []byte("m4a"), 0644); err != nil {
				t.Fatal(err)
			}

			path, err := finishAudio(context.Background(), rawPath)

			if tt.wantErr {
				if err == nil {
					t.Fatal("finishAudio returned nil error")
				}
				if !strings.Contains(err.Error(), "extract audio") {
					t.Errorf("error %q missing transcode context", err)
				}
			} else {
				if err != nil {
					t.Fatalf("finishAudio: %v", err)
				}
				want := strings.TrimSuffix(rawPath, ".m4a") + ".mp3"
				if path != want {
					t.Errorf("output path = %q, want %q", path, want)
				}
			}

			if _, statErr := os.Stat(rawPath); !os.IsNotExist(statErr) {
				t.Errorf("intermediate file %q still present", rawPath)
			}
		})
	}
}

func TestScratchPathEmptyTitle(t *testing.T) {
	config.Conf = &config.Config{DownloadsDir: t.TempDir()}

	path, err := scratchPath(`\/*?:"<>|`, "mp3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(filepath.Base(path), "media-") {
		t.Errorf("scratch file name %q missing fallback stem", filepath.Base(path))
	}
}
