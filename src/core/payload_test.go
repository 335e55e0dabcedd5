/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package core

import "testing"

func TestActionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind ActionKind
		url  string
	}{
		{"video plain", ActionVideo, "https://youtu.be/dQw4w9WgXcQ"},
		{"audio plain", ActionAudio, "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"url with underscores", ActionVideo, "https://www.youtube.com/watch?v=ab_cd_ef_12"},
		{"audio url with underscores", ActionAudio, "https://youtu.be/_-_-_-_-_-_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := EncodeAction(tt.kind, tt.url)
			kind, url, ok := DecodeAction(payload)
			if !ok {
				t.Fatalf("DecodeAction(%q) not ok", payload)
			}
			if kind != tt.kind || url != tt.url {
				t.Errorf("DecodeAction(%q) = (%q, %q), want (%q, %q)",
					payload, kind, url, tt.kind, tt.url)
			}
		})
	}
}

func TestDecodeActionInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"no separator", "video"},
		{"empty url", "audio_"},
		{"unknown kind", "thumbnail_https://youtu.be/dQw4w9WgXcQ"},
		{"other callback namespace", "help_menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := DecodeAction(tt.payload); ok {
				t.Errorf("DecodeAction(%q) ok, want rejection", tt.payload)
			}
		})
	}
}
