/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain title", "Never Gonna Give You Up", "Never Gonna Give You Up"},
		{"slashes stripped", `AC/DC - Back\In Black`, "ACDC - BackIn Black"},
		{"all forbidden chars", `a\b/c*d?e:f"g<h>i|j`, "abcdefghij"},
		{"surrounding space trimmed", "  hello  ", "hello"},
		{"empty string", "", ""},
		{"only forbidden chars", `\/*?:"<>|`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilenameLength(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := SanitizeFilename(long)
	if len(got) > 100 {
		t.Errorf("SanitizeFilename output length = %d, want <= 100", len(got))
	}
}

func TestSanitizeFilenameMultibyte(t *testing.T) {
	inputs := []string{
		strings.Repeat("日", 150),
		strings.Repeat("a", 99) + "héllo wörld",
		strings.Repeat("🎵", 120),
	}

	for _, in := range inputs {
		got := SanitizeFilename(in)

		if !utf8.ValidString(got) {
			t.Errorf("SanitizeFilename(%q...) produced invalid UTF-8", in[:10])
		}
		if n := utf8.RuneCountInString(got); n > 100 {
			t.Errorf("SanitizeFilename output rune count = %d, want <= 100", n)
		}
	}
}

func TestSanitizeFilenameProperties(t *testing.T) {
	inputs := []string{
		"normal title",
		`we?ird:"title"|with<every>char/\*`,
		strings.Repeat(`x/`, 300),
		"   spaced   out   ",
	}

	for _, in := range inputs {
		got := SanitizeFilename(in)

		if strings.ContainsAny(got, `\/*?:"<>|`) {
			t.Errorf("SanitizeFilename(%q) = %q still contains forbidden characters", in, got)
		}

		if again := SanitizeFilename(got); again != got {
			t.Errorf("SanitizeFilename is not idempotent for %q: %q != %q", in, got, again)
		}
	}
}
