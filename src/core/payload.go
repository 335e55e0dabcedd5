/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package core

import "strings"

// ActionKind names the two download actions a card button can trigger.
type ActionKind string

const (
	ActionVideo ActionKind = "video"
	ActionAudio ActionKind = "audio"
)

// EncodeAction builds the callback payload carried by a download button.
// The wire format is "<kind>_<url>".
func EncodeAction(kind ActionKind, url string) string {
	return string(kind) + "_" + url
}

// DecodeAction parses a callback payload back into its action kind and target URL.
// The payload is split at the first underscore only; URLs may themselves
// contain underscores and must survive the round trip intact.
func DecodeAction(payload string) (ActionKind, string, bool) {
	parts := strings.SplitN(payload, "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", false
	}

	kind := ActionKind(parts[0])
	if kind != ActionVideo && kind != ActionAudio {
		return "", "", false
	}

	return kind, parts[1], true
}
