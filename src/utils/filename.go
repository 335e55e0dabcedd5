/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package utils

import (
	"regexp"
	"strings"
)

const maxFilenameLen = 100

var sanitizeRegex = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename removes invalid characters from a filename to ensure it is safe for the filesystem.
// The result is capped at 100 characters.
func SanitizeFilename(fileName string) string {
	fileName = sanitizeRegex.ReplaceAllString(fileName, "")
	fileName = strings.TrimSpace(fileName)

	if runes := []rune(fileName); len(runes) > maxFilenameLen {
		fileName = strings.TrimSpace(string(runes[:maxFilenameLen]))
	}

	return fileName
}
