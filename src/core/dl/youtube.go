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
	"regexp"
	"strings"

	youtube "github.com/kkdai/youtube/v2"
)

// YouTube resolves metadata, search results and media streams for YouTube queries.
type YouTube struct {
	Query    string
	Patterns map[string]*regexp.Regexp

	yt *youtube.Client
}

var youtubePatterns = map[string]*regexp.Regexp{
	"youtube":  regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?youtube\.com/watch\?v=([\w-]{11})(?:[&#?].*)?$`),
	"youtu_be": regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtu\.be/([\w-]{11})(?:[?#].*)?$`),
	"embed":    regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?youtube\.com/embed/([\w-]{11})(?:[?#].*)?$`),
	"v":        regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?youtube\.com/v/([\w-]{11})(?:[?#].*)?$`),
}

// NewYouTube initializes a YouTube service with pre-compiled URL patterns and a cleaned query.
func NewYouTube(query string) *YouTube {
	return &YouTube{
		Query:    clearQuery(query),
		Patterns: youtubePatterns,
		yt:       &youtube.Client{},
	}
}

// clearQuery strips fragments and surrounding whitespace from a query string.
// Trailing URL parameters are tolerated by the patterns themselves.
func clearQuery(query string) string {
	query = strings.SplitN(query, "#", 2)[0]
	return strings.TrimSpace(query)
}

// extractVideoID parses a YouTube URL and extracts the 11-character video ID.
func (y *YouTube) extractVideoID(url string) string {
	for _, pattern := range y.Patterns {
		if match := pattern.FindStringSubmatch(url); len(match) > 1 {
			return match[1]
		}
	}
	return ""
}

// IsValid checks if the query string matches any of the known YouTube URL shapes.
func (y *YouTube) IsValid() bool {
	if y.Query == "" {
		return false
	}

	for _, pattern := range y.Patterns {
		if pattern.MatchString(y.Query) {
			return true
		}
	}
	return false
}

// GetInfo retrieves title, duration, channel, views and thumbnail for the
// video the query points at.
func (y *YouTube) GetInfo(ctx context.Context) (Track, error) {
	videoID := y.extractVideoID(y.Query)
	if videoID == "" {
		return Track{}, ErrInvalidURL
	}

	video, err := y.yt.GetVideoContext(ctx, videoID)
	if err != nil {
		return Track{}, fmt.Errorf("resolve video %s: %w", videoID, err)
	}

	return trackFromVideo(video), nil
}

func trackFromVideo(video *youtube.Video) Track {
	return Track{
		Id:        video.ID,
		Url:       "https://www.youtube.com/watch?v=" + video.ID,
		Title:     video.Title,
		Duration:  int(video.Duration.Seconds()),
		Channel:   video.Author,
		Views:     int64(video.Views),
		Thumbnail: bestThumbnail(video),
	}
}

func bestThumbnail(video *youtube.Video) string {
	if len(video.Thumbnails) == 0 {
		return ""
	}

	best := video.Thumbnails[0]
	for _, t := range video.Thumbnails[1:] {
		if t.Width > best.Width {
			best = t
		}
	}
	return best.URL
}
