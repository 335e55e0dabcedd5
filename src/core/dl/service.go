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
)

// Track holds the metadata shown on a video card. It is derived fresh
// from the provider on every request and never cached.
type Track struct {
	Id        string
	Url       string
	Title     string
	Duration  int
	Channel   string
	Views     int64
	Thumbnail string
}

var (
	// ErrInvalidURL means no video identifier could be extracted from the query.
	ErrInvalidURL = errors.New("invalid or unsupported video URL")
	// ErrNoStream means the provider offers no stream of the requested type.
	ErrNoStream = errors.New("no suitable stream available")
)

// MediaService defines a standard interface for a video platform backend.
// Handlers depend only on these operations, so another provider can be
// substituted without touching the controller.
type MediaService interface {
	// IsValid reports whether the service recognizes the query as one of its URLs.
	IsValid() bool
	// GetInfo retrieves metadata for the video the query points at.
	GetInfo(ctx context.Context) (Track, error)
	// Search queries the service for videos matching free text, bounded by limit.
	Search(ctx context.Context, limit int) ([]Track, error)
	// FetchVideo downloads the best progressive stream and returns the local path.
	FetchVideo(ctx context.Context, track Track) (string, error)
	// FetchAudio downloads the best audio-only stream, transcodes it to MP3
	// and returns the local path.
	FetchAudio(ctx context.Context, track Track) (string, error)
}

// Downloader wraps the selected MediaService for a single query.
type Downloader struct {
	Query   string
	Service MediaService
}

// NewDownloader selects the service able to handle the query.
// YouTube is the only backend wired in right now, and also serves as
// the default for free-text searches.
func NewDownloader(query string) *Downloader {
	return &Downloader{
		Query:   query,
		Service: NewYouTube(query),
	}
}

// IsValid checks if the underlying service can handle the query.
func (d *Downloader) IsValid() bool {
	return d.Service != nil && d.Service.IsValid()
}

// GetInfo retrieves metadata by delegating the call to the wrapped service.
func (d *Downloader) GetInfo(ctx context.Context) (Track, error) {
	return d.Service.GetInfo(ctx)
}

// Search performs a search by delegating the call to the wrapped service.
func (d *Downloader) Search(ctx context.Context, limit int) ([]Track, error) {
	return d.Service.Search(ctx, limit)
}

// FetchVideo downloads a progressive video stream via the wrapped service.
func (d *Downloader) FetchVideo(ctx context.Context, track Track) (string, error) {
	return d.Service.FetchVideo(ctx, track)
}

// FetchAudio downloads and extracts an audio track via the wrapped service.
func (d *Downloader) FetchAudio(ctx context.Context, track Track) (string, error) {
	return d.Service.FetchAudio(ctx, track)
}
