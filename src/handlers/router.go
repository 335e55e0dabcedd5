/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rohitmeena/ytfetch/src/config"
	"rohitmeena/ytfetch/src/core"
	"rohitmeena/ytfetch/src/core/dl"
	"rohitmeena/ytfetch/src/utils"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"
)

const resolveTimeout = 20 * time.Second

// IsYouTubeURL classifies inbound text. The check is a plain substring
// test, matching how users paste links with surrounding text.
func IsYouTubeURL(text string) bool {
	return strings.Contains(text, "youtube.com/watch") || strings.Contains(text, "youtu.be/")
}

// textHandler routes every plain text message: YouTube links go to the
// metadata card flow, everything else is treated as a search query.
func textHandler(m *telegram.NewMessage) error {
	text := strings.TrimSpace(m.Text())
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	if IsYouTubeURL(text) {
		return handleUrl(m, text)
	}

	return handleSearch(m, text)
}

// handleUrl resolves a pasted link and replies with one metadata card
// carrying the two download buttons.
func handleUrl(m *telegram.NewMessage, url string) error {
	updater, err := m.Reply("🔍 Fetching video info...")
	if err != nil {
		gologging.WarnF("Failed to send message: %v", err)
		return telegram.EndGroup
	}

	wrapper := dl.NewDownloader(url)
	if !wrapper.IsValid() {
		_, _ = updater.Edit("❌ Invalid YouTube link.")
		return telegram.EndGroup
	}

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	track, err := wrapper.GetInfo(ctx)
	if err != nil {
		if errors.Is(err, dl.ErrInvalidURL) {
			_, _ = updater.Edit("❌ Invalid YouTube link.")
			return telegram.EndGroup
		}

		gologging.WarnF("Resolve failed for %q: %v", url, err)
		_, _ = updater.Edit("❌ Error processing URL. The video may be private or removed.")
		return telegram.EndGroup
	}

	_, _ = updater.Edit(fmt.Sprintf("✅ <b>%s</b>\nChoose a format below:", track.Title))

	if err := sendTrackCard(m, track); err != nil {
		gologging.WarnF("Failed to send card: %v", err)
		_, _ = updater.Edit("❌ Error processing URL.")
		return telegram.EndGroup
	}

	return nil
}

// handleSearch looks the query up and replies with one card per result.
func handleSearch(m *telegram.NewMessage, query string) error {
	updater, err := m.Reply(fmt.Sprintf("🔍 Searching for <b>%s</b>...", query))
	if err != nil {
		gologging.WarnF("Failed to send message: %v", err)
		return telegram.EndGroup
	}

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	wrapper := dl.NewDownloader(query)
	results, err := wrapper.Search(ctx, config.Conf.SearchLimit)
	if err != nil {
		gologging.WarnF("Search failed for %q: %v", query, err)
		_, _ = updater.Edit("❌ Search failed. Please try again later.")
		return telegram.EndGroup
	}

	if len(results) == 0 {
		_, _ = updater.Edit("😕 No results found. Try a different query.")
		return telegram.EndGroup
	}

	_, _ = updater.Edit(fmt.Sprintf("✅ Found %d result(s) for <b>%s</b>:", len(results), query))

	for _, track := range results {
		if err := sendTrackCard(m, track); err != nil {
			gologging.WarnF("Failed to send card for %s: %v", track.Id, err)
		}
	}

	return nil
}

// sendTrackCard posts one thumbnail card with the download buttons.
// When the provider has no thumbnail the card degrades to plain text.
func sendTrackCard(m *telegram.NewMessage, track dl.Track) error {
	caption := fmt.Sprintf(
		"🎬 <b>%s</b>\n⏱️ %s\n👤 %s\n👁️ %s",
		track.Title,
		utils.SecToMin(track.Duration),
		track.Channel,
		utils.FormatViews(track.Views),
	)
	markup := core.DownloadKeyboard(track.Url)

	if track.Thumbnail == "" {
		_, err := m.Reply(caption, telegram.SendOptions{ReplyMarkup: markup})
		return err
	}

	_, err := m.ReplyMedia(track.Thumbnail, telegram.MediaOptions{
		Caption:     caption,
		ReplyMarkup: markup,
	})
	if err != nil {
		// Thumbnail upload can fail independently of the metadata.
		_, err = m.Reply(caption, telegram.SendOptions{ReplyMarkup: markup})
	}
	return err
}
