/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"rohitmeena/ytfetch/src/core"
	"rohitmeena/ytfetch/src/core/dl"

	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"
)

const fetchTimeout = 5 * time.Minute

// downloadCallbackHandler runs the download-and-deliver workflow for a
// pressed card button. Every press is handled independently; the only
// state is what the payload itself carries.
func downloadCallbackHandler(cb *telegram.CallbackQuery) error {
	kind, url, ok := core.DecodeAction(cb.DataString())
	if !ok {
		_, _ = cb.Answer("⚠️ This button is no longer valid.", &telegram.CallbackOptions{Alert: true})
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	wrapper := dl.NewDownloader(url)
	track, err := wrapper.GetInfo(ctx)
	if err != nil {
		gologging.WarnF("Callback resolve failed for %q: %v", url, err)
		_, _ = cb.Answer("❌ The video could not be resolved.", &telegram.CallbackOptions{Alert: true})
		return nil
	}

	label := "video"
	if kind == core.ActionAudio {
		label = "audio"
	}

	_, _ = cb.Answer(fmt.Sprintf("⏳ Downloading %s...", label))
	_, _ = cb.Edit(fmt.Sprintf("⏳ <b>Downloading %s:</b> %s", label, track.Title))

	fetchCtx, cancelFetch := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancelFetch()

	var path string
	switch kind {
	case core.ActionVideo:
		path, err = wrapper.FetchVideo(fetchCtx, track)
	case core.ActionAudio:
		path, err = wrapper.FetchAudio(fetchCtx, track)
	}

	if err != nil {
		gologging.ErrorF("Download failed for %s (%s): %v", track.Id, kind, err)
		_, _ = cb.Edit(fmt.Sprintf("❌ <b>Download failed:</b> %s\nPlease try again.", track.Title))
		return nil
	}

	// The scratch file is removed on every exit path past this point.
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil {
			gologging.WarnF("Failed to remove scratch file %s: %v", path, rmErr)
		}
	}()

	caption := fmt.Sprintf("🎬 <b>%s</b>\n👤 %s", track.Title, track.Channel)
	_, err = cb.Client.SendMedia(cb.GetChatID(), path, &telegram.MediaOptions{
		Caption: caption,
	})
	if err != nil {
		gologging.ErrorF("Failed to send %s for %s: %v", label, track.Id, err)
		_, _ = cb.Edit(fmt.Sprintf("❌ <b>Failed to deliver:</b> %s", track.Title))
		return nil
	}

	gologging.InfoF("Delivered %s for %s to chat %d", label, track.Id, cb.GetChatID())
	_, _ = cb.Edit(fmt.Sprintf("✅ <b>Done:</b> %s (%s)", track.Title, label))
	return nil
}
