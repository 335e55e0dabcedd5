/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package core

import (
	"fmt"

	"github.com/amarnathcjd/gogram/telegram"
)

var HelpBtn = telegram.Button.Data("📖 ʜᴇʟᴘ", "help_menu")

var HomeBtn = telegram.Button.Data("🏠 ʜᴏᴍᴇ", "help_back")

// DownloadKeyboard builds the two-button action row attached to a video card.
func DownloadKeyboard(url string) *telegram.ReplyInlineMarkup {
	videoBtn := telegram.Button.Data("🎥 ᴠɪᴅᴇᴏ", EncodeAction(ActionVideo, url))
	audioBtn := telegram.Button.Data("🎵 ᴀᴜᴅɪᴏ", EncodeAction(ActionAudio, url))

	return telegram.NewKeyboard().
		AddRow(videoBtn, audioBtn).
		Build()
}

func HelpKeyboard() *telegram.ReplyInlineMarkup {
	return telegram.NewKeyboard().
		AddRow(HomeBtn).
		Build()
}

func AddMeMarkup(username string) *telegram.ReplyInlineMarkup {
	addMeBtn := telegram.Button.URL("Aᴅᴅ ᴍᴇ ᴛᴏ ʏᴏᴜʀ ɢʀᴏᴜᴘ", fmt.Sprintf("https://t.me/%s?startgroup=true", username))

	return telegram.NewKeyboard().
		AddRow(addMeBtn).
		AddRow(HelpBtn).
		Build()
}
