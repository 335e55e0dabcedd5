/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package handlers

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"rohitmeena/ytfetch/src/core"

	"github.com/amarnathcjd/gogram/telegram"
)

const helpText = "<b>📖 How to use me</b>\n\n" +
	"• Send a YouTube link — I reply with a card and two buttons: <b>🎥 Video</b> or <b>🎵 Audio</b>.\n" +
	"• Send any text — I search YouTube and show the top matches, each with its own buttons.\n\n" +
	"<b>Commands:</b>\n" +
	"• <code>/start</code> — Intro message\n" +
	"• <code>/help</code> — This message\n" +
	"• <code>/ping</code> — Check if I am alive\n\n" +
	"Each download is handled on its own; if one fails, just send the link again."

// pingHandler handles the /ping command.
func pingHandler(m *telegram.NewMessage) error {
	start := time.Now()
	updateLag := time.Since(time.Unix(int64(m.Date()), 0)).Milliseconds()

	msg, err := m.Reply("⏱️ Pinging...")
	if err != nil {
		return err
	}

	latency := time.Since(start).Milliseconds()
	uptime := time.Since(startTime).Truncate(time.Second)
	response := fmt.Sprintf(
		"<b>📊 Status</b>\n\n"+
			"⏱️ <b>Latency:</b> <code>%d ms</code>\n"+
			"🕒 <b>Uptime:</b> <code>%s</code>\n"+
			"📩 <b>Update Lag:</b> <code>%d ms</code>\n"+
			"⚙️ <b>Go Routines:</b> <code>%d</code>\n",
		latency, uptime, updateLag, runtime.NumGoroutine(),
	)

	_, err = msg.Edit(response)
	return err
}

// startHandler handles the /start command.
func startHandler(m *telegram.NewMessage) error {
	bot := m.Client.Me()

	response := fmt.Sprintf(
		"🎬 Hello %s!\n\nI am %s, a YouTube downloader bot.\n\n"+
			"Send me a <b>YouTube URL</b> to download it, or any <b>search text</b> to find videos.\n\n"+
			"Click the <b>Help</b> button below for more information.",
		m.Sender.FirstName, bot.FirstName,
	)

	_, err := m.Reply(response, telegram.SendOptions{
		ReplyMarkup: core.AddMeMarkup(bot.Username),
	})
	return err
}

// helpHandler handles the /help command.
func helpHandler(m *telegram.NewMessage) error {
	_, err := m.Reply(helpText, telegram.SendOptions{
		ReplyMarkup: core.HelpKeyboard(),
	})
	return err
}

// helpCallbackHandler handles presses on the help keyboard.
func helpCallbackHandler(cb *telegram.CallbackQuery) error {
	data := cb.DataString()

	if strings.Contains(data, "help_back") {
		response := fmt.Sprintf(
			"🎬 Hello %s!\n\nI am %s, a YouTube downloader bot.\n\n"+
				"Send me a <b>YouTube URL</b> to download it, or any <b>search text</b> to find videos.",
			cb.Sender.FirstName, cb.Client.Me().FirstName,
		)
		_, _ = cb.Edit(response, &telegram.SendOptions{ReplyMarkup: core.AddMeMarkup(cb.Client.Me().Username)})
		return nil
	}

	_, _ = cb.Answer("📖 Opening help...", &telegram.CallbackOptions{Alert: false})
	_, _ = cb.Edit(helpText, &telegram.SendOptions{ReplyMarkup: core.HelpKeyboard()})
	return nil
}
