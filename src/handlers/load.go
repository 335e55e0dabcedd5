/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package handlers

import (
	"time"

	tg "github.com/amarnathcjd/gogram/telegram"
)

var startTime = time.Now()

// LoadModules loads all the handlers.
// It takes a telegram client as input.
func LoadModules(c *tg.Client) {
	_, _ = c.UpdatesGetState()

	c.On("command:start", startHandler)
	c.On("command:help", helpHandler)
	c.On("command:ping", pingHandler)
	c.On("command:stats", statsHandler)

	c.On("callback:(video|audio)_", downloadCallbackHandler)
	c.On("callback:help_\\w+", helpCallbackHandler)

	c.AddMessageHandler(tg.OnNewMessage, textHandler)

	c.Log.Debug("Handlers loaded successfully.")
}
