/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package src

import (
	"fmt"
	"os"

	"rohitmeena/ytfetch/src/config"
	"rohitmeena/ytfetch/src/handlers"

	tg "github.com/amarnathcjd/gogram/telegram"
)

// Init prepares the scratch directory and registers all handlers.
func Init(client *tg.Client) error {
	if err := os.MkdirAll(config.Conf.DownloadsDir, 0755); err != nil {
		return fmt.Errorf("create downloads dir: %w", err)
	}

	handlers.LoadModules(client)
	return nil
}
