/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package main

import (
	"log"
	"time"

	pkg "rohitmeena/ytfetch/src"
	"rohitmeena/ytfetch/src/config"

	tg "github.com/amarnathcjd/gogram/telegram"
)

// main serves as the entry point for the application.
// It loads the configuration, logs the bot in and dispatches updates until shutdown.
func main() {
	if err := config.LoadConfig(); err != nil {
		panic(err)
	}

	clientConfig := tg.ClientConfig{
		AppID:        config.Conf.ApiId,
		AppHash:      config.Conf.ApiHash,
		FloodHandler: handleFlood,
		SessionName:  "bot",
	}

	client, err := tg.NewClient(clientConfig)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Conn()
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	err = client.LoginBot(config.Conf.Token)
	if err != nil {
		log.Fatalf("failed to login: %v", err)
	}

	err = pkg.Init(client)
	if err != nil {
		log.Fatalf("failed to init: %v", err)
	}

	client.Log.Info("The bot is running as @%s.", client.Me().Username)
	if config.Conf.LoggerId != 0 {
		_, _ = client.SendMessage(config.Conf.LoggerId, "The bot has started!")
	}

	client.Idle()
	log.Println("The bot is shutting down...")
	_ = client.Stop()
}

// handleFlood manages flood wait errors by pausing execution for the specified duration.
// It returns true if a flood wait error is handled, and false otherwise.
func handleFlood(err error) bool {
	if wait := tg.GetFloodWait(err); wait > 0 {
		log.Printf("A flood wait has been detected. Sleeping for %ds.", wait)
		time.Sleep(time.Duration(wait) * time.Second)
		return true
	}
	return false
}
