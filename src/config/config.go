/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded once at startup from the environment.
type Config struct {
	Token   string
	ApiId   int32
	ApiHash string

	DownloadsDir string
	SearchLimit  int
	LoggerId     int64
}

var Conf *Config

const (
	defaultDownloadsDir = "downloads"
	defaultSearchLimit  = 3
	maxSearchLimit      = 5
)

// LoadConfig reads the environment (and an optional .env file) into Conf.
// It returns an error if a required credential is missing.
func LoadConfig() error {
	_ = godotenv.Load()

	token := os.Getenv("TOKEN")
	if token == "" {
		return errors.New("TOKEN is not set")
	}

	apiId, err := strconv.ParseInt(os.Getenv("API_ID"), 10, 32)
	if err != nil {
		return fmt.Errorf("API_ID is missing or not a number: %w", err)
	}

	apiHash := os.Getenv("API_HASH")
	if apiHash == "" {
		return errors.New("API_HASH is not set")
	}

	Conf = &Config{
		Token:        token,
		ApiId:        int32(apiId),
		ApiHash:      apiHash,
		DownloadsDir: getEnv("DOWNLOADS_DIR", defaultDownloadsDir),
		SearchLimit:  getEnvInt("SEARCH_LIMIT", defaultSearchLimit),
		LoggerId:     getEnvInt64("LOGGER_ID", 0),
	}

	if Conf.SearchLimit < 1 {
		Conf.SearchLimit = 1
	} else if Conf.SearchLimit > maxSearchLimit {
		Conf.SearchLimit = maxSearchLimit
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
