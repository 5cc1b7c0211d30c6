// ABOUTME: Main entry point for the direct xBhp forum scraper binary
// ABOUTME: Wires config, logger and HTTP client into the forum search service

package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"bikecompare-scrapers/core/interfaces"
	"bikecompare-scrapers/core/scrape/xbhp"
	stdhttp "bikecompare-scrapers/infrastructure/http/standard"
	logruslogger "bikecompare-scrapers/infrastructure/logger/logrus"
	"bikecompare-scrapers/pkg/cli"
	"bikecompare-scrapers/pkg/config"
)

func main() {
	os.Exit(cli.Run("xbhp-scraper 'bike1' 'bike2'", os.Args[1:], os.Stdout, os.Stderr, scrape))
}

func scrape(ctx context.Context, bike1, bike2 string) (interface{}, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logruslogger.NewLogrusLogger()
	logger.SetLevel(cfg.LogLevel)

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.Timeout(), cfg.Forum.UserAgent),
		Logger:     logger,
	}

	service := xbhp.NewService(deps, xbhp.Config{
		BaseURL:     cfg.Forum.BaseURL,
		ThreadDelay: cfg.Forum.ThreadDelay(),
	})

	return service.Scrape(ctx, bike1, bike2)
}
