// ABOUTME: Main entry point for the reddit scraper binary
// ABOUTME: Wires config, logger and HTTP client into the reddit scrape service

package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"bikecompare-scrapers/core/interfaces"
	"bikecompare-scrapers/core/scrape/reddit"
	stdhttp "bikecompare-scrapers/infrastructure/http/standard"
	logruslogger "bikecompare-scrapers/infrastructure/logger/logrus"
	"bikecompare-scrapers/pkg/cli"
	"bikecompare-scrapers/pkg/config"
)

func main() {
	os.Exit(cli.Run("reddit-scraper 'bike1' 'bike2'", os.Args[1:], os.Stdout, os.Stderr, scrape))
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
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.Timeout(), cfg.Reddit.UserAgent),
		Logger:     logger,
	}

	service := reddit.NewService(deps, reddit.Config{
		BaseURL:      cfg.Reddit.BaseURL,
		Subreddit:    cfg.Reddit.Subreddit,
		CommentDelay: cfg.Reddit.CommentDelay(),
	})

	return service.Scrape(ctx, bike1, bike2)
}
