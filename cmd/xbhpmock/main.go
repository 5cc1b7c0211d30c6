// ABOUTME: Main entry point for the mock xBhp fallback binary
// ABOUTME: Emits canned forum data in the live scrapers' schema, no network access

package main

import (
	"context"
	"os"

	"bikecompare-scrapers/core/scrape/xbhp"
	logruslogger "bikecompare-scrapers/infrastructure/logger/logrus"
	"bikecompare-scrapers/pkg/cli"
)

func main() {
	os.Exit(cli.Run("xbhp-mock-scraper 'bike1' 'bike2'", os.Args[1:], os.Stdout, os.Stderr, scrape))
}

func scrape(ctx context.Context, bike1, bike2 string) (interface{}, error) {
	service := xbhp.NewMockService(logruslogger.NewLogrusLogger())
	return service.Scrape(ctx, bike1, bike2)
}
