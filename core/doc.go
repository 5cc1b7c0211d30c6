// Package core contains the business logic for the bike comparison scrapers.
// It is designed to be framework-agnostic and can be used independently
// of any CLI or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure result models (RedditResult, ForumResult, etc.)
// - scrape: Shared HTML locator helpers for fallback selector chains
// - scrape/reddit: Reddit public JSON search scraper
// - scrape/xbhp: xBhp forum scrapers (direct, Google-proxied, and mock)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Result models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "bikecompare-scrapers/core/interfaces"
//	    "bikecompare-scrapers/core/scrape/reddit"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := reddit.NewService(deps, reddit.Config{})
//
//	// Compare two bikes
//	result, err := svc.Scrape(ctx, "Classic 350", "Hness CB350")
package core
