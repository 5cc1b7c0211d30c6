// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with per-scraper User-Agent
// - logger/logrus: Structured logger implementation backed by logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include unit tests against local test servers
//
// # HTTP Client
//
// The HTTP client performs a single attempt per request; failures surface to
// the caller, which decides whether the affected entity, thread, or post is
// skipped or kept empty:
//
//	client := standard.NewStandardHTTPClient(15*time.Second, userAgent)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger()
//	logger.Info("Scraping entity", map[string]interface{}{
//	    "bike":   "Classic 350",
//	    "source": "reddit",
//	})
package infrastructure
