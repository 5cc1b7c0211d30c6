// ABOUTME: Shared HTML fetch helper for the xBhp scraper variants
// ABOUTME: One best-effort GET parsed into a goquery document

package xbhp

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	coreerrors "bikecompare-scrapers/core/errors"
	"bikecompare-scrapers/core/interfaces"
)

// fetchDocument performs one GET and parses the body as HTML. Non-2xx
// statuses become FetchErrors so callers can apply their skip policies.
func fetchDocument(ctx context.Context, client interfaces.HTTPClient, fetchURL, source string) (*goquery.Document, error) {
	resp, err := client.Get(ctx, fetchURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.FetchError{URL: fetchURL, StatusCode: resp.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, &coreerrors.ParseError{Source: source, Message: "malformed HTML", Err: err}
	}
	return doc, nil
}
