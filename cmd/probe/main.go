// ABOUTME: Selector diagnostics tool for the HTML scrapers
// ABOUTME: Fetches a live listing page and reports hit counts for every candidate selector

package main

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	_ "github.com/joho/godotenv/autoload"

	"bikecompare-scrapers/pkg/config"
)

// The forum and Google both change their markup without notice. When a
// scraper starts coming back empty, this tool shows which selectors still
// match so the fallback chains can be re-derived.

func main() {
	if len(os.Args) != 3 || (os.Args[1] != "xbhp" && os.Args[1] != "google") {
		fmt.Fprintln(os.Stderr, "Usage: probe xbhp|google 'query'")
		os.Exit(1)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mode, query := os.Args[1], os.Args[2]

	var target string
	var selectors []string
	switch mode {
	case "xbhp":
		params := url.Values{}
		params.Set("do", "process")
		params.Set("query", query)
		params.Set("titleonly", "0")
		params.Set("searchthreadid", "")
		target = cfg.Forum.BaseURL + "/search.php?" + params.Encode()
		selectors = []string{
			"div.threadtitle",
			"a[id^='thread_title_']",
			"li.threadbit",
			"li.searchresult",
			"ol#threads",
			"h3",
			"a",
		}
	case "google":
		params := url.Values{}
		params.Set("q", "site:xbhp.com/talkies "+query)
		params.Set("num", "10")
		target = cfg.Forum.GoogleBaseURL + "/search?" + params.Encode()
		selectors = []string{
			"div.g",
			"div.tF2Cxc",
			"h3",
			"a",
		}
	}

	if err := probe(target, cfg.Forum.UserAgent, selectors, mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// probe visits the target once and prints a selector hit-count report.
func probe(target, userAgent string, selectors []string, mode string) error {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(15 * time.Second)

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("fetch failed (status %d): %w", r.StatusCode, err)
	})

	c.OnResponse(func(r *colly.Response) {
		fmt.Printf("Probing: %s\n", target)
		fmt.Printf("Status:  %d, %d bytes\n\n", r.StatusCode, len(r.Body))

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			visitErr = err
			return
		}

		if title := doc.Find("title").First().Text(); title != "" {
			fmt.Printf("Page title: %s\n\n", strings.TrimSpace(title))
		}

		for _, sel := range selectors {
			fmt.Printf("%-28s %d\n", sel, doc.Find(sel).Length())
		}

		bodyText := strings.ToLower(doc.Text())
		if mode == "google" && strings.Contains(bodyText, "captcha") {
			fmt.Println("\nwarning: page mentions a captcha, automated requests may be blocked")
		}
		if mode == "xbhp" && (strings.Contains(bodyText, "no results") || strings.Contains(bodyText, "no threads")) {
			fmt.Println("\nwarning: page contains a no-results message")
		}

		if mode == "google" {
			count := 0
			doc.Find("a").Each(func(_ int, s *goquery.Selection) {
				if href, ok := s.Attr("href"); ok && strings.Contains(href, "xbhp.com") {
					count++
				}
			})
			fmt.Printf("\nlinks into xbhp.com: %d\n", count)
		}
	})

	if err := c.Visit(target); err != nil {
		return err
	}
	return visitErr
}
