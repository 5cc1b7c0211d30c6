// ABOUTME: xBhp forum scraper using the forum's own vBulletin search endpoint
// ABOUTME: Extracts threads and their first posts with ordered selector fallbacks

package xbhp

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"bikecompare-scrapers/core/domain"
	"bikecompare-scrapers/core/interfaces"
	"bikecompare-scrapers/core/scrape"
	"bikecompare-scrapers/pkg/utils/text"
)

const (
	maxThreads        = 10
	maxPostsPerThread = 5

	// posts with less cleaned text than this are noise (signatures, "+1"s)
	minPostLen = 20

	unknownAuthor  = "Unknown"
	defaultBaseURL = "https://www.xbhp.com/talkies"
)

// vBulletin id patterns used by the fallback locators.
var (
	threadTitleID = regexp.MustCompile(`^thread_title_\d+$`)
	postMessageID = regexp.MustCompile(`^post_message_\d+$`)
)

// Config controls the forum origin and the politeness delay.
type Config struct {
	// BaseURL is the forum root (".../talkies"); override it in tests
	BaseURL string

	// ThreadDelay is the pause before each thread-page fetch
	ThreadDelay time.Duration
}

// Service scrapes the xBhp forum directly through its search page.
type Service struct {
	deps    interfaces.Dependencies
	cfg     Config
	limiter *rate.Limiter
}

// NewService creates a direct xBhp scraper. An empty base URL falls back to
// the production forum; a zero ThreadDelay disables waiting.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	limiter := rate.NewLimiter(rate.Every(cfg.ThreadDelay), 1)
	if cfg.ThreadDelay > 0 {
		// spend the initial token; the delay must precede every thread
		// fetch, including the first after the listing
		limiter.Allow()
	}
	return &Service{
		deps:    deps,
		cfg:     cfg,
		limiter: limiter,
	}
}

// Scrape searches the forum for both bikes and returns the combined result.
// The returned document is always complete and schema-valid.
func (s *Service) Scrape(ctx context.Context, bike1, bike2 string) (*domain.ForumResult, error) {
	result := domain.NewForumResult(bike1, bike2, time.Now().Format(time.RFC3339), "xbhp")

	for _, key := range []string{"bike1", "bike2"} {
		entity := result.Entity(key)
		if err := s.scrapeEntity(ctx, entity, &result.Metadata); err != nil {
			s.deps.Logger.Error("Error scraping xbhp", map[string]interface{}{
				"bike":  entity.Name,
				"error": err.Error(),
			})
		}
	}

	return result, nil
}

// scrapeEntity fills one entity's threads. A listing failure leaves the
// entity empty; a failed thread fetch skips just that thread.
func (s *Service) scrapeEntity(ctx context.Context, entity *domain.ForumEntity, meta *domain.ForumMetadata) error {
	s.deps.Logger.Info("Searching xbhp", map[string]interface{}{
		"bike": entity.Name,
	})

	params := url.Values{}
	params.Set("do", "process")
	params.Set("query", entity.Name)
	params.Set("titleonly", "0")
	params.Set("searchthreadid", "")
	searchURL := s.cfg.BaseURL + "/search.php?" + params.Encode()

	doc, err := fetchDocument(ctx, s.deps.HTTPClient, searchURL, "xbhp")
	if err != nil {
		return err
	}

	// standard vBulletin markup first, anchor-id pattern as fallback
	threadLinks := scrape.FirstMatch(doc,
		scrape.BySelector("div.threadtitle"),
		scrape.ByIDPattern("a", threadTitleID),
	)

	threadLinks.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxThreads {
			return false
		}

		link := sel
		if sel.Is("div") {
			link = sel.Find("a").First()
		}
		if link.Length() == 0 {
			return true
		}

		href, _ := link.Attr("href")
		title := text.Clean(link.Text())
		threadURL := s.resolveURL(href)
		if title == "" || threadURL == "" {
			return true
		}

		posts, err := s.fetchThreadPosts(ctx, threadURL, title)
		if err != nil {
			s.deps.Logger.Warn("Error processing thread", map[string]interface{}{
				"title": title,
				"error": err.Error(),
			})
			return true
		}

		entity.Threads = append(entity.Threads, domain.Thread{
			Title: title,
			URL:   threadURL,
			Posts: posts,
		})
		meta.TotalThreads++
		meta.TotalPosts += len(posts)
		return true
	})

	s.deps.Logger.Info("Found threads", map[string]interface{}{
		"bike":  entity.Name,
		"count": len(entity.Threads),
	})
	return nil
}

// fetchThreadPosts retrieves the first page of a thread and extracts up to
// five post bodies via the selector fallback chain.
func (s *Service) fetchThreadPosts(ctx context.Context, threadURL, title string) ([]domain.ForumPost, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	s.deps.Logger.Debug("Fetching thread", map[string]interface{}{
		"title": text.Truncate(title, 50),
	})

	doc, err := fetchDocument(ctx, s.deps.HTTPClient, threadURL, "xbhp")
	if err != nil {
		return nil, err
	}

	bodies := scrape.FirstMatch(doc,
		scrape.BySelector("div.postbody"),
		scrape.ByIDPattern("div", postMessageID),
	)

	posts := []domain.ForumPost{}
	bodies.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxPostsPerThread {
			return false
		}

		content := text.Clean(sel.Text())
		if utf8.RuneCountInString(content) < minPostLen {
			return true
		}

		posts = append(posts, domain.ForumPost{
			Author:  s.resolveAuthor(sel),
			Content: text.Truncate(content, domain.MaxForumPostLen),
		})
		return true
	})

	return posts, nil
}

// resolveAuthor finds the author block preceding a post body. vBulletin puts
// the username container before the post content inside the same postbit.
func (s *Service) resolveAuthor(postBody *goquery.Selection) string {
	container := scrape.PreviousMatch(postBody, "div.username_container")
	if container == nil {
		return unknownAuthor
	}
	link := container.Find("a.username").First()
	if link.Length() == 0 {
		return unknownAuthor
	}
	if name := text.Clean(link.Text()); name != "" {
		return name
	}
	return unknownAuthor
}

// resolveURL makes possibly-relative thread links absolute against the forum
// base path.
func (s *Service) resolveURL(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return s.cfg.BaseURL + "/" + strings.TrimPrefix(href, "/")
}
