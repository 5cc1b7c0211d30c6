// ABOUTME: xBhp forum scraper routed through Google site-search
// ABOUTME: More reliable than the forum's own search, which often blocks or times out

package xbhp

import (
	"context"
	"net/url"
	"strconv"
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
	googleMaxThreads        = 5
	googleMaxPostsPerThread = 3
	googleRequestedResults  = 10

	// only results pointing back into the forum are kept
	forumPathMarker = "xbhp.com/talkies"

	// Google strips the forum's author markup from its cache pages, so the
	// proxied variant can't resolve real usernames
	proxiedAuthor = "xBhp User"

	defaultGoogleBaseURL = "https://www.google.com"
)

// GoogleConfig controls the search origin and the politeness delay.
type GoogleConfig struct {
	// BaseURL is the search engine origin; override it in tests
	BaseURL string

	// ThreadDelay is the pause before each thread-page fetch
	ThreadDelay time.Duration
}

// GoogleService scrapes xBhp threads discovered through a site-scoped Google
// search instead of the forum's own search page.
type GoogleService struct {
	deps    interfaces.Dependencies
	cfg     GoogleConfig
	limiter *rate.Limiter
}

// NewGoogleService creates a Google-proxied xBhp scraper. An empty base URL
// falls back to google.com; a zero ThreadDelay disables waiting.
func NewGoogleService(deps interfaces.Dependencies, cfg GoogleConfig) *GoogleService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGoogleBaseURL
	}
	limiter := rate.NewLimiter(rate.Every(cfg.ThreadDelay), 1)
	if cfg.ThreadDelay > 0 {
		// spend the initial token; the delay must precede every thread
		// fetch, including the first after the listing
		limiter.Allow()
	}
	return &GoogleService{
		deps:    deps,
		cfg:     cfg,
		limiter: limiter,
	}
}

// Scrape searches for both bikes and returns the combined result. The
// returned document is always complete and schema-valid.
func (s *GoogleService) Scrape(ctx context.Context, bike1, bike2 string) (*domain.ForumResult, error) {
	result := domain.NewForumResult(bike1, bike2, time.Now().Format(time.RFC3339), "xbhp")

	for _, key := range []string{"bike1", "bike2"} {
		entity := result.Entity(key)
		if err := s.scrapeEntity(ctx, entity, &result.Metadata); err != nil {
			s.deps.Logger.Error("Error scraping xbhp via google", map[string]interface{}{
				"bike":  entity.Name,
				"error": err.Error(),
			})
		}
	}

	return result, nil
}

// scrapeEntity fills one entity's threads from Google results. A thread whose
// page can't be fetched is still kept with its title and URL; only a listing
// failure empties the entity.
func (s *GoogleService) scrapeEntity(ctx context.Context, entity *domain.ForumEntity, meta *domain.ForumMetadata) error {
	s.deps.Logger.Info("Searching xbhp via google", map[string]interface{}{
		"bike": entity.Name,
	})

	params := url.Values{}
	params.Set("q", "site:"+forumPathMarker+" "+entity.Name)
	params.Set("num", strconv.Itoa(googleRequestedResults))
	searchURL := s.cfg.BaseURL + "/search?" + params.Encode()

	doc, err := fetchDocument(ctx, s.deps.HTTPClient, searchURL, "google")
	if err != nil {
		return err
	}

	doc.Find("div.g").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(entity.Threads) >= googleMaxThreads {
			return false
		}

		link := sel.Find("a").First()
		if link.Length() == 0 {
			return true
		}
		threadURL, _ := link.Attr("href")
		if threadURL == "" || !strings.Contains(threadURL, forumPathMarker) {
			return true
		}

		title := text.Clean(sel.Find("h3").First().Text())
		if title == "" {
			return true
		}

		posts, err := s.fetchThreadPosts(ctx, threadURL, title)
		if err != nil {
			// keep the thread anyway so the result still names the discussion
			s.deps.Logger.Warn("Could not fetch thread content", map[string]interface{}{
				"title": title,
				"error": err.Error(),
			})
			posts = []domain.ForumPost{}
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

// fetchThreadPosts retrieves a thread page and extracts up to three post
// bodies. The selector chain covers classic vBulletin, the forum's newer
// theme, and quoted-content blocks, in that priority order.
func (s *GoogleService) fetchThreadPosts(ctx context.Context, threadURL, title string) ([]domain.ForumPost, error) {
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
		scrape.BySelector("div.js-post__content-text"),
		scrape.BySelector("blockquote.postcontent"),
	)

	posts := []domain.ForumPost{}
	bodies.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= googleMaxPostsPerThread {
			return false
		}

		content := text.Clean(sel.Text())
		if utf8.RuneCountInString(content) < minPostLen {
			return true
		}

		posts = append(posts, domain.ForumPost{
			Author:  proxiedAuthor,
			Content: text.Truncate(content, domain.MaxForumPostLen),
		})
		return true
	})

	return posts, nil
}
