// ABOUTME: Reddit scraper service using the public JSON search endpoint (no authentication)
// ABOUTME: Searches a subreddit for two bike names and collects posts with their top comments

package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"bikecompare-scrapers/core/domain"
	coreerrors "bikecompare-scrapers/core/errors"
	"bikecompare-scrapers/core/interfaces"
	"bikecompare-scrapers/pkg/utils/text"
)

const (
	maxPosts           = 10
	maxCommentsPerPost = 5

	// reddit's "kind" marker for comments, as opposed to "more" stubs
	kindComment = "t1"

	deletedAuthor    = "[deleted]"
	autoModAuthor    = "AutoModerator"
	defaultBaseURL   = "https://www.reddit.com"
	defaultSubreddit = "IndianBikes"
)

// Config controls where the service searches and how politely it does so.
type Config struct {
	// BaseURL is the reddit origin; override it in tests
	BaseURL string

	// Subreddit restricts the search
	Subreddit string

	// CommentDelay is the pause before each comment-tree fetch
	CommentDelay time.Duration
}

// Service scrapes reddit for discussions about two bikes.
type Service struct {
	deps    interfaces.Dependencies
	cfg     Config
	limiter *rate.Limiter
}

// NewService creates a reddit scraper service. An empty base URL or subreddit
// falls back to the production defaults; a zero CommentDelay disables waiting.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Subreddit == "" {
		cfg.Subreddit = defaultSubreddit
	}
	limiter := rate.NewLimiter(rate.Every(cfg.CommentDelay), 1)
	if cfg.CommentDelay > 0 {
		// spend the initial token; the delay must precede every comment
		// fetch, including the first after the listing
		limiter.Allow()
	}
	return &Service{
		deps:    deps,
		cfg:     cfg,
		limiter: limiter,
	}
}

// listing mirrors reddit's JSON listing envelope.
type listing struct {
	Data struct {
		Children []struct {
			Kind string   `json:"kind"`
			Data itemData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// itemData carries the fields shared by posts and comments.
type itemData struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
	NumComments int     `json:"num_comments"`
	Selftext    string  `json:"selftext"`
	Body        string  `json:"body"`
}

// Scrape searches for both bikes and returns the combined result. The
// returned document is always complete and schema-valid; fetch failures only
// empty out the affected entity.
func (s *Service) Scrape(ctx context.Context, bike1, bike2 string) (*domain.RedditResult, error) {
	result := domain.NewRedditResult(bike1, bike2, time.Now().Format(time.RFC3339), s.cfg.Subreddit)

	for _, key := range []string{"bike1", "bike2"} {
		entity := result.Entity(key)
		if err := s.scrapeEntity(ctx, entity, &result.Metadata); err != nil {
			s.deps.Logger.Error("Error scraping reddit", map[string]interface{}{
				"bike":  entity.Name,
				"error": err.Error(),
			})
		}
	}

	return result, nil
}

// scrapeEntity fills one entity's posts. A listing failure leaves the entity
// empty; per-post comment failures are contained inside fetchComments.
func (s *Service) scrapeEntity(ctx context.Context, entity *domain.RedditEntity, meta *domain.RedditMetadata) error {
	s.deps.Logger.Info("Searching reddit", map[string]interface{}{
		"bike":      entity.Name,
		"subreddit": s.cfg.Subreddit,
	})

	params := url.Values{}
	params.Set("q", entity.Name)
	params.Set("restrict_sr", "on")
	params.Set("limit", "10")
	params.Set("sort", "relevance")
	params.Set("type", "link")
	searchURL := fmt.Sprintf("%s/r/%s/search.json?%s", s.cfg.BaseURL, s.cfg.Subreddit, params.Encode())

	var results listing
	if err := s.fetchJSON(ctx, searchURL, &results); err != nil {
		return err
	}

	for i, child := range results.Data.Children {
		if i >= maxPosts {
			break
		}
		postData := child.Data

		post := domain.Post{
			ID:          postData.ID,
			Title:       postData.Title,
			Author:      postData.Author,
			Score:       postData.Score,
			URL:         "https://reddit.com" + postData.Permalink,
			CreatedUTC:  postData.CreatedUTC,
			NumComments: postData.NumComments,
			Selftext:    text.Truncate(postData.Selftext, domain.MaxSelftextLen),
			Comments:    []domain.Comment{},
		}
		if post.Author == "" {
			post.Author = deletedAuthor
		}

		comments, err := s.fetchComments(ctx, postData.Permalink, post.Title)
		if err != nil {
			// keep the post, just without comments
			s.deps.Logger.Warn("Could not fetch comments for post", map[string]interface{}{
				"post_id": post.ID,
				"error":   err.Error(),
			})
		} else {
			post.Comments = comments
		}

		entity.Posts = append(entity.Posts, post)
		meta.TotalPosts++
		meta.TotalComments += len(post.Comments)
	}

	s.deps.Logger.Info("Found posts", map[string]interface{}{
		"bike":  entity.Name,
		"count": len(entity.Posts),
	})
	return nil
}

// fetchComments retrieves the comment tree for a post and keeps the first
// surviving top-level comments. The comment forest is the second element of
// the response array; the first is the post itself. A response without that
// shape yields zero comments, not an error.
func (s *Service) fetchComments(ctx context.Context, permalink, title string) ([]domain.Comment, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	s.deps.Logger.Debug("Fetching comments for post", map[string]interface{}{
		"title": text.Truncate(title, 50),
	})

	var pages []listing
	if err := s.fetchJSON(ctx, s.cfg.BaseURL+permalink+".json", &pages); err != nil {
		return nil, err
	}

	comments := []domain.Comment{}
	if len(pages) < 2 {
		return comments, nil
	}

	for _, child := range pages[1].Data.Children {
		if len(comments) >= maxCommentsPerPost {
			break
		}
		if child.Kind != kindComment {
			continue
		}
		c := child.Data
		if c.Author == deletedAuthor || c.Author == autoModAuthor {
			continue
		}

		comments = append(comments, domain.Comment{
			ID:         c.ID,
			Author:     c.Author,
			Body:       text.Truncate(c.Body, domain.MaxCommentBodyLen),
			Score:      c.Score,
			CreatedUTC: c.CreatedUTC,
		})
	}

	return comments, nil
}

// fetchJSON performs one GET and decodes the body into v.
func (s *Service) fetchJSON(ctx context.Context, fetchURL string, v interface{}) error {
	resp, err := s.deps.HTTPClient.Get(ctx, fetchURL)
	if err != nil {
		return coreerrors.WrapError(err, "request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &coreerrors.FetchError{URL: fetchURL, StatusCode: resp.StatusCode()}
	}

	if err := json.NewDecoder(resp.Body()).Decode(v); err != nil {
		return &coreerrors.ParseError{Source: "reddit", Message: "malformed JSON", Err: err}
	}
	return nil
}
