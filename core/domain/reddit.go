// ABOUTME: Reddit domain models for the bike-comparison scrape result
// ABOUTME: Defines the post/comment aggregate and its metadata envelope

package domain

// Truncation limits for scraped text, in runes.
const (
	MaxSelftextLen    = 500
	MaxCommentBodyLen = 300
)

// RedditResult is the top-level aggregate produced by one reddit scrape run.
// It is constructed append-only and serialized exactly once.
type RedditResult struct {
	Bike1    RedditEntity   `json:"bike1"`
	Bike2    RedditEntity   `json:"bike2"`
	Metadata RedditMetadata `json:"metadata"`
}

// RedditEntity holds the posts found for a single bike name.
type RedditEntity struct {
	Name  string `json:"name"`
	Posts []Post `json:"posts"`
}

// Post represents a single reddit submission with its top comments.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Score       int       `json:"score"`
	URL         string    `json:"url"`
	CreatedUTC  float64   `json:"created_utc"`
	NumComments int       `json:"num_comments"`
	Selftext    string    `json:"selftext"`
	Comments    []Comment `json:"comments"`
}

// Comment represents a single top-level comment on a post.
type Comment struct {
	ID         string  `json:"id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
}

// RedditMetadata describes one scrape run. Totals count items actually
// appended to the result, not items seen and filtered out.
type RedditMetadata struct {
	ScrapedAt     string `json:"scraped_at"`
	Source        string `json:"source"`
	Subreddit     string `json:"subreddit"`
	TotalPosts    int    `json:"total_posts"`
	TotalComments int    `json:"total_comments"`
}

// NewRedditResult creates an empty result with both entities initialized so
// serialization always yields the full schema, even when every fetch failed.
func NewRedditResult(bike1, bike2, scrapedAt, subreddit string) *RedditResult {
	return &RedditResult{
		Bike1: RedditEntity{Name: bike1, Posts: []Post{}},
		Bike2: RedditEntity{Name: bike2, Posts: []Post{}},
		Metadata: RedditMetadata{
			ScrapedAt: scrapedAt,
			Source:    "reddit",
			Subreddit: subreddit,
		},
	}
}

// Entity returns the entity for the given key ("bike1" or "bike2").
func (r *RedditResult) Entity(key string) *RedditEntity {
	if key == "bike1" {
		return &r.Bike1
	}
	return &r.Bike2
}
