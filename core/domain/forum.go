// ABOUTME: Forum domain models for xBhp scrape results
// ABOUTME: Defines the thread/post aggregate shared by the direct, proxied and mock scrapers

package domain

// MaxForumPostLen is the truncation limit for forum post content, in runes.
const MaxForumPostLen = 500

// ForumResult is the top-level aggregate produced by one forum scrape run.
type ForumResult struct {
	Bike1    ForumEntity   `json:"bike1"`
	Bike2    ForumEntity   `json:"bike2"`
	Metadata ForumMetadata `json:"metadata"`
}

// ForumEntity holds the threads found for a single bike name.
type ForumEntity struct {
	Name    string   `json:"name"`
	Threads []Thread `json:"threads"`
}

// Thread represents a single forum thread with its first posts.
type Thread struct {
	Title string      `json:"title"`
	URL   string      `json:"url"`
	Posts []ForumPost `json:"posts"`
}

// ForumPost represents one post inside a thread. Timestamp stays null until
// vBulletin date parsing is worth the trouble.
type ForumPost struct {
	Author    string  `json:"author"`
	Content   string  `json:"content"`
	Timestamp *string `json:"timestamp"`
}

// ForumMetadata describes one scrape run. Totals count items actually
// appended, not items seen and filtered out.
type ForumMetadata struct {
	ScrapedAt    string `json:"scraped_at"`
	Source       string `json:"source"`
	Note         string `json:"note,omitempty"`
	TotalThreads int    `json:"total_threads"`
	TotalPosts   int    `json:"total_posts"`
}

// NewForumResult creates an empty result with both entities initialized so
// serialization always yields the full schema.
func NewForumResult(bike1, bike2, scrapedAt, source string) *ForumResult {
	return &ForumResult{
		Bike1: ForumEntity{Name: bike1, Threads: []Thread{}},
		Bike2: ForumEntity{Name: bike2, Threads: []Thread{}},
		Metadata: ForumMetadata{
			ScrapedAt: scrapedAt,
			Source:    source,
		},
	}
}

// Entity returns the entity for the given key ("bike1" or "bike2").
func (r *ForumResult) Entity(key string) *ForumEntity {
	if key == "bike1" {
		return &r.Bike1
	}
	return &r.Bike2
}
