// ABOUTME: Configuration management for the scrapers with environment variable support
// ABOUTME: Defines source endpoints, identification headers and politeness delays

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

const (
	// descriptive bot string; reddit's public JSON endpoint is fine with it
	defaultRedditUserAgent = "VehicleResearchBot/1.0 (Educational Research)"

	// browser impersonation; xBhp and Google block obvious bot agents
	defaultBrowserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds all scraper configuration
type Config struct {
	// LogLevel is the minimum diagnostic level (debug/info/warn/error)
	LogLevel string

	// HTTP contains shared HTTP client configuration
	HTTP HTTPConfig

	// Reddit contains reddit-specific configuration
	Reddit RedditConfig

	// Forum contains xBhp/Google-specific configuration
	Forum ForumConfig
}

// HTTPConfig holds shared HTTP client configuration
type HTTPConfig struct {
	// TimeoutSeconds is the per-request timeout
	TimeoutSeconds int
}

// RedditConfig holds reddit scraper configuration
type RedditConfig struct {
	// BaseURL is the reddit origin
	BaseURL string

	// Subreddit restricts the search
	Subreddit string

	// UserAgent identifies the scraper to reddit
	UserAgent string

	// CommentDelaySeconds is the pause between comment-tree fetches
	CommentDelaySeconds int
}

// ForumConfig holds xBhp scraper configuration
type ForumConfig struct {
	// BaseURL is the forum root
	BaseURL string

	// GoogleBaseURL is the search engine origin for the proxied variant
	GoogleBaseURL string

	// UserAgent identifies the scraper to the forum and to Google
	UserAgent string

	// ThreadDelaySeconds is the pause between thread-page fetches
	ThreadDelaySeconds int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT", 15),
		},
		Reddit: RedditConfig{
			BaseURL:             getEnvOrDefault("REDDIT_BASE_URL", "https://www.reddit.com"),
			Subreddit:           getEnvOrDefault("REDDIT_SUBREDDIT", "IndianBikes"),
			UserAgent:           getEnvOrDefault("REDDIT_USER_AGENT", defaultRedditUserAgent),
			CommentDelaySeconds: getEnvAsIntOrDefault("REDDIT_COMMENT_DELAY", 1),
		},
		Forum: ForumConfig{
			BaseURL:            getEnvOrDefault("XBHP_BASE_URL", "https://www.xbhp.com/talkies"),
			GoogleBaseURL:      getEnvOrDefault("GOOGLE_BASE_URL", "https://www.google.com"),
			UserAgent:          getEnvOrDefault("FORUM_USER_AGENT", defaultBrowserUserAgent),
			ThreadDelaySeconds: getEnvAsIntOrDefault("XBHP_THREAD_DELAY", 2),
		},
	}

	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// CommentDelay returns the reddit politeness delay as a duration
func (c *RedditConfig) CommentDelay() time.Duration {
	return time.Duration(c.CommentDelaySeconds) * time.Second
}

// ThreadDelay returns the forum politeness delay as a duration
func (c *ForumConfig) ThreadDelay() time.Duration {
	return time.Duration(c.ThreadDelaySeconds) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTP.TimeoutSeconds < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.Reddit.BaseURL == "" {
		return errors.New("reddit base url cannot be empty")
	}

	if c.Reddit.Subreddit == "" {
		return errors.New("subreddit cannot be empty")
	}

	if c.Forum.BaseURL == "" {
		return errors.New("forum base url cannot be empty")
	}

	if c.Forum.GoogleBaseURL == "" {
		return errors.New("google base url cannot be empty")
	}

	if c.Reddit.CommentDelaySeconds < 0 || c.Forum.ThreadDelaySeconds < 0 {
		return errors.New("politeness delays cannot be negative")
	}

	return nil
}
