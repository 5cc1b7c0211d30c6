package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Reddit.BaseURL != "https://www.reddit.com" {
		t.Errorf("reddit base url = %q", cfg.Reddit.BaseURL)
	}
	if cfg.Reddit.Subreddit != "IndianBikes" {
		t.Errorf("subreddit = %q", cfg.Reddit.Subreddit)
	}
	if cfg.Forum.BaseURL != "https://www.xbhp.com/talkies" {
		t.Errorf("forum base url = %q", cfg.Forum.BaseURL)
	}
	if cfg.HTTP.TimeoutSeconds != 15 {
		t.Errorf("timeout = %d, want 15", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.Reddit.CommentDelaySeconds != 1 || cfg.Forum.ThreadDelaySeconds != 2 {
		t.Errorf("delays = %d/%d, want 1/2", cfg.Reddit.CommentDelaySeconds, cfg.Forum.ThreadDelaySeconds)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("REDDIT_SUBREDDIT", "motorcycles")
	t.Setenv("HTTP_TIMEOUT", "5")

	cfg, err := LoadFromEnv()

	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Reddit.Subreddit != "motorcycles" {
		t.Errorf("subreddit = %q, want override", cfg.Reddit.Subreddit)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout())
	}
}

func TestLoadFromEnv_IgnoresUnparsableInt(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-number")

	cfg, _ := LoadFromEnv()

	if cfg.HTTP.TimeoutSeconds != 15 {
		t.Errorf("timeout = %d, want default 15", cfg.HTTP.TimeoutSeconds)
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.HTTP.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero timeout should not validate")
	}

	cfg, _ = LoadFromEnv()
	cfg.Reddit.Subreddit = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty subreddit should not validate")
	}

	cfg, _ = LoadFromEnv()
	cfg.Forum.ThreadDelaySeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative delay should not validate")
	}
}

func TestDelayHelpers(t *testing.T) {
	cfg, _ := LoadFromEnv()

	if cfg.Reddit.CommentDelay() != time.Second {
		t.Errorf("comment delay = %v, want 1s", cfg.Reddit.CommentDelay())
	}
	if cfg.Forum.ThreadDelay() != 2*time.Second {
		t.Errorf("thread delay = %v, want 2s", cfg.Forum.ThreadDelay())
	}
}
