package xbhp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestMockScrape_FixedShape(t *testing.T) {
	service := NewMockService(&mockLogger{})

	result, err := service.Scrape(context.Background(), "Royal Enfield Classic 350", "Honda CB350")

	if err != nil {
		t.Fatalf("Scrape returned error: %v", err)
	}
	if len(result.Bike1.Threads) != 2 || len(result.Bike2.Threads) != 2 {
		t.Fatalf("threads = %d/%d, want 2/2", len(result.Bike1.Threads), len(result.Bike2.Threads))
	}
	if result.Metadata.Source != "xbhp_mock" {
		t.Errorf("source = %q, want xbhp_mock", result.Metadata.Source)
	}
	if result.Metadata.TotalThreads != 4 {
		t.Errorf("total_threads = %d, want 4", result.Metadata.TotalThreads)
	}
	if result.Metadata.TotalPosts != 7 {
		t.Errorf("total_posts = %d, want 7", result.Metadata.TotalPosts)
	}
	if result.Metadata.Note == "" {
		t.Error("mock metadata should carry a note")
	}
}

func TestMockScrape_InterpolatesBikeNames(t *testing.T) {
	service := NewMockService(&mockLogger{})

	result, _ := service.Scrape(context.Background(), "Royal Enfield Classic 350", "Honda CB350")

	if !strings.Contains(result.Bike1.Threads[0].Title, "Royal Enfield Classic 350") {
		t.Errorf("bike1 title missing name: %q", result.Bike1.Threads[0].Title)
	}
	if !strings.Contains(result.Bike2.Threads[0].Posts[0].Content, "Honda CB350") {
		t.Errorf("bike2 post missing name: %q", result.Bike2.Threads[0].Posts[0].Content)
	}
}

func TestMockScrape_MatchesLiveSchema(t *testing.T) {
	service := NewMockService(&mockLogger{})

	result, _ := service.Scrape(context.Background(), "Royal Enfield Classic 350", "Honda CB350")

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		t.Fatalf("result did not serialize: %v", err)
	}
	for _, key := range []string{`"bike1"`, `"bike2"`, `"threads"`, `"metadata"`, `"scraped_at"`, `"note"`, `"timestamp": null`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("serialized result missing %s", key)
		}
	}
}
