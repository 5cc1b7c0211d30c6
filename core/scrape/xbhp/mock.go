// ABOUTME: Mock fallback generator producing a fixed xBhp-shaped result without network access
// ABOUTME: Substitute for when live scraping is blocked; downstream consumers stay source-agnostic

package xbhp

import (
	"context"
	"fmt"
	"time"

	"bikecompare-scrapers/core/domain"
	"bikecompare-scrapers/core/interfaces"
)

const mockNote = "Mock data - xBhp scraping requires API access for production use"

// MockService generates canned forum data with the bike names interpolated
// into fixed templates. It reproduces the live scrapers' output schema exactly.
type MockService struct {
	logger interfaces.Logger
}

// NewMockService creates a mock fallback generator.
func NewMockService(logger interfaces.Logger) *MockService {
	return &MockService{logger: logger}
}

// Scrape builds the fixed result: two threads per bike, seven posts total.
func (s *MockService) Scrape(_ context.Context, bike1, bike2 string) (*domain.ForumResult, error) {
	s.logger.Info("Searching xbhp (using fallback mock data)", map[string]interface{}{"bike": bike1})
	s.logger.Info("Searching xbhp (using fallback mock data)", map[string]interface{}{"bike": bike2})

	result := domain.NewForumResult(bike1, bike2, time.Now().Format(time.RFC3339), "xbhp_mock")
	result.Metadata.Note = mockNote

	result.Bike1.Threads = bike1Threads(bike1)
	result.Bike2.Threads = bike2Threads(bike2)

	for _, entity := range []*domain.ForumEntity{&result.Bike1, &result.Bike2} {
		result.Metadata.TotalThreads += len(entity.Threads)
		for _, thread := range entity.Threads {
			result.Metadata.TotalPosts += len(thread.Posts)
		}
		s.logger.Info("Generated mock data", map[string]interface{}{
			"bike":    entity.Name,
			"threads": len(entity.Threads),
		})
	}

	return result, nil
}

func bike1Threads(bike string) []domain.Thread {
	return []domain.Thread{
		{
			Title: fmt.Sprintf("%s - Ownership Review and Discussion", bike),
			URL:   "https://www.xbhp.com/talkies/motorcycles/mock-thread-1.html",
			Posts: []domain.ForumPost{
				{
					Author:  "xBhp Member 1",
					Content: fmt.Sprintf("Picked up the %s last month. Initial impressions are quite positive. Build quality seems solid and the engine feels refined.", bike),
				},
				{
					Author:  "xBhp Member 2",
					Content: fmt.Sprintf("I've been riding the %s for 6 months now. Highway stability is excellent and fuel efficiency is around 40-45 kmpl in city conditions.", bike),
				},
			},
		},
		{
			Title: fmt.Sprintf("%s vs Competition - Buyer's Guide", bike),
			URL:   "https://www.xbhp.com/talkies/motorcycles/mock-thread-2.html",
			Posts: []domain.ForumPost{
				{
					Author:  "xBhp Member 3",
					Content: fmt.Sprintf("For anyone considering the %s, key things to note: suspension tuning is on the softer side, brakes are good, service costs reasonable.", bike),
				},
				{
					Author:  "xBhp Member 7",
					Content: fmt.Sprintf("Test rode the %s back to back with its rivals. Low end torque is where it pulls ahead, though top end feels flat past 100 kmph.", bike),
				},
			},
		},
	}
}

func bike2Threads(bike string) []domain.Thread {
	return []domain.Thread{
		{
			Title: fmt.Sprintf("%s - Long Term Ownership Thread", bike),
			URL:   "https://www.xbhp.com/talkies/motorcycles/mock-thread-3.html",
			Posts: []domain.ForumPost{
				{
					Author:  "xBhp Member 4",
					Content: fmt.Sprintf("The %s has been my daily commuter for over a year. Pros: reliable engine, good parts availability. Cons: vibrations at high RPM.", bike),
				},
				{
					Author:  "xBhp Member 5",
					Content: fmt.Sprintf("Just completed 10,000 km on my %s. Service costs have been minimal. Ride quality is comfortable for city use.", bike),
				},
			},
		},
		{
			Title: fmt.Sprintf("%s Common Issues and Solutions", bike),
			URL:   "https://www.xbhp.com/talkies/motorcycles/mock-thread-4.html",
			Posts: []domain.ForumPost{
				{
					Author:  "xBhp Member 6",
					Content: fmt.Sprintf("My %s had some initial electrical issues but dealer fixed them under warranty. Otherwise a solid bike for the price point.", bike),
				},
			},
		},
	}
}
