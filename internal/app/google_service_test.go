package app_test

import (
	"context"
	"sync"
	"testing"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

// fakeGoogleFetcher serves canned per-place results keyed by place ID.
type fakeGoogleFetcher struct {
	mu      sync.Mutex
	byPlace map[string]*domain.GoogleFetch
	seeds   map[string][]domain.Review
	calls   int
}

func (f *fakeGoogleFetcher) FetchPlaceReviews(_ context.Context, _, placeID string) *domain.GoogleFetch {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.byPlace[placeID]
}

func (f *fakeGoogleFetcher) SeedReviews(_, placeID string) []domain.Review {
	return f.seeds[placeID]
}

func testMappings() []domain.PlaceMapping {
	return []domain.PlaceMapping{
		{Listing: "Listing A", PlaceID: "place-a"},
		{Listing: "Listing B", PlaceID: "place-b"},
	}
}

func googleReviews(listing string, n int) []domain.Review {
	out := make([]domain.Review, n)
	for i := range out {
		out[i] = domain.Review{ID: int64(1_000_000_000 + i), Listing: listing}
	}
	return out
}

func TestGoogleLoad_MockOverrideSkipsFetches(t *testing.T) {
	f := &fakeGoogleFetcher{
		byPlace: map[string]*domain.GoogleFetch{
			"place-a": {Reviews: googleReviews("Listing A", 1), Status: "200"},
		},
		seeds: map[string][]domain.Review{
			"place-a": googleReviews("Listing A", 2),
			"place-b": googleReviews("Listing B", 1),
		},
	}
	svc := app.NewGoogleService(f, testMappings(), true, 4)

	got := svc.Load(context.Background(), app.SourceMock)

	if f.calls != 0 {
		t.Fatalf("fetch calls: %d", f.calls)
	}
	if got.Meta.Source != "mock" || got.Meta.Status != "n/a" || got.Meta.Count != 3 {
		t.Fatalf("meta: %+v", got.Meta)
	}
}

func TestGoogleLoad_PerPlaceFallback(t *testing.T) {
	// place-a answers, place-b errors; only place-b gets seed data.
	f := &fakeGoogleFetcher{
		byPlace: map[string]*domain.GoogleFetch{
			"place-a": {Reviews: googleReviews("Listing A", 2), Status: "200"},
			"place-b": {Status: "403"},
		},
		seeds: map[string][]domain.Review{
			"place-a": googleReviews("Listing A", 9),
			"place-b": googleReviews("Listing B", 1),
		},
	}
	svc := app.NewGoogleService(f, testMappings(), true, 4)

	got := svc.Load(context.Background(), "")

	if got.Meta.Source != "api" {
		t.Fatalf("source: %q", got.Meta.Source)
	}
	if got.Meta.Status != "200,403" {
		t.Fatalf("status: %q", got.Meta.Status)
	}
	if got.Meta.Count != 3 {
		t.Fatalf("count: %d", got.Meta.Count)
	}
	// mapping order is preserved: live A reviews first, then seeded B
	if got.Reviews[0].Listing != "Listing A" || got.Reviews[2].Listing != "Listing B" {
		t.Fatalf("order: %+v", got.Reviews)
	}
}

func TestGoogleLoad_AllCallsFailFallsBackToSeed(t *testing.T) {
	f := &fakeGoogleFetcher{
		byPlace: map[string]*domain.GoogleFetch{
			"place-a": {Status: "500"},
			"place-b": {Status: "500"},
		},
		seeds: map[string][]domain.Review{
			"place-a": googleReviews("Listing A", 1),
			"place-b": googleReviews("Listing B", 1),
		},
	}
	svc := app.NewGoogleService(f, testMappings(), true, 4)

	got := svc.Load(context.Background(), "")

	if got.Meta.Source != "mock" || got.Meta.Status != "500" || got.Meta.Count != 2 {
		t.Fatalf("meta: %+v", got.Meta)
	}
}

func TestGoogleLoad_OnlyModeSkipsSeedFallback(t *testing.T) {
	f := &fakeGoogleFetcher{
		byPlace: map[string]*domain.GoogleFetch{
			"place-a": {Status: "404"},
			"place-b": {Status: "404"},
		},
		seeds: map[string][]domain.Review{
			"place-a": googleReviews("Listing A", 4),
		},
	}
	svc := app.NewGoogleService(f, testMappings(), true, 4)

	got := svc.Load(context.Background(), app.SourceGoogleOnly)

	if len(got.Reviews) != 0 {
		t.Fatalf("expected no seed substitution, got %d reviews", len(got.Reviews))
	}
	if got.Meta.Source != "mock" || got.Meta.Status != "404" {
		t.Fatalf("meta: %+v", got.Meta)
	}
}

func TestGoogleLoad_DisabledFetcherUsesSeeds(t *testing.T) {
	f := &fakeGoogleFetcher{
		byPlace: map[string]*domain.GoogleFetch{}, // nil per place, like a disabled client
		seeds: map[string][]domain.Review{
			"place-a": googleReviews("Listing A", 1),
			"place-b": googleReviews("Listing B", 2),
		},
	}
	svc := app.NewGoogleService(f, testMappings(), false, 4)

	got := svc.Load(context.Background(), "")

	if got.Meta.Source != "mock" || got.Meta.Status != "n/a" || got.Meta.Count != 3 {
		t.Fatalf("meta: %+v", got.Meta)
	}
	if got.Meta.EnvUseAPI != "false" {
		t.Fatalf("envUseAPI: %q", got.Meta.EnvUseAPI)
	}
}

func TestGoogleLoad_SingleWorkerStaysDeterministic(t *testing.T) {
	f := &fakeGoogleFetcher{
		byPlace: map[string]*domain.GoogleFetch{
			"place-a": {Reviews: googleReviews("Listing A", 1), Status: "200"},
			"place-b": {Reviews: googleReviews("Listing B", 1), Status: "200"},
		},
	}
	svc := app.NewGoogleService(f, testMappings(), true, 1)

	got := svc.Load(context.Background(), "")

	if len(got.Reviews) != 2 {
		t.Fatalf("reviews: %d", len(got.Reviews))
	}
	if got.Reviews[0].Listing != "Listing A" || got.Reviews[1].Listing != "Listing B" {
		t.Fatalf("order: %+v", got.Reviews)
	}
}
