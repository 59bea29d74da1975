package app_test

import (
	"context"
	"testing"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

type fakeHostawayFetcher struct {
	fetch      *domain.HostawayFetch
	seed       []domain.Review
	fetchCalls int
}

func (f *fakeHostawayFetcher) FetchReviews(_ context.Context) *domain.HostawayFetch {
	f.fetchCalls++
	return f.fetch
}

func (f *fakeHostawayFetcher) SeedReviews() []domain.Review { return f.seed }

func seedSet(n int) []domain.Review {
	out := make([]domain.Review, n)
	for i := range out {
		out[i] = domain.Review{ID: int64(i + 1), Listing: "Seed Listing"}
	}
	return out
}

func TestHostawayLoad_MockOverrideSkipsFetch(t *testing.T) {
	f := &fakeHostawayFetcher{
		fetch: &domain.HostawayFetch{Reviews: seedSet(3), Status: 200},
		seed:  seedSet(2),
	}
	svc := app.NewHostawayService(f, true)

	got := svc.Load(context.Background(), app.SourceMock)

	if f.fetchCalls != 0 {
		t.Fatalf("fetch calls: %d", f.fetchCalls)
	}
	if got.Meta.DataSource != "mock" || got.Meta.Status != "n/a" || got.Meta.Count != 0 {
		t.Fatalf("meta: %+v", got.Meta)
	}
	if len(got.Reviews) != 2 {
		t.Fatalf("reviews: %d", len(got.Reviews))
	}
}

func TestHostawayLoad_LiveDataWins(t *testing.T) {
	f := &fakeHostawayFetcher{
		fetch: &domain.HostawayFetch{Reviews: seedSet(3), Status: 200},
		seed:  seedSet(2),
	}
	svc := app.NewHostawayService(f, true)

	got := svc.Load(context.Background(), "")

	if got.Meta.DataSource != "hostaway" || got.Meta.Status != "200" || got.Meta.Count != 3 {
		t.Fatalf("meta: %+v", got.Meta)
	}
	if len(got.Reviews) != 3 {
		t.Fatalf("reviews: %d", len(got.Reviews))
	}
}

func TestHostawayLoad_EmptyLiveFallsBackToSeed(t *testing.T) {
	f := &fakeHostawayFetcher{
		fetch: &domain.HostawayFetch{Reviews: nil, Status: 200},
		seed:  seedSet(2),
	}
	svc := app.NewHostawayService(f, true)

	got := svc.Load(context.Background(), "")

	if got.Meta.DataSource != "mock" {
		t.Fatalf("dataSource: %q", got.Meta.DataSource)
	}
	// the raw call outcome is still reported
	if got.Meta.Status != "200" || got.Meta.Count != 0 {
		t.Fatalf("meta: %+v", got.Meta)
	}
	if len(got.Reviews) != 2 {
		t.Fatalf("reviews: %d", len(got.Reviews))
	}
}

func TestHostawayLoad_FetcherDisabledFallsBackToSeed(t *testing.T) {
	f := &fakeHostawayFetcher{fetch: nil, seed: seedSet(1)}
	svc := app.NewHostawayService(f, false)

	got := svc.Load(context.Background(), "")

	if got.Meta.DataSource != "mock" || got.Meta.Status != "n/a" {
		t.Fatalf("meta: %+v", got.Meta)
	}
	if got.Meta.EnvUseAPI != "false" {
		t.Fatalf("envUseAPI: %q", got.Meta.EnvUseAPI)
	}
	if len(got.Reviews) != 1 {
		t.Fatalf("reviews: %d", len(got.Reviews))
	}
}

func TestHostawayLoad_OnlyModePinsEmptyLiveResult(t *testing.T) {
	f := &fakeHostawayFetcher{
		fetch: &domain.HostawayFetch{Reviews: nil, Status: 200},
		seed:  seedSet(5),
	}
	svc := app.NewHostawayService(f, true)

	got := svc.Load(context.Background(), app.SourceHostawayOnly)

	if got.Meta.DataSource != "hostaway" {
		t.Fatalf("dataSource: %q", got.Meta.DataSource)
	}
	if len(got.Reviews) != 0 {
		t.Fatalf("expected no seed substitution, got %d reviews", len(got.Reviews))
	}
}

func TestHostawayLoad_OnlyModeErrorStatusStaysLive(t *testing.T) {
	f := &fakeHostawayFetcher{
		fetch: &domain.HostawayFetch{Reviews: nil, Status: 500},
		seed:  seedSet(5),
	}
	svc := app.NewHostawayService(f, true)

	got := svc.Load(context.Background(), app.SourceHostawayOnly)

	if got.Meta.DataSource != "hostaway" || got.Meta.Status != "500" {
		t.Fatalf("meta: %+v", got.Meta)
	}
	if len(got.Reviews) != 0 {
		t.Fatalf("reviews: %d", len(got.Reviews))
	}
}
