package domain

import "context"

// HostawayFetch is the outcome of one best-effort live call. Status carries
// the upstream HTTP status; an empty Reviews slice with a 2xx status means
// the server answered but the payload was unusable.
type HostawayFetch struct {
	Reviews []Review
	Status  int
}

// GoogleFetch is the outcome of one per-place call. Status is a stringly
// status code, or "error" for transport failures.
type GoogleFetch struct {
	Reviews []Review
	Status  string
}

type HostawayFetcher interface {
	// FetchReviews returns nil when the live fetch is disabled or the
	// account is not configured. It never returns an error; failures are
	// folded into the outcome.
	FetchReviews(ctx context.Context) *HostawayFetch

	// SeedReviews yields the normalized fallback payload.
	SeedReviews() []Review
}

type GoogleFetcher interface {
	// FetchPlaceReviews returns nil when the live fetch is disabled.
	// A missing API key with the flag on yields a 401 outcome instead.
	FetchPlaceReviews(ctx context.Context, listing, placeID string) *GoogleFetch

	// SeedReviews yields the normalized fallback reviews for one place.
	SeedReviews(listing, placeID string) []Review
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
