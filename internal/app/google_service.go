package app

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"flex_reviews/internal/domain"
)

type GoogleMeta struct {
	Source    string // "api" or "mock"
	EnvUseAPI string
	Status    string // sorted, de-duplicated status codes of the per-place calls
	Count     int
}

type GoogleResult struct {
	Reviews []domain.Review
	Meta    GoogleMeta
}

// GoogleService loads reviews place by place. Each mapping's call succeeds
// or falls back to seed on its own; one bad place never poisons the rest.
type GoogleService struct {
	fetcher  domain.GoogleFetcher
	mappings []domain.PlaceMapping
	useAPI   bool
	workers  int64
}

func NewGoogleService(f domain.GoogleFetcher, mappings []domain.PlaceMapping, useAPI bool, workers int) *GoogleService {
	if workers <= 0 {
		workers = 4
	}
	return &GoogleService{fetcher: f, mappings: mappings, useAPI: useAPI, workers: int64(workers)}
}

// Load fans the per-place calls out under a weighted semaphore and merges
// the results in mapping order, so output is deterministic for a fixed
// input regardless of call scheduling.
func (s *GoogleService) Load(ctx context.Context, source string) GoogleResult {
	type placeOut struct {
		reviews []domain.Review
		status  string
		fromAPI bool
	}
	outs := make([]placeOut, len(s.mappings))

	if source != SourceMock {
		sem := semaphore.NewWeighted(s.workers)
		var wg sync.WaitGroup
		for i, m := range s.mappings {
			if err := sem.Acquire(ctx, 1); err != nil {
				break
			}
			wg.Add(1)
			go func(i int, m domain.PlaceMapping) {
				defer wg.Done()
				defer sem.Release(1)
				if fetch := s.fetcher.FetchPlaceReviews(ctx, m.Listing, m.PlaceID); fetch != nil {
					outs[i].status = fetch.Status
					if len(fetch.Reviews) > 0 {
						outs[i].reviews = fetch.Reviews
						outs[i].fromAPI = true
					}
				}
			}(i, m)
		}
		wg.Wait()
	}

	// per-place seed fallback, unless the caller pinned live data
	if source != SourceGoogleOnly {
		for i, m := range s.mappings {
			if !outs[i].fromAPI && len(outs[i].reviews) == 0 {
				outs[i].reviews = s.fetcher.SeedReviews(m.Listing, m.PlaceID)
			}
		}
	}

	usedSource := "mock"
	statusSet := make(map[string]struct{})
	var collected []domain.Review
	for _, out := range outs {
		if out.fromAPI {
			usedSource = "api"
		}
		if out.status != "" {
			statusSet[out.status] = struct{}{}
		}
		collected = append(collected, out.reviews...)
	}

	return GoogleResult{
		Reviews: collected,
		Meta: GoogleMeta{
			Source:    usedSource,
			EnvUseAPI: strconv.FormatBool(s.useAPI),
			Status:    joinStatuses(statusSet),
			Count:     len(collected),
		},
	}
}

func joinStatuses(set map[string]struct{}) string {
	if len(set) == 0 {
		return "n/a"
	}
	codes := make([]string, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return strings.Join(codes, ",")
}
