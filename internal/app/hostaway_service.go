package app

import (
	"context"
	"strconv"

	"flex_reviews/internal/domain"
)

// Source overrides recognized by the loaders. Anything else means auto mode:
// prefer live data when the call returned something, else fall back to seed.
const (
	SourceMock         = "mock"
	SourceHostawayOnly = "hostaway-only"
	SourceGoogleOnly   = "google-only"
)

type HostawayMeta struct {
	DataSource string // "hostaway" or "mock"
	EnvUseAPI  string
	Status     string // raw HTTP status of the live call, or "n/a"
	Count      int    // raw item count of the live call
}

type HostawayResult struct {
	Reviews []domain.Review
	Meta    HostawayMeta
}

// HostawayService decides, per load, whether the response is built from live
// data or the seed payload.
type HostawayService struct {
	fetcher domain.HostawayFetcher
	useAPI  bool
}

func NewHostawayService(f domain.HostawayFetcher, useAPI bool) *HostawayService {
	return &HostawayService{fetcher: f, useAPI: useAPI}
}

// Load runs the auto/mock/only decision rule. In "hostaway-only" mode the
// live result is used verbatim, even when empty; mock is never substituted.
func (s *HostawayService) Load(ctx context.Context, source string) HostawayResult {
	dataSource := "mock"
	status := "n/a"
	count := 0
	var reviews []domain.Review

	if source != SourceMock {
		if fetch := s.fetcher.FetchReviews(ctx); fetch != nil {
			status = strconv.Itoa(fetch.Status)
			count = len(fetch.Reviews)
			if source == SourceHostawayOnly || count > 0 {
				reviews = fetch.Reviews
				dataSource = "hostaway"
			}
		}
	}

	if len(reviews) == 0 && source != SourceHostawayOnly {
		reviews = s.fetcher.SeedReviews()
		dataSource = "mock"
	}

	return HostawayResult{
		Reviews: reviews,
		Meta: HostawayMeta{
			DataSource: dataSource,
			EnvUseAPI:  strconv.FormatBool(s.useAPI),
			Status:     status,
			Count:      count,
		},
	}
}
