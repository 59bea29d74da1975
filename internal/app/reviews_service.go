package app

import (
	"context"
	"strconv"

	"flex_reviews/internal/domain"
)

type Meta struct {
	Hostaway HostawayMeta
	Google   GoogleMeta
}

type LoadResult struct {
	Reviews []domain.Review
	Summary []domain.ReviewSummary
	Meta    Meta
}

// ReviewService is the combined orchestrator: it runs both provider loads,
// concatenates their review sets, and summarizes the union. Review IDs stay
// unique across the merge because Google IDs live in a disjoint range.
type ReviewService struct {
	hostaway *HostawayService
	google   *GoogleService
}

func NewReviewService(h *HostawayService, g *GoogleService) *ReviewService {
	return &ReviewService{hostaway: h, google: g}
}

// Load evaluates the source override independently per provider. A
// "<provider>-only" override pins that provider to its live result and
// skips the other provider entirely.
func (s *ReviewService) Load(ctx context.Context, source string) LoadResult {
	var reviews []domain.Review
	var meta Meta

	if source != SourceGoogleOnly {
		h := s.hostaway.Load(ctx, source)
		reviews = append(reviews, h.Reviews...)
		meta.Hostaway = h.Meta
	} else {
		meta.Hostaway = HostawayMeta{
			DataSource: "skipped",
			EnvUseAPI:  strconv.FormatBool(s.hostaway.useAPI),
			Status:     "n/a",
		}
	}

	if source != SourceHostawayOnly {
		g := s.google.Load(ctx, source)
		reviews = append(reviews, g.Reviews...)
		meta.Google = g.Meta
	} else {
		meta.Google = GoogleMeta{
			Source:    "skipped",
			EnvUseAPI: strconv.FormatBool(s.google.useAPI),
			Status:    "n/a",
		}
	}

	return LoadResult{
		Reviews: reviews,
		Summary: SummarizeReviews(reviews),
		Meta:    meta,
	}
}
