package app

import (
	"flex_reviews/internal/adapters/wire"
	"flex_reviews/internal/domain"
)

// unknownListing groups reviews whose listing name is empty so they are
// never dropped from the summary.
const unknownListing = "Unknown listing"

// CalculateAverageRating returns the mean of the non-nil ratings, rounded to
// the given precision, or nil when nothing in the slice is rated. An all-nil
// group must read as "no rating", never as zero.
func CalculateAverageRating(reviews []domain.Review, precision int) *float64 {
	var sum float64
	var n int
	for _, r := range reviews {
		if r.Rating == nil {
			continue
		}
		sum += *r.Rating
		n++
	}
	if n == 0 {
		return nil
	}
	avg := wire.Round(sum/float64(n), precision)
	return &avg
}

// SummarizeReviews groups reviews by listing, in first-occurrence order, and
// computes per-group count and average. Count includes unrated reviews; the
// average ignores them.
func SummarizeReviews(reviews []domain.Review) []domain.ReviewSummary {
	order := make([]string, 0, 8)
	groups := make(map[string][]domain.Review, 8)

	for _, r := range reviews {
		key := r.Listing
		if key == "" {
			key = unknownListing
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	out := make([]domain.ReviewSummary, 0, len(order))
	for _, listing := range order {
		group := groups[listing]
		out = append(out, domain.ReviewSummary{
			Listing:   listing,
			Count:     len(group),
			AvgRating: CalculateAverageRating(group, 2),
		})
	}
	return out
}
