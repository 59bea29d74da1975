package hostaway

import (
	"strings"
	"time"

	"flex_reviews/internal/adapters/wire"
	"flex_reviews/internal/domain"
)

const (
	defaultChannel = "hostaway"
	defaultType    = "guest-to-host"
)

// submittedAt arrives either as "2022-06-01 00:00:00" (the sandbox default)
// or as RFC3339 from newer accounts.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// NormalizeReview maps a parsed Hostaway record to the canonical shape.
// When the record carries no overall rating, the mean of its category
// ratings (2 decimal places) stands in; with no categories either, the
// review stays unrated.
func NormalizeReview(in Review) domain.Review {
	cats := make(map[string]*float64, len(in.ReviewCategory))
	var sum float64
	var rated int
	for _, c := range in.ReviewCategory {
		if c.Category == "" {
			continue
		}
		v := c.Rating.Value()
		if v != nil {
			sum += *v
			rated++
		}
		cats[c.Category] = v
	}

	rating := in.Rating.Value()
	if rating == nil && rated > 0 {
		derived := wire.Round(sum/float64(rated), 2)
		rating = &derived
	}

	var id int64
	if v := in.ID.Value(); v != nil {
		id = int64(*v)
	}

	return domain.Review{
		ID:         id,
		Listing:    strings.TrimSpace(in.ListingName),
		Guest:      strings.TrimSpace(in.GuestName),
		Date:       normalizeDate(in.SubmittedAt),
		Rating:     rating,
		Categories: cats,
		Channel:    orDefault(in.Channel, defaultChannel),
		Type:       orDefault(in.Type, defaultType),
		Text:       strings.TrimSpace(in.PublicReview),
		Status:     in.Status,
	}
}

// NormalizeReviews maps a whole batch.
func NormalizeReviews(in []Review) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	for _, r := range in {
		out = append(out, NormalizeReview(r))
	}
	return out
}

// normalizeDate emits RFC3339 UTC. An absent or unparseable timestamp falls
// back to the current time; a review must never be dropped over a bad date.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
