package google

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"flex_reviews/internal/adapters/wire"
	"flex_reviews/internal/domain"
)

// Google review IDs are synthesized into a range disjoint from Hostaway's
// upstream numeric IDs.
const idOffset = 1_000_000_000

const (
	channelName     = "google"
	reviewType      = "guest-to-public"
	statusPublished = "published"
	fallbackGuest   = "Google Reviewer"
)

var starRatings = map[string]float64{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

// NormalizeReview maps one Places review to the canonical shape. The ID is
// deterministic for a fixed (placeID, record, index) so repeated loads keep
// stable identities without any provider-side ID.
func NormalizeReview(listing, placeID string, in Review, index int) domain.Review {
	guest := resolveGuest(in)
	text := resolveText(in)

	idSeed := in.ReviewID
	if idSeed == "" {
		idSeed = in.Name
	}
	if idSeed == "" {
		idSeed = in.PublishTime + "-" + guest + "-" + text
	}

	status := statusPublished
	return domain.Review{
		ID:         idOffset + stableHash(placeID+":"+idSeed+":"+strconv.Itoa(index)),
		Listing:    listing,
		Guest:      guest,
		Date:       resolveDate(in),
		Rating:     resolveRating(in),
		Categories: map[string]*float64{},
		Channel:    channelName,
		Type:       reviewType,
		Text:       text,
		Status:     &status,
	}
}

// resolveRating prefers the numeric field, then the star enum, and rescales
// the native 1-5 value onto the 0-10 scale used everywhere else.
func resolveRating(in Review) *float64 {
	if v := in.Rating.Value(); v != nil {
		r := toTenPointScale(*v)
		return &r
	}
	if in.StarRating != "" {
		if mapped, ok := starRatings[strings.ToUpper(in.StarRating)]; ok {
			r := toTenPointScale(mapped)
			return &r
		}
	}
	return nil
}

func toTenPointScale(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 5 {
		v = 5
	}
	return wire.Round(v*2, 1)
}

func resolveGuest(in Review) string {
	if in.Reviewer != nil {
		if s := strings.TrimSpace(in.Reviewer.DisplayName); s != "" {
			return s
		}
	}
	if in.AuthorAttribution != nil {
		if s := strings.TrimSpace(in.AuthorAttribution.DisplayName); s != "" {
			return s
		}
	}
	return fallbackGuest
}

func resolveText(in Review) string {
	if s := strings.TrimSpace(in.Text); s != "" {
		return s
	}
	if in.OriginalText != nil {
		return strings.TrimSpace(in.OriginalText.Text)
	}
	return ""
}

func resolveDate(in Review) string {
	for _, candidate := range []string{in.PublishTime, in.UpdateTime} {
		if candidate == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, candidate); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// stableHash is a 31-based rolling hash over UTF-16 code units, wrapped to
// 32-bit signed and folded to its absolute value.
func stableHash(s string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	if h < 0 {
		return -int64(h)
	}
	return int64(h)
}
