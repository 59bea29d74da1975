package google

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/domain"
)

type Options struct {
	BaseURL string
	APIKey  string
	UseAPI  bool
	RPS     int
}

// Client fetches reviews one place at a time with an API-key header. Each
// per-place call succeeds or fails on its own; failures never propagate as
// errors, only as outcome statuses.
type Client struct {
	base   string
	apiKey string
	useAPI bool
	hc     *http.Client
	rl     *rate.Limiter
}

func New(o Options) *Client {
	if o.RPS <= 0 {
		o.RPS = 10
	}
	return &Client{
		base:   strings.TrimRight(o.BaseURL, "/"),
		apiKey: o.APIKey,
		useAPI: o.UseAPI,
		hc:     &http.Client{Timeout: 15 * time.Second},
		rl:     rate.NewLimiter(rate.Limit(o.RPS), o.RPS),
	}
}

// FetchPlaceReviews performs one live place lookup. nil means the live path
// is disabled; a 401 outcome means the flag is on but no key is configured.
func (c *Client) FetchPlaceReviews(ctx context.Context, listing, placeID string) *domain.GoogleFetch {
	if !c.useAPI {
		return nil
	}
	if c.apiKey == "" {
		return &domain.GoogleFetch{Status: "401"}
	}
	if err := c.rl.Wait(ctx); err != nil {
		return &domain.GoogleFetch{Status: "error"}
	}

	endpoint := c.base + "/places/" + url.PathEscape(placeID) + "?fields=reviews"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &domain.GoogleFetch{Status: "error"}
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", "reviews")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("google", "place", 0, time.Since(start))
		log.Warn().Err(err).Str("place", placeID).Msg("google place fetch failed")
		return &domain.GoogleFetch{Status: "error"}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("google", "place", resp.StatusCode, time.Since(start))

	status := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &domain.GoogleFetch{Status: status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.GoogleFetch{Status: "error"}
	}
	place, err := ParsePlaceResponse(body)
	if err != nil {
		log.Warn().Err(err).Str("place", placeID).Msg("google payload rejected")
		return &domain.GoogleFetch{Status: "error"}
	}

	reviews := make([]domain.Review, 0, len(place.Reviews))
	for i, r := range place.Reviews {
		reviews = append(reviews, NormalizeReview(listing, placeID, r, i))
	}
	return &domain.GoogleFetch{Reviews: reviews, Status: status}
}

// SeedReviews yields the normalized fallback reviews for one place, or nil
// when the seed document has no entry for it.
func (c *Client) SeedReviews(listing, placeID string) []domain.Review {
	place, ok := seedByPlaceID()[placeID]
	if !ok {
		return nil
	}
	reviews := make([]domain.Review, 0, len(place.Reviews))
	for i, r := range place.Reviews {
		reviews = append(reviews, NormalizeReview(listing, placeID, r, i))
	}
	return reviews
}
