// fetch runs one combined review load and prints the result as JSON. Handy
// for checking provider credentials and seeing exactly what the dashboard
// would receive, without standing up the API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	"flex_reviews/internal/adapters/memcache"
	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/shared"
)

func main() {
	source := flag.String("source", "", `source override: "mock", "hostaway-only", or "google-only"`)
	timeout := flag.Duration("timeout", 30*time.Second, "overall load timeout")
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	hostawayClient := hostaway.New(hostaway.Options{
		BaseURL:   cfg.HostawayBase,
		AccountID: cfg.HostawayAccountID,
		APIKey:    cfg.HostawayAPIKey,
		Scope:     cfg.HostawayScope,
		UseAPI:    cfg.HostawayUseAPI,
		Tokens:    memcache.New(),
	})
	googleClient := google.New(google.Options{
		BaseURL: cfg.GoogleBase,
		APIKey:  cfg.GoogleAPIKey,
		UseAPI:  cfg.GoogleUseAPI,
	})
	reviews := app.NewReviewService(
		app.NewHostawayService(hostawayClient, cfg.HostawayUseAPI),
		app.NewGoogleService(googleClient, shared.PlaceMappings(), cfg.GoogleUseAPI, 4),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := reviews.Load(ctx, *source)
	log.Info().
		Str("hostaway_source", result.Meta.Hostaway.DataSource).
		Str("hostaway_status", result.Meta.Hostaway.Status).
		Str("google_source", result.Meta.Google.Source).
		Str("google_status", result.Meta.Google.Status).
		Int("reviews", len(result.Reviews)).
		Msg("load complete")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(domain.ReviewsResponse{Reviews: result.Reviews, Summary: result.Summary}); err != nil {
		log.Fatal().Err(err).Msg("encode result failed")
	}
}
