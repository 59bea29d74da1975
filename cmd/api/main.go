package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	server "flex_reviews/internal/adapters/http_server"
	"flex_reviews/internal/adapters/memcache"
	"flex_reviews/internal/adapters/observability"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	// token cache: in-process unless a Redis address is configured
	var tokens domain.Cache = memcache.New()
	if cfg.RedisAddr != "" {
		tokens = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("token cache backed by redis")
	}

	hostawayClient := hostaway.New(hostaway.Options{
		BaseURL:   cfg.HostawayBase,
		AccountID: cfg.HostawayAccountID,
		APIKey:    cfg.HostawayAPIKey,
		Scope:     cfg.HostawayScope,
		UseAPI:    cfg.HostawayUseAPI,
		Tokens:    tokens,
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

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Reviews: reviews})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Bool("hostaway_live", cfg.HostawayUseAPI).
		Bool("google_live", cfg.GoogleUseAPI).
		Msg("API listening")

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
