package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

type Handlers struct{ Reviews *app.ReviewService }

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Get("/api/reviews", h.getReviews)
	// route kept for dashboard clients that still call the original path
	s.mux.Get("/api/reviews/hostaway", h.getReviews)
}

// getReviews serves the combined load. The body carries only reviews and
// summary; all diagnostics ride on headers so operators can inspect a load
// without changing the payload contract.
func (h *Handlers) getReviews(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	result := h.Reviews.Load(r.Context(), source)

	body := domain.ReviewsResponse{Reviews: result.Reviews, Summary: result.Summary}
	if body.Reviews == nil {
		body.Reviews = []domain.Review{}
	}
	if body.Summary == nil {
		body.Summary = []domain.ReviewSummary{}
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("x-data-source", result.Meta.Hostaway.DataSource)
	w.Header().Set("x-env-use-api", result.Meta.Hostaway.EnvUseAPI)
	w.Header().Set("x-hostaway-status", result.Meta.Hostaway.Status)
	w.Header().Set("x-hostaway-raw-count", strconv.Itoa(result.Meta.Hostaway.Count))
	w.Header().Set("x-google-source", result.Meta.Google.Source)
	w.Header().Set("x-google-env-use-api", result.Meta.Google.EnvUseAPI)
	w.Header().Set("x-google-status", result.Meta.Google.Status)
	w.Header().Set("x-google-count", strconv.Itoa(result.Meta.Google.Count))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("write reviews response failed")
	}
}
