package google

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseMock validates a seed document shaped {places: [...]}. Place IDs
// missing from an entry are derived from its resource name.
func ParseMock(b []byte) ([]Place, error) {
	var envelope struct {
		Places []Place `json:"places" validate:"required"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, fmt.Errorf("google: decode mock payload: %w", err)
	}
	if err := validate.Struct(envelope); err != nil {
		return nil, fmt.Errorf("google: mock payload shape: %w", err)
	}
	for i := range envelope.Places {
		if envelope.Places[i].PlaceID == "" {
			envelope.Places[i].PlaceID = extractPlaceID(envelope.Places[i].Name)
		}
	}
	return envelope.Places, nil
}

// ParsePlaceResponse validates a live place lookup, shaped {name, reviews}.
// The resource name is mandatory; its trailing segment is the place ID.
func ParsePlaceResponse(b []byte) (PlaceReviews, error) {
	var resp struct {
		Name    string   `json:"name" validate:"required"`
		Reviews []Review `json:"reviews"`
	}
	if err := json.Unmarshal(b, &resp); err != nil {
		return PlaceReviews{}, fmt.Errorf("google: decode place response: %w", err)
	}
	if err := validate.Struct(resp); err != nil {
		return PlaceReviews{}, fmt.Errorf("google: place response shape: %w", err)
	}
	return PlaceReviews{PlaceID: extractPlaceID(resp.Name), Reviews: resp.Reviews}, nil
}

// extractPlaceID returns the last non-empty /-separated segment of a
// resource name like "places/ChIJ...", or "" when there is none.
func extractPlaceID(name string) string {
	segments := strings.Split(name, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}
