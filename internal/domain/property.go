package domain

// Property is a listing in the portfolio. Name is the grouping key reviews
// are summarized under; GooglePlaceID joins it to the Places provider.
type Property struct {
	Slug          string
	Name          string
	Location      string
	GooglePlaceID string
}

// PlaceMapping ties a listing name to a Google place ID for per-place fetches.
type PlaceMapping struct {
	Listing string
	PlaceID string
}
