package shared

import "flex_reviews/internal/domain"

// Properties is the portfolio served by the dashboard. The Google place IDs
// here must line up with the place IDs in the Google seed payload so the
// per-place fallback finds its reviews.
var Properties = []domain.Property{
	{
		Slug:          "1C Soho Loft",
		Name:          "1C Soho Loft",
		Location:      "Soho, London",
		GooglePlaceID: "ChIJSohoLoft",
	},
	{
		Slug:          "2B N1 A - 29 Shoreditch Heights",
		Name:          "2B N1 A - 29 Shoreditch Heights",
		Location:      "Shoreditch, London",
		GooglePlaceID: "ChIJShoreditchHeights",
	},
	{
		Slug:          "Vast 2 Bed Balcony Flat in Highbury",
		Name:          "Vast 2 Bed Balcony Flat in Highbury",
		Location:      "Highbury, London",
		GooglePlaceID: "ChIJHighburyBalcony",
	},
}

// PlaceMappings lists the properties that have a Google place attached.
func PlaceMappings() []domain.PlaceMapping {
	out := make([]domain.PlaceMapping, 0, len(Properties))
	for _, p := range Properties {
		if p.GooglePlaceID == "" {
			continue
		}
		out = append(out, domain.PlaceMapping{Listing: p.Name, PlaceID: p.GooglePlaceID})
	}
	return out
}
