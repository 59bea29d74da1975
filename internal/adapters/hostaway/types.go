// Package hostaway adapts the Hostaway property-management API: wire types,
// payload parsing, normalization into the canonical review shape, and the
// OAuth client that fetches live data.
package hostaway

import "flex_reviews/internal/adapters/wire"

// Review is one review record as Hostaway ships it. Numeric fields use
// wire.Number because the sandbox mixes numbers and numeric strings.
type Review struct {
	ID             wire.Number `json:"id"`
	Type           string      `json:"type"`
	Status         *string     `json:"status"`
	Rating         wire.Number `json:"rating"`
	PublicReview   string      `json:"publicReview"`
	ReviewCategory []Category  `json:"reviewCategory"`
	SubmittedAt    string      `json:"submittedAt"`
	GuestName      string      `json:"guestName"`
	ListingName    string      `json:"listingName"`
	Channel        string      `json:"channel"`
}

type Category struct {
	Category string      `json:"category"`
	Rating   wire.Number `json:"rating"`
}
