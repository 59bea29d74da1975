// Package google adapts the Google Places API (New): wire types, payload
// parsing, normalization, and the per-place review client.
package google

import "flex_reviews/internal/adapters/wire"

// Review is one review as Places ships it. Ratings arrive either as a
// 1-5 number (or numeric string) or as the legacy star enum ONE..FIVE.
type Review struct {
	Name                           string        `json:"name"`
	ReviewID                       string        `json:"reviewId"`
	Text                           string        `json:"text"`
	OriginalText                   *OriginalText `json:"originalText"`
	Rating                         wire.Number   `json:"rating"`
	StarRating                     string        `json:"starRating"`
	PublishTime                    string        `json:"publishTime"`
	UpdateTime                     string        `json:"updateTime"`
	RelativePublishTimeDescription string        `json:"relativePublishTimeDescription"`
	AuthorAttribution              *Attribution  `json:"authorAttribution"`
	Reviewer                       *Reviewer     `json:"reviewer"`
}

type OriginalText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
}

type Attribution struct {
	DisplayName string `json:"displayName"`
	URI         string `json:"uri"`
	PhotoURI    string `json:"photoUri"`
}

type Reviewer struct {
	DisplayName     string `json:"displayName"`
	ProfilePhotoURL string `json:"profilePhotoUrl"`
}

// Place is one entry of the seed document.
type Place struct {
	Name          string   `json:"name"`
	PlaceID       string   `json:"placeId"`
	Listing       string   `json:"listing"`
	GoogleMapsURI string   `json:"googleMapsUri"`
	Reviews       []Review `json:"reviews"`
}

// PlaceReviews is the useful part of a live place lookup.
type PlaceReviews struct {
	PlaceID string
	Reviews []Review
}
