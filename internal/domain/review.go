package domain

// Review is the canonical shape every provider payload is normalized into.
// Rating sits on a 0-10 scale; nil means the provider gave us nothing usable.
type Review struct {
	ID         int64               `json:"id"`
	Listing    string              `json:"listing"`
	Guest      string              `json:"guest"`
	Date       string              `json:"date"` // RFC3339
	Rating     *float64            `json:"rating"`
	Categories map[string]*float64 `json:"categories"`
	Channel    string              `json:"channel"`
	Type       string              `json:"type"`
	Text       string              `json:"text"`
	Status     *string             `json:"status"`
}

type ReviewSummary struct {
	Listing   string   `json:"listing"`
	Count     int      `json:"count"`
	AvgRating *float64 `json:"avgRating"`
}

// ReviewsResponse is the JSON body shape served by the boundary layer.
type ReviewsResponse struct {
	Reviews []Review        `json:"reviews"`
	Summary []ReviewSummary `json:"summary"`
}
