package google

import (
	_ "embed"
	"fmt"
	"sync"
)

// seed.json mirrors the {places: [...]} envelope so the fallback path runs
// through the same parser as the mock-aware tooling.
//
//go:embed seed.json
var seedJSON []byte

var (
	seedOnce  sync.Once
	seedIndex map[string]Place
)

// seedByPlaceID returns the fallback places keyed by place ID.
func seedByPlaceID() map[string]Place {
	seedOnce.Do(func() {
		places, err := ParseMock(seedJSON)
		if err != nil {
			panic(fmt.Sprintf("google: embedded seed payload invalid: %v", err))
		}
		seedIndex = make(map[string]Place, len(places))
		for _, p := range places {
			if p.PlaceID != "" {
				seedIndex[p.PlaceID] = p
			}
		}
	})
	return seedIndex
}

// Seed exposes the parsed seed places for tests and tooling.
func Seed() []Place {
	idx := seedByPlaceID()
	out := make([]Place, 0, len(idx))
	for _, p := range idx {
		out = append(out, p)
	}
	return out
}
