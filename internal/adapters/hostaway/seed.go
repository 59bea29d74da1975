package hostaway

import (
	_ "embed"
	"fmt"
	"sync"
)

// seed.json is shaped exactly like a live /reviews response so it exercises
// the same parser as real payloads.
//
//go:embed seed.json
var seedJSON []byte

var (
	seedOnce sync.Once
	seedList []Review
)

// Seed returns the parsed fallback payload. The file is version-controlled
// and contractually valid; failing to parse it is a build defect.
func Seed() []Review {
	seedOnce.Do(func() {
		list, err := ParsePayload(seedJSON)
		if err != nil {
			panic(fmt.Sprintf("hostaway: embedded seed payload invalid: %v", err))
		}
		seedList = list
	})
	return seedList
}
