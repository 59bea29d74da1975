package hostaway

import (
	"encoding/json"
	"fmt"
)

// ParsePayload extracts the review list from a raw Hostaway response body.
// The sandbox wraps the list in either {result: [...]} or {data: [...]};
// result wins when both are present. A payload with neither key is an empty
// (but valid) response.
func ParsePayload(b []byte) ([]Review, error) {
	var envelope struct {
		Result *[]Review `json:"result"`
		Data   *[]Review `json:"data"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, fmt.Errorf("hostaway: decode payload: %w", err)
	}

	var list []Review
	switch {
	case envelope.Result != nil:
		list = *envelope.Result
	case envelope.Data != nil:
		list = *envelope.Data
	}

	for i := range list {
		if list[i].ID.Value() == nil {
			return nil, fmt.Errorf("hostaway: review %d: missing numeric id", i)
		}
	}
	return list, nil
}
