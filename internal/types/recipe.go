package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Recipe is the shape shared by recipe search results and recipe bookmarks
type Recipe struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ImageURL       *string `json:"image_url,omitempty"`
	URL            *string `json:"url"`
	ReadyInMinutes *int    `json:"readyInMinutes"`
	Servings       *int    `json:"servings"`
}

// OptionalInt accepts a non-negative whole JSON number or numeric string.
// Anything else is absent: search pages may echo placeholders like "N/A"
// back into bookmark requests.
type OptionalInt struct {
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Value = nil
	if string(data) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		o.Value = countFromFloat(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(str)); err == nil && v >= 0 {
			o.Value = &v
		}
	}

	return nil
}

// countFromFloat is nil for fractions, negatives and values past MaxInt32
func countFromFloat(f float64) *int {
	if f < 0 || f > math.MaxInt32 || f != math.Trunc(f) {
		return nil
	}
	v := int(f)
	return &v
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
