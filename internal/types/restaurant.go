package types

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Restaurant is the shape shared by restaurant search results and restaurant bookmarks
type Restaurant struct {
	Name        string      `json:"name"`
	ReviewCount *int        `json:"review_count"`
	Rating      *float64    `json:"rating"`
	Price       *string     `json:"price"`
	Address     *string     `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Description string      `json:"description"`
	ImageURL    *string     `json:"image_url,omitempty"`
	URL         *string     `json:"url"`
}
