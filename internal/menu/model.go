package menu

// Item is one entry extracted from a menu image.
// Immutable once produced by the extraction client.
type Item struct {
	DishName       string   `json:"dish_name"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	Category       string   `json:"category"`
	DietaryTags    []string `json:"dietary_tags"`
	PortionSize    string   `json:"portion_size,omitempty"`
	IsDailySpecial bool     `json:"is_daily_special"`
}

// Extraction is the result of one extraction call on one image.
type Extraction struct {
	RestaurantName string `json:"restaurant_name"`
	Items          []Item `json:"items"`
}

// Enrichment holds web-sourced restaurant details.
// GoogleRating is nil when no rating could be found.
type Enrichment struct {
	GoogleRating *float64 `json:"google_rating"`
	Address      string   `json:"address"`
	CuisineType  string   `json:"cuisine_type"`
}

// EnrichedExtraction joins one extraction with its enrichment.
// This is the unit the store persists, one row per item.
type EnrichedExtraction struct {
	RestaurantName string   `json:"restaurant_name"`
	CuisineType    string   `json:"cuisine_type"`
	GoogleRating   *float64 `json:"google_rating"`
	Address        string   `json:"address"`
	Items          []Item   `json:"items"`
}
