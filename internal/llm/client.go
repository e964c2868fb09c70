package llm

import (
	"context"

	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
)

// Extractor converts raw image bytes into a validated menu extraction.
type Extractor interface {
	ExtractMenu(ctx context.Context, imageData []byte, mediaType string) (*menu.Extraction, error)
}

// Enricher looks up restaurant details by name via web search.
type Enricher interface {
	EnrichRestaurant(ctx context.Context, restaurantName string) (*menu.Enrichment, error)
}
