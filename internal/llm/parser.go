package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
)

// ParseExtraction validates model output against the extraction schema
// and applies the documented defaults.
func ParseExtraction(raw string) (*menu.Extraction, error) {
	raw = stripFences(raw)

	if !json.Valid([]byte(raw)) {
		return nil, errors.New("extraction model returned non-json output")
	}

	var extraction menu.Extraction
	if err := json.Unmarshal([]byte(raw), &extraction); err != nil {
		return nil, fmt.Errorf("invalid extraction JSON: %w", err)
	}

	if strings.TrimSpace(extraction.RestaurantName) == "" {
		extraction.RestaurantName = "Unknown Restaurant"
	}

	for i := range extraction.Items {
		item := &extraction.Items[i]
		if strings.TrimSpace(item.DishName) == "" {
			return nil, fmt.Errorf("extraction item %d has empty dish_name", i)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("extraction item %q has negative price", item.DishName)
		}
		if item.Currency == "" {
			item.Currency = "EUR"
		}
		if item.DietaryTags == nil {
			item.DietaryTags = []string{}
		}
	}

	return &extraction, nil
}

// ParseEnrichment validates model output against the enrichment schema.
func ParseEnrichment(raw string) (*menu.Enrichment, error) {
	raw = stripFences(raw)

	if !json.Valid([]byte(raw)) {
		return nil, errors.New("enrichment model returned non-json output")
	}

	var enrichment menu.Enrichment
	if err := json.Unmarshal([]byte(raw), &enrichment); err != nil {
		return nil, fmt.Errorf("invalid enrichment JSON: %w", err)
	}

	if enrichment.GoogleRating != nil {
		r := *enrichment.GoogleRating
		if r < 0 || r > 5 {
			return nil, fmt.Errorf("google_rating %.2f out of range", r)
		}
	}
	if strings.TrimSpace(enrichment.Address) == "" {
		enrichment.Address = "Unknown"
	}
	if strings.TrimSpace(enrichment.CuisineType) == "" {
		enrichment.CuisineType = "Unknown"
	}

	return &enrichment, nil
}

// stripFences removes a markdown code fence if the model wrapped its
// JSON in one despite the prompt rules.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
