package llm

import "fmt"

func BuildExtractionPrompt() string {
	return `You are a data extraction engine for restaurant menus.

Extract menu information from the image. For each item visible on the menu, extract:
- The dish or drink name
- The price (as a number, in EUR unless stated otherwise)
- The currency (default EUR)
- The category (e.g., "Lunch", "Hot Drinks", "Dessert", "Appetizer", "Main Course", "Beverage")
- Any dietary tags visible (e.g., "V" for vegan, "VE" for vegetarian, "GF" for gluten-free, "L" for lactose-free)
- Portion size if visible (e.g., "16cl", "0.5L")
- Whether it is a daily/weekly special

Also extract the restaurant or cafe name if visible.
If any information is unclear or missing, use reasonable defaults.
If the restaurant name is not visible, use "Unknown Restaurant".

Output rules:
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.

Required JSON schema:
{
  "restaurant_name": "string",
  "items": [
    {
      "dish_name": "string",
      "price": number,
      "currency": "string",
      "category": "string",
      "dietary_tags": ["string"],
      "portion_size": "string or empty",
      "is_daily_special": boolean
    }
  ]
}`
}

func BuildEnrichmentPrompt() string {
	return `You are given a restaurant name in Tampere, Finland. Use web search to find information about the restaurant.

Find:
- The Google Maps rating (e.g., 4.5 out of 5)
- The full street address in Tampere
- The cuisine type (e.g., "Finnish", "Italian", "Asian Fusion", "Specialty Coffee", "Fast Food")

If you cannot find the information, use "Unknown" for text fields and null for the rating.

Output rules:
- Output MUST be valid JSON.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.

Required JSON schema:
{
  "google_rating": number or null,
  "address": "string",
  "cuisine_type": "string"
}`
}

func BuildEnrichmentQuery(restaurantName string) string {
	return fmt.Sprintf(
		"Find the Google rating, address, and cuisine type for the restaurant: %s in Tampere, Finland",
		restaurantName,
	)
}
