package menu

import "strings"

// Dedup collapses repeated dishes within one extraction.
// The key is the dish name lower-cased and trimmed; the first
// occurrence wins and input order is preserved.
func Dedup(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := make([]Item, 0, len(items))

	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.DishName))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}

	return out
}
