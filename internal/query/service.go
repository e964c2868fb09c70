package query

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/josesiqueira/tampere-food-intelligence/internal/store"
)

var ErrNotFound = errors.New("no matching records")

// RowSource is the read side of the CSV store.
type RowSource interface {
	Rows() ([]store.Row, error)
}

// Service answers lookups over the persisted menu rows.
type Service struct {
	source RowSource
}

func NewService(source RowSource) *Service {
	return &Service{source: source}
}

// --------------------------------------------------
// Totals & listings
// --------------------------------------------------

func (s *Service) TotalRecords() (int, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Service) Restaurants() ([]string, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return nil, err
	}
	return uniqueSorted(rows, func(r store.Row) string { return r.RestaurantName }), nil
}

// CountEntry is one value with its record count, most common first.
type CountEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

func (s *Service) Categories() ([]CountEntry, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return nil, err
	}
	return countBy(rows, func(r store.Row) string { return r.Category }), nil
}

func (s *Service) CuisineTypes() ([]CountEntry, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return nil, err
	}
	return countBy(rows, func(r store.Row) string { return r.CuisineType }), nil
}

// --------------------------------------------------
// Filtered lookups (case-insensitive partial match)
// --------------------------------------------------

func (s *Service) DishesByCategory(category string) ([]store.Row, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return nil, err
	}
	return filterRows(rows, category, func(r store.Row) string { return r.Category }), nil
}

func (s *Service) RestaurantsByCuisine(cuisine string) ([]string, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return nil, err
	}
	matches := filterRows(rows, cuisine, func(r store.Row) string { return r.CuisineType })
	return uniqueSorted(matches, func(r store.Row) string { return r.RestaurantName }), nil
}

// RestaurantDetails is the restaurant-level view plus its menu rows.
type RestaurantDetails struct {
	RestaurantName string      `json:"restaurant_name"`
	CuisineType    string      `json:"cuisine_type"`
	GoogleRating   string      `json:"google_rating"`
	Address        string      `json:"address"`
	Items          []store.Row `json:"items"`
}

func (s *Service) RestaurantDetails(name string) (*RestaurantDetails, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return nil, err
	}

	matches := filterRows(rows, name, func(r store.Row) string { return r.RestaurantName })
	if len(matches) == 0 {
		return nil, ErrNotFound
	}

	// Restaurant-level info comes from the first matching row.
	first := matches[0]
	return &RestaurantDetails{
		RestaurantName: first.RestaurantName,
		CuisineType:    first.CuisineType,
		GoogleRating:   first.GoogleRating,
		Address:        first.Address,
		Items:          matches,
	}, nil
}

// --------------------------------------------------
// Price queries
// --------------------------------------------------

// CheapestDishes returns the lowest price seen and every row at that
// price, optionally filtered by category.
func (s *Service) CheapestDishes(category string) (float64, []store.Row, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return 0, nil, err
	}
	if category != "" {
		rows = filterRows(rows, category, func(r store.Row) string { return r.Category })
	}

	lowest := 0.0
	var cheapest []store.Row
	for _, row := range rows {
		price, err := strconv.ParseFloat(row.Price, 64)
		if err != nil {
			continue
		}
		switch {
		case cheapest == nil || price < lowest:
			lowest = price
			cheapest = []store.Row{row}
		case price == lowest:
			cheapest = append(cheapest, row)
		}
	}

	if cheapest == nil {
		return 0, nil, ErrNotFound
	}
	return lowest, cheapest, nil
}

// AveragePrice averages all parseable prices, optionally filtered by
// category. The count is the number of rows averaged.
func (s *Service) AveragePrice(category string) (float64, int, error) {
	rows, err := s.source.Rows()
	if err != nil {
		return 0, 0, err
	}
	if category != "" {
		rows = filterRows(rows, category, func(r store.Row) string { return r.Category })
	}

	var sum float64
	var count int
	for _, row := range rows {
		price, err := strconv.ParseFloat(row.Price, 64)
		if err != nil {
			continue
		}
		sum += price
		count++
	}

	if count == 0 {
		return 0, 0, ErrNotFound
	}
	return sum / float64(count), count, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func filterRows(rows []store.Row, needle string, field func(store.Row) string) []store.Row {
	needle = strings.ToLower(needle)
	var out []store.Row
	for _, row := range rows {
		if strings.Contains(strings.ToLower(field(row)), needle) {
			out = append(out, row)
		}
	}
	return out
}

func uniqueSorted(rows []store.Row, field func(store.Row) string) []string {
	set := make(map[string]bool)
	for _, row := range rows {
		if v := field(row); v != "" {
			set[v] = true
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func countBy(rows []store.Row, field func(store.Row) string) []CountEntry {
	counts := make(map[string]int)
	for _, row := range rows {
		v := field(row)
		if v == "" {
			v = "Unknown"
		}
		counts[v]++
	}

	out := make([]CountEntry, 0, len(counts))
	for v, n := range counts {
		out = append(out, CountEntry{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
