package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "menus.csv"))
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestEnsureInitializedWritesHeaderOnce(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureInitialized())
	require.NoError(t, s.EnsureInitialized())

	records := readAll(t, s.Path())
	require.Len(t, records, 1)
	assert.Equal(t, Header, records[0])
}

func TestEnsureInitializedKeepsExistingRows(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureInitialized())

	rating := 4.0
	require.NoError(t, s.Append("a.png", &menu.EnrichedExtraction{
		RestaurantName: "Cafe",
		CuisineType:    "Café",
		GoogleRating:   &rating,
		Address:        "Somewhere 1",
		Items:          []menu.Item{{DishName: "Bun", Price: 2}},
	}))

	require.NoError(t, s.EnsureInitialized())

	records := readAll(t, s.Path())
	assert.Len(t, records, 2)
}

func TestAppendOneRowPerItemSharedFields(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureInitialized())

	rating := 4.2
	enriched := &menu.EnrichedExtraction{
		RestaurantName: "Cafe X",
		CuisineType:    "Café",
		GoogleRating:   &rating,
		Address:        "Hämeenkatu 1",
		Items: []menu.Item{
			{DishName: "Coffee", Price: 3.5, Category: "Beverage", DietaryTags: []string{"L", "GF"}},
			{DishName: "Bun", Price: 2.8, Category: "Dessert"},
			{DishName: "Soup", Price: 9.9, Category: "Lunch"},
		},
	}

	require.NoError(t, s.Append("menu1.png", enriched))

	records := readAll(t, s.Path())
	require.Len(t, records, 4)

	first := records[1]
	for _, row := range records[1:] {
		assert.Equal(t, first[0], row[0], "all rows share one timestamp")
		assert.Equal(t, "menu1.png", row[1])
		assert.Equal(t, "Cafe X", row[2])
		assert.Equal(t, "Café", row[7])
		assert.Equal(t, "4.2", row[8])
		assert.Equal(t, "Hämeenkatu 1", row[9])
	}

	assert.Equal(t, "Coffee", records[1][3])
	assert.Equal(t, "3.5", records[1][4])
	assert.Equal(t, "L;GF", records[1][6])
	assert.Equal(t, "", records[2][6])
}

func TestAppendNilRatingIsEmptyField(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureInitialized())

	require.NoError(t, s.Append("menu2.png", &menu.EnrichedExtraction{
		RestaurantName: "Unknown Restaurant",
		CuisineType:    "Unknown",
		Address:        "Unknown",
		Items:          []menu.Item{{DishName: "Tea", Price: 2.5, Category: "Beverage"}},
	}))

	records := readAll(t, s.Path())
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1][8])
}

func TestAppendIsAppendOnly(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureInitialized())

	require.NoError(t, s.Append("a.png", &menu.EnrichedExtraction{
		RestaurantName: "A", CuisineType: "X", Address: "Y",
		Items: []menu.Item{{DishName: "One", Price: 1}},
	}))

	before := readAll(t, s.Path())

	require.NoError(t, s.Append("b.png", &menu.EnrichedExtraction{
		RestaurantName: "B", CuisineType: "X", Address: "Y",
		Items: []menu.Item{{DishName: "Two", Price: 2}},
	}))

	after := readAll(t, s.Path())
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)], "existing rows never rewritten")
}

func TestRowsReadsBackAppendedData(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureInitialized())

	rows, err := s.Rows()
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, s.Append("menu1.png", &menu.EnrichedExtraction{
		RestaurantName: "Cafe X", CuisineType: "Café", Address: "Hämeenkatu 1",
		Items: []menu.Item{{DishName: "Coffee", Price: 3.5, Category: "Beverage"}},
	}))

	rows, err = s.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cafe X", rows[0].RestaurantName)
	assert.Equal(t, "Coffee", rows[0].DishName)
	assert.Equal(t, "3.5", rows[0].Price)
}

func TestRowsMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	rows, err := s.Rows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
