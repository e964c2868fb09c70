package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
)

// Header is the fixed column order of the CSV store.
var Header = []string{
	"timestamp",
	"source_image",
	"restaurant_name",
	"dish_name",
	"price",
	"category",
	"dietary_tags",
	"cuisine_type",
	"google_rating",
	"address",
}

// Store appends denormalized menu rows to one CSV file.
// Rows are only ever added, never rewritten or removed.
type Store struct {
	path string

	// Serializes append sessions within this process so each row
	// lands intact and timestamps stay non-decreasing.
	mu sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized creates the CSV with its header row if the file
// does not exist yet. Safe to call more than once.
func (s *Store) EnsureInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	w.Flush()

	return w.Error()
}

// Append writes one row per item, all sharing one timestamp captured
// at call time. The file handle is released before returning on every
// path.
func (s *Store) Append(sourceImage string, enriched *menu.EnrichedExtraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	timestamp := time.Now().Format(time.RFC3339)

	w := csv.NewWriter(f)
	for _, item := range enriched.Items {
		rating := ""
		if enriched.GoogleRating != nil {
			rating = strconv.FormatFloat(*enriched.GoogleRating, 'f', -1, 64)
		}

		row := []string{
			timestamp,
			sourceImage,
			enriched.RestaurantName,
			item.DishName,
			strconv.FormatFloat(item.Price, 'f', -1, 64),
			item.Category,
			strings.Join(item.DietaryTags, ";"),
			enriched.CuisineType,
			rating,
			enriched.Address,
		}

		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row for %q: %w", item.DishName, err)
		}
	}
	w.Flush()

	return w.Error()
}

// Rows loads every data row currently in the store, header excluded.
// A missing file reads as empty.
func (s *Store) Rows() ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(Header) {
			continue
		}
		rows = append(rows, Row{
			Timestamp:      rec[0],
			SourceImage:    rec[1],
			RestaurantName: rec[2],
			DishName:       rec[3],
			Price:          rec[4],
			Category:       rec[5],
			DietaryTags:    rec[6],
			CuisineType:    rec[7],
			GoogleRating:   rec[8],
			Address:        rec[9],
		})
	}

	return rows, nil
}

// Row is one persisted (image, dish) record as stored.
type Row struct {
	Timestamp      string `json:"timestamp"`
	SourceImage    string `json:"source_image"`
	RestaurantName string `json:"restaurant_name"`
	DishName       string `json:"dish_name"`
	Price          string `json:"price"`
	Category       string `json:"category"`
	DietaryTags    string `json:"dietary_tags"`
	CuisineType    string `json:"cuisine_type"`
	GoogleRating   string `json:"google_rating"`
	Address        string `json:"address"`
}
