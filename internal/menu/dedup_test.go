package menu

import (
	"reflect"
	"testing"
)

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	items := []Item{
		{DishName: "Soup", Price: 5.0},
		{DishName: "soup ", Price: 6.0},
		{DishName: "Salad", Price: 4.0},
	}

	got := Dedup(items)

	want := []Item{
		{DishName: "Soup", Price: 5.0},
		{DishName: "Salad", Price: 4.0},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedup = %+v, want %+v", got, want)
	}
}

func TestDedupIsIdempotent(t *testing.T) {
	items := []Item{
		{DishName: "Coffee", Price: 3.5},
		{DishName: " COFFEE", Price: 4.0},
		{DishName: "Tea", Price: 2.5},
		{DishName: "tea", Price: 2.0},
	}

	once := Dedup(items)
	twice := Dedup(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedup not idempotent: %+v vs %+v", once, twice)
	}

	if len(once) > len(items) {
		t.Fatalf("output longer than input: %d > %d", len(once), len(items))
	}
}

func TestDedupEmptyInput(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %+v", got)
	}
	if got := Dedup([]Item{}); len(got) != 0 {
		t.Fatalf("expected empty output, got %+v", got)
	}
}
