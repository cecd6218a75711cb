package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(-5); got != DefaultLimit {
		t.Fatalf("expected default limit for negative input, got %d", got)
	}
	if got := NormalizeLimit(MaxLimit + 1); got != MaxLimit {
		t.Fatalf("expected cap at max limit, got %d", got)
	}
	if got := NormalizeLimit(10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		params     Params
		start, end int
	}{
		{name: "first page", total: 30, params: Params{Limit: 10, Page: 1}, start: 0, end: 10},
		{name: "partial last page", total: 25, params: Params{Limit: 10, Page: 3}, start: 20, end: 25},
		{name: "past the end", total: 5, params: Params{Limit: 10, Page: 4}, start: 5, end: 5},
		{name: "zero page clamps", total: 8, params: Params{Limit: 10, Page: 0}, start: 0, end: 8},
		{name: "empty view", total: 0, params: Params{Limit: 10, Page: 1}, start: 0, end: 0},
	}

	for _, tt := range tests {
		start, end := Bounds(tt.total, tt.params)
		if start != tt.start || end != tt.end {
			t.Fatalf("%s: expected [%d,%d), got [%d,%d)", tt.name, tt.start, tt.end, start, end)
		}
	}
}

func TestPageCount(t *testing.T) {
	if got := PageCount(0, 10); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
	if got := PageCount(25, 10); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := PageCount(30, 10); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
}
