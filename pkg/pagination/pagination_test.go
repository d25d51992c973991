package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	n := Params{}.Normalize()
	if n.Page != 1 {
		t.Fatalf("expected page 1, got %d", n.Page)
	}
	if n.Limit != DefaultLimit {
		t.Fatalf("expected limit %d, got %d", DefaultLimit, n.Limit)
	}
}

func TestNormalizeCapsLimit(t *testing.T) {
	n := Params{Page: 2, Limit: 500}.Normalize()
	if n.Limit != MaxLimit {
		t.Fatalf("expected limit capped at %d, got %d", MaxLimit, n.Limit)
	}
	if n.Page != 2 {
		t.Fatalf("expected page preserved, got %d", n.Page)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		params Params
		want   int
	}{
		{Params{Page: 1, Limit: 8}, 0},
		{Params{Page: 3, Limit: 8}, 16},
		{Params{Page: 0, Limit: 0}, 0},
		{Params{Page: 2, Limit: 25}, 25},
	}
	for _, tt := range tests {
		if got := tt.params.Offset(); got != tt.want {
			t.Fatalf("params %+v expected offset %d, got %d", tt.params, tt.want, got)
		}
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage(Params{Page: 2, Limit: 8}, 20)
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if !page.HasNext {
		t.Fatal("expected HasNext on middle page")
	}
	if !page.HasPrev {
		t.Fatal("expected HasPrev on middle page")
	}

	last := NewPage(Params{Page: 3, Limit: 8}, 20)
	if last.HasNext {
		t.Fatal("expected HasNext false on last page")
	}

	empty := NewPage(Params{Page: 1, Limit: 8}, 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("unexpected metadata for empty result: %+v", empty)
	}
}
