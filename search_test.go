package quicksort

import "testing"

func TestSearch(t *testing.T) {
	v := []int{1, 1, 2, 3, 4, 5, 6, 9}
	tests := []struct {
		target    int
		wantIndex int
		wantFound bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 2, true},
		{7, 7, false},
		{9, 7, true},
		{10, 8, false},
	}

	for _, tt := range tests {
		i, found := Search(v, tt.target)
		if i != tt.wantIndex || found != tt.wantFound {
			t.Errorf("Search(%v, %d) = %d, %v, want %d, %v", v, tt.target, i, found, tt.wantIndex, tt.wantFound)
		}
	}
}

func TestSearch_Empty(t *testing.T) {
	if i, found := Search([]string(nil), "x"); i != 0 || found {
		t.Errorf("Search(nil, x) = %d, %v, want 0, false", i, found)
	}
}

func TestSearchFunc(t *testing.T) {
	v := []int{9, 6, 5, 5, 1}
	desc := func(a, b int) bool { return a > b }
	if i, found := SearchFunc(v, 5, desc); i != 2 || !found {
		t.Errorf("SearchFunc(%v, 5) = %d, %v, want 2, true", v, i, found)
	}
	if i, found := SearchFunc(v, 3, desc); i != 4 || found {
		t.Errorf("SearchFunc(%v, 3) = %d, %v, want 4, false", v, i, found)
	}
}
