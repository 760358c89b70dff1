package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1", "alpha", "restored"},
		{"10", "b", "iconified"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		" 1  alpha  restored ",
		"10  b      iconified",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"ab", "y"},
	}
	got := Format(rows, nil)
	if got[1] != "ab    y" {
		t.Fatalf("expected wide runes to count as two cells, got %q", got[1])
	}
}

func TestFormatPadsShortRows(t *testing.T) {
	got := Format([][]string{{"a"}, {"b", "c"}}, nil)
	if got[0] != "a   " {
		t.Fatalf("expected short row padded, got %q", got[0])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
