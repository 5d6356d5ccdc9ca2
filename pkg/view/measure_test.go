package view

import "testing"

func TestTextMeasurerLines(t *testing.T) {
	m := TextMeasurer{NodeWidth: 125, FontSize: 10, LineHeight: 12, Padding: 5}
	// (125 - 10) / (10 * 0.55) rounds down to 20 glyphs per line
	if got := m.CharsPerLine(); got != 20 {
		t.Fatalf("CharsPerLine() = %d, want 20", got)
	}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"short", "fix login", 1},
		{"exact fit", "aaaaaaaaaaaaaaaaaaaa", 1},
		{"wraps at word", "aaaaaaaaaa bbbbbbbbbb", 2},
		{"fits with space", "aaaaaaaaa bbbbbbbbbb", 1},
		{"long word split", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 3},
		{"long word mid text", "ab aaaaaaaaaaaaaaaaaaaaaaaaa c", 3},
		{"extra whitespace", "  one   two  ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Lines(tt.text); got != tt.want {
				t.Errorf("Lines(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextMeasurerHeight(t *testing.T) {
	m := TextMeasurer{NodeWidth: 125, FontSize: 10, LineHeight: 12, Padding: 5}
	if got := m.Height("short"); got != 22 {
		t.Errorf("Height(one line) = %v, want 22", got)
	}
	if got := m.Height("aaaaaaaaaa bbbbbbbbbb"); got != 34 {
		t.Errorf("Height(two lines) = %v, want 34", got)
	}
}

func TestTextMeasurerDegenerate(t *testing.T) {
	m := TextMeasurer{NodeWidth: 5, FontSize: 10, Padding: 10}
	if got := m.CharsPerLine(); got != 1 {
		t.Errorf("CharsPerLine() = %d, want 1", got)
	}
}

func TestDefaultMeasurerGrowsWithText(t *testing.T) {
	m := DefaultMeasurer()
	short := m.Height("Ship it")
	long := m.Height("Migrate the billing database to the new cluster and backfill historical invoices")
	if long <= short {
		t.Errorf("long label height %v not greater than short %v", long, short)
	}
}
