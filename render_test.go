package main

import (
	"testing"
	"unicode/utf8"
)

func TestPadCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"H", 3, " H "},
		{"X", 4, " X  "},
		{"S†", 3, "S† "},
		{"T†", 4, " T† "},
		{"S†", 2, "S†"},
		{"S†", 1, "S"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		got := padCenter(tt.s, tt.width)
		if got != tt.want {
			t.Errorf("padCenter(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("padCenter(%q, %d) = %q is not valid UTF-8", tt.s, tt.width, got)
		}
	}
}

func TestPadCenterRegistrySymbols(t *testing.T) {
	// Every symbol must render inside a wire box without byte truncation.
	for _, g := range AllGates() {
		cell := padCenter(g.Def().Symbol, gateCellW-2)
		if !utf8.ValidString(cell) {
			t.Errorf("wire cell for %v = %q is not valid UTF-8", g, cell)
		}
		if got := utf8.RuneCountInString(cell); got < gateCellW-2 {
			t.Errorf("wire cell for %v is %d runes, want at least %d", g, got, gateCellW-2)
		}
	}
}
