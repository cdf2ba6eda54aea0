package ui

import "testing"

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		tabWidth int
		want     string
	}{
		{"no tabs", "hello", 4, "hello"},
		{"tab at start", "\thello", 4, "    hello"},
		{"tab mid-line snaps to stop", "ab\tcd", 4, "ab  cd"},
		{"tab at exact stop advances a full stop", "abcd\tef", 4, "abcd    ef"},
		{"consecutive tabs", "\t\tx", 2, "    x"},
		{"zero tab width leaves line alone", "a\tb", 0, "a\tb"},
		{"ansi sequences do not consume columns", "\x1b[31mab\tcd\x1b[0m", 4, "\x1b[31mab  cd\x1b[0m"},
		{"wide runes count double", "日\tx", 4, "日  x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandTabs(tt.line, tt.tabWidth)
			if got != tt.want {
				t.Errorf("ExpandTabs(%q, %d) = %q, want %q", tt.line, tt.tabWidth, got, tt.want)
			}
		})
	}
}
