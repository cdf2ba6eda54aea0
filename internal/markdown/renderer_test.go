package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		wantMax  int
	}{
		{"short line untouched", "hello world", 20, 20},
		{"long line wraps", "one two three four five six seven eight", 10, 10},
		{"zero width returns input", "hello", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.text, tt.maxWidth)
			if tt.maxWidth <= 0 {
				if len(lines) != 1 || lines[0] != tt.text {
					t.Errorf("WrapText = %v, want [%q]", lines, tt.text)
				}
				return
			}
			for _, line := range lines {
				if w := ansi.StringWidth(line); w > tt.wantMax {
					t.Errorf("line %q width = %d, want <= %d", line, w, tt.wantMax)
				}
			}
		})
	}
}

func TestRenderContent_NarrowWidthFallsBack(t *testing.T) {
	r := NewRenderer()
	lines := r.RenderContent("# Heading\n\nbody text", MinWidthForMarkdown-1)
	for _, line := range lines {
		if strings.Contains(line, "\x1b") {
			t.Errorf("narrow fallback should be unstyled, got %q", line)
		}
	}
}

func TestRenderContent_CacheStableAcrossCalls(t *testing.T) {
	r := NewRenderer()
	first := r.RenderContent("# Title\n\nSome *emphasis* text.", 60)
	second := r.RenderContent("# Title\n\nSome *emphasis* text.", 60)

	if len(first) == 0 {
		t.Fatal("render produced no lines")
	}
	if len(first) != len(second) {
		t.Fatalf("line counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs between cached renders", i)
		}
	}
}

func TestRenderContent_EmptyContent(t *testing.T) {
	r := NewRenderer()
	if lines := r.RenderContent("", 60); len(lines) != 0 {
		t.Errorf("empty content = %v, want no lines", lines)
	}
}

func TestCacheKey_DistinguishesWidth(t *testing.T) {
	if cacheKey("same", 40) == cacheKey("same", 41) {
		t.Error("cache keys for different widths should differ")
	}
	if cacheKey("a", 40) == cacheKey("b", 40) {
		t.Error("cache keys for different content should differ")
	}
}
