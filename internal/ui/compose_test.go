package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plainLayers() RevealLayers {
	return RevealLayers{
		Body:       "BBBBBBBBBB\nbbbbbbbbbb",
		Left:       "LLLL\nllll",
		Right:      "RRRR\nrrrr",
		LeftWidth:  4,
		RightWidth: 4,
	}
}

func TestComposeReveal_Rows(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   []string
	}{
		{
			name:   "hidden shows body only",
			offset: 0,
			want:   []string{"BBBBBBBBBB", "bbbbbbbbbb"},
		},
		{
			name:   "partial left reveal uncovers panel edge first",
			offset: 3,
			want:   []string{"LLLBBBBBBB", "lllbbbbbbb"},
		},
		{
			name:   "left reveal at panel width",
			offset: 4,
			want:   []string{"LLLLBBBBBB", "llllbbbbbb"},
		},
		{
			name:   "left overdrag opens gap between panel and body",
			offset: 6,
			want:   []string{"LLLL  BBBB", "llll  bbbb"},
		},
		{
			name:   "partial right reveal uncovers panel edge first",
			offset: -3,
			want:   []string{"BBBBBBBRRR", "bbbbbbbrrr"},
		},
		{
			name:   "right reveal at panel width",
			offset: -4,
			want:   []string{"BBBBBBRRRR", "bbbbbbrrrr"},
		},
		{
			name:   "right overdrag opens gap between panel and body",
			offset: -6,
			want:   []string{"BBBB  RRRR", "bbbb  rrrr"},
		},
		{
			name:   "full-width offset hides the body",
			offset: 10,
			want:   []string{"LLLL      ", "llll      "},
		},
		{
			name:   "offset beyond the screen is clamped",
			offset: 99,
			want:   []string{"LLLL      ", "llll      "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeReveal(plainLayers(), tt.offset, 10, 2)
			want := strings.Join(tt.want, "\n")
			if got != want {
				t.Errorf("ComposeReveal(offset=%d) =\n%q\nwant\n%q", tt.offset, got, want)
			}
		})
	}
}

func TestComposeReveal_EveryLineExactWidth(t *testing.T) {
	layers := plainLayers()
	for offset := -12; offset <= 12; offset++ {
		out := ComposeReveal(layers, offset, 10, 2)
		for i, line := range strings.Split(out, "\n") {
			if w := ansi.StringWidth(line); w != 10 {
				t.Errorf("offset %d line %d width = %d, want 10", offset, i, w)
			}
		}
	}
}

func TestComposeReveal_WideRunesAtCut(t *testing.T) {
	layers := RevealLayers{
		Body:      "日本語日本語",
		Left:      "LLLL",
		LeftWidth: 4,
	}

	got := ComposeReveal(layers, 3, 10, 1)
	// 7 body cells survive; the fourth wide rune cannot straddle the cut,
	// so the row is padded back to full width.
	want := "LLL日本語 "
	if got != want {
		t.Errorf("ComposeReveal wide runes = %q, want %q", got, want)
	}
	if w := ansi.StringWidth(got); w != 10 {
		t.Errorf("row width = %d, want 10", w)
	}
}

func TestComposeReveal_StyledBodyDoesNotBleed(t *testing.T) {
	layers := RevealLayers{
		Body:      "\x1b[31mBBBBBBBBBB\x1b[0m",
		Left:      "LLLL",
		LeftWidth: 4,
	}

	got := ComposeReveal(layers, 3, 10, 1)
	if stripped := ansi.Strip(got); stripped != "LLLBBBBBBB" {
		t.Errorf("stripped row = %q, want %q", stripped, "LLLBBBBBBB")
	}
	if !strings.HasSuffix(got, sgrReset) {
		t.Error("cut styled segment should end with a reset")
	}
}

func TestComposeReveal_MissingPanelExposesBlank(t *testing.T) {
	layers := RevealLayers{Body: "BBBBBBBBBB"}

	got := ComposeReveal(layers, -3, 10, 1)
	if got != "BBBBBBB   " {
		t.Errorf("reveal without panel = %q, want %q", got, "BBBBBBB   ")
	}
}

func TestFrameLines_PadsAndTrims(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		height  int
		want    []string
	}{
		{"short content gains blank rows", "ab", 4, 3, []string{"ab  ", "    ", "    "}},
		{"extra rows are dropped", "a\nb\nc", 1, 2, []string{"a", "b"}},
		{"overwide rows are cut", "abcdef", 3, 1, []string{"abc"}},
		{"empty content", "", 2, 2, []string{"  ", "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameLines(tt.content, tt.width, tt.height)
			if len(got) != len(tt.want) {
				t.Fatalf("FrameLines rows = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
