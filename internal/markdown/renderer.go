// Package markdown renders markdown documents to styled terminal lines
// with width-keyed caching, so re-rendering during drags and settle
// animations stays cheap.
package markdown

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/hollis/peel/internal/styles"
)

const (
	// MinWidthForMarkdown is the minimum content width for markdown
	// rendering. Below this, falls back to plain wrapping.
	MinWidthForMarkdown = 30

	// MaxCacheEntries is the number of cached renders kept before the
	// cache is reset.
	MaxCacheEntries = 100
)

// Renderer wraps Glamour with a render cache keyed on content and width.
type Renderer struct {
	mu        sync.RWMutex
	renderer  *glamour.TermRenderer
	lastWidth int
	cache     map[uint64][]string
}

// NewRenderer creates a markdown renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		cache: make(map[uint64][]string),
	}
}

// RenderContent renders markdown to styled lines.
func (r *Renderer) RenderContent(content string, width int) []string {
	if width < MinWidthForMarkdown {
		return WrapText(content, width)
	}

	if content == "" {
		return []string{}
	}

	key := cacheKey(content, width)

	r.mu.RLock()
	if cached, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock.
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := r.getOrCreateRenderer(width)
	if err != nil {
		slog.Warn("glamour renderer unavailable", "error", err)
		return WrapText(content, width)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		slog.Warn("markdown render failed", "error", err)
		return WrapText(content, width)
	}

	rendered = strings.TrimRight(rendered, "\n\r\t ")
	lines := strings.Split(rendered, "\n")

	if len(r.cache) >= MaxCacheEntries {
		r.cache = make(map[uint64][]string)
	}
	r.cache[key] = lines

	return lines
}

// cacheKey hashes content and width with xxhash.
func cacheKey(content string, width int) uint64 {
	h := xxhash.New()
	h.WriteString(content)
	h.Write([]byte{byte(width >> 8), byte(width)})
	return h.Sum64()
}

// getOrCreateRenderer lazily creates the renderer for the given width.
// A width change recreates it and drops the cache. Must be called with
// the write lock held.
func (r *Renderer) getOrCreateRenderer(width int) (*glamour.TermRenderer, error) {
	if r.renderer != nil && r.lastWidth == width {
		return r.renderer, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(styles.GetMarkdownTheme()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	r.renderer = renderer
	r.lastWidth = width
	r.cache = make(map[uint64][]string)

	return renderer, nil
}

// WrapText wraps text to maxWidth without styling it. Used when the
// frame is too narrow for markdown rendering.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	wrapped := cellbuf.Wrap(text, maxWidth, "")
	wrapped = strings.TrimRight(wrapped, "\n")
	if wrapped == "" {
		return nil
	}
	return strings.Split(wrapped, "\n")
}
