// Package content maintains the set of documents under a root directory:
// scanning, cached loading, and change watching. Document identity is
// stable across renames so the UI can keep its place.
package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

const (
	// MaxDocumentBytes is the largest file the store will load.
	MaxDocumentBytes = 1 << 20

	// loadCacheEntries bounds the number of cached file bodies.
	loadCacheEntries = 64

	// renameMatchDistance is the maximum edit distance between an old
	// and a new relative path for the old identity to carry over.
	renameMatchDistance = 8
)

// DefaultExtensions are the file types scanned as documents.
var DefaultExtensions = []string{
	".md", ".markdown", ".txt",
	".go", ".py", ".js", ".ts", ".rs", ".c", ".h", ".cpp",
	".java", ".rb", ".sh", ".sql",
	".json", ".yaml", ".yml", ".toml",
}

// skipDirs are directory names excluded from scanning and watching.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".idea":        true,
	".vscode":      true,
}

// Document is one displayable file.
type Document struct {
	ID      string // stable across renames
	Path    string // absolute
	RelPath string // relative to the store root
	Size    int64
	ModTime time.Time
}

// Store scans a root directory and serves document content through a
// metadata-invalidated cache.
type Store struct {
	root string
	exts map[string]bool

	mu   sync.RWMutex
	docs []Document

	loads *Cache[string]
}

// NewStore creates a store rooted at dir. Extensions default to
// DefaultExtensions when nil. The initial scan is left to the caller.
func NewStore(dir string, extensions []string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", abs)
	}

	if extensions == nil {
		extensions = DefaultExtensions
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}

	return &Store{
		root:  abs,
		exts:  exts,
		loads: NewCache[string](loadCacheEntries),
	}, nil
}

// Root returns the absolute root directory.
func (s *Store) Root() string {
	return s.root
}

// Documents returns the current document list, sorted by relative path.
func (s *Store) Documents() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// ByID finds a document by its stable identity.
func (s *Store) ByID(id string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}

// Load returns the document body, from cache when the file is unchanged.
func (s *Store) Load(doc Document) (string, error) {
	info, err := os.Stat(doc.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", doc.RelPath, err)
	}
	if info.Size() > MaxDocumentBytes {
		return "", fmt.Errorf("%s is too large to display (%d bytes)", doc.RelPath, info.Size())
	}

	if body, ok := s.loads.Get(doc.Path, info.Size(), info.ModTime()); ok {
		return body, nil
	}

	b, err := os.ReadFile(doc.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", doc.RelPath, err)
	}
	body := string(b)
	s.loads.Set(doc.Path, body, info.Size(), info.ModTime())
	return body, nil
}

// Rescan walks the root again and reconciles identities: documents at an
// unchanged path keep their ID, and a vanished path whose relative name
// is within a small edit distance of a new one is treated as a rename.
func (s *Store) Rescan() ([]Document, error) {
	fresh, err := scanDir(s.root, s.exts)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldByPath := make(map[string]Document, len(s.docs))
	for _, d := range s.docs {
		oldByPath[d.Path] = d
	}

	freshPaths := make(map[string]bool, len(fresh))
	for _, d := range fresh {
		freshPaths[d.Path] = true
	}

	// Old documents whose paths vanished are rename candidates.
	var orphans []Document
	for _, d := range s.docs {
		if !freshPaths[d.Path] {
			orphans = append(orphans, d)
		}
	}

	for i := range fresh {
		if prev, ok := oldByPath[fresh[i].Path]; ok {
			fresh[i].ID = prev.ID
			continue
		}
		if j := closestOrphan(fresh[i].RelPath, orphans); j >= 0 {
			slog.Debug("store: rename matched", "from", orphans[j].RelPath, "to", fresh[i].RelPath)
			fresh[i].ID = orphans[j].ID
			orphans = append(orphans[:j], orphans[j+1:]...)
			continue
		}
		fresh[i].ID = uuid.NewString()
	}

	s.docs = fresh
	s.loads.DeleteIf(func(key string, _ Entry[string]) bool {
		return !freshPaths[key]
	})
	slog.Debug("store: rescan", "docs", len(fresh))

	out := make([]Document, len(fresh))
	copy(out, fresh)
	return out, nil
}

// closestOrphan returns the index of the orphan with the smallest edit
// distance to relPath, or -1 when none is close enough to be a rename.
func closestOrphan(relPath string, orphans []Document) int {
	best := -1
	bestDist := renameMatchDistance + 1
	for i, d := range orphans {
		dist := levenshtein.ComputeDistance(relPath, d.RelPath)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// scanDir walks dir collecting documents, without identities.
func scanDir(dir string, exts map[string]bool) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if skipDirs[name] {
				return filepath.SkipDir
			}
			if path != dir && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		docs = append(docs, Document{
			Path:    path,
			RelPath: rel,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].RelPath < docs[j].RelPath
	})
	return docs, nil
}
