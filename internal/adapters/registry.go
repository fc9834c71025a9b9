package adapters

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jpp0ca/PlaylistUploader-API/internal/ports"
)

// FormatRegistry maps accepted upload file extensions to their parsers.
// It is safe for concurrent use.
type FormatRegistry struct {
	mu      sync.RWMutex
	parsers map[string]ports.PlaylistParser
}

// NewFormatRegistry creates an empty registry.
func NewFormatRegistry() *FormatRegistry {
	return &FormatRegistry{
		parsers: make(map[string]ports.PlaylistParser),
	}
}

// Register associates an extension (with or without the leading dot) with a
// parser, replacing any previous registration.
func (r *FormatRegistry) Register(ext string, parser ports.PlaylistParser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[normalizeExt(ext)] = parser
}

// Get returns the parser for the file name's extension, or an error if the
// format is not supported.
func (r *FormatRegistry) Get(filename string) (ports.PlaylistParser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext := normalizeExt(filepath.Ext(filename))
	parser, ok := r.parsers[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported playlist format: %q", ext)
	}
	return parser, nil
}

// Accepts reports whether the file name has a registered extension.
func (r *FormatRegistry) Accepts(filename string) bool {
	_, err := r.Get(filename)
	return err == nil
}

// Available returns the registered extensions, sorted.
func (r *FormatRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.parsers))
	for ext := range r.parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
