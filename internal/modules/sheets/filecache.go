// README: Local file cache holding the most recently fetched raw grid per location.
package sheets

import (
	"os"
	"path/filepath"
	"strings"
)

// FileCache persists one delimited-text file per location identifier so a
// restart (or an offline run) never has to re-download every sheet.
type FileCache struct {
	dir string
}

func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

// Load returns the cached raw bytes for id, if any.
func (c *FileCache) Load(id string) ([]byte, bool) {
	data, err := os.ReadFile(c.path(id))
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// Store writes the raw bytes for id, creating the cache directory on demand.
func (c *FileCache) Store(id string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(id), data, 0o644)
}

func (c *FileCache) path(id string) string {
	return filepath.Join(c.dir, sanitizeID(id)+".csv")
}

// sanitizeID keeps identifiers filesystem-safe. Identifiers are opaque
// strings from config and may contain path-hostile characters.
func sanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
