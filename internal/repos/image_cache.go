package repos

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// ErrBadImageName is returned for cache keys that would escape the cache
// directory.
var ErrBadImageName = errors.New("image cache: bad name")

// DiskImageCache stores fetched image bytes under a local directory, keyed
// by the image's catalog name.
type DiskImageCache struct{ dir string }

func NewDiskImageCache(dir string) (*DiskImageCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskImageCache{dir: dir}, nil
}

// path rejects traversal attempts, encoded or raw, before touching disk.
func (c *DiskImageCache) path(name string) (string, bool) {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "..") || strings.Contains(lower, "%2e") || strings.Contains(name, "\x00") {
		return "", false
	}
	clean := filepath.Clean(name)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", false
	}
	return filepath.Join(c.dir, clean), true
}

func (c *DiskImageCache) Cache(name string, data []byte) error {
	p, ok := c.path(name)
	if !ok {
		return ErrBadImageName
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

func (c *DiskImageCache) Load(name string) ([]byte, bool) {
	p, ok := c.path(name)
	if !ok {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	return b, true
}
