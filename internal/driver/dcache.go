package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jsxc/internal/project"
)

// Bump when diskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache memoizes clean transform outputs keyed by a digest of the
// options and the source bytes. Files with any diagnostic are never cached.
// A nil *DiskCache is valid and caches nothing. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type diskPayload struct {
	Schema     uint16
	Pragma     string
	Production bool
	Output     string
}

// OpenDiskCache initializes a disk cache at the standard user cache
// location ($XDG_CACHE_HOME/app or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func cacheKey(opts TransformOptions, content []byte) project.Digest {
	optKey := opts.Pragma
	if opts.Production {
		optKey += "\x00prod"
	}
	return project.Combine(project.HashBytes([]byte(optKey)), project.HashBytes(content))
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache easy to inspect and clear.
	return filepath.Join(c.dir, "out", hexKey+".mp")
}

// Store writes a clean transform output to the cache. Errors are swallowed:
// a failed cache write must not fail the transform.
func (c *DiskCache) Store(opts TransformOptions, content []byte, output string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(opts, content))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer os.Remove(f.Name())

	payload := diskPayload{
		Schema:     diskCacheSchemaVersion,
		Pragma:     opts.Pragma,
		Production: opts.Production,
		Output:     output,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// Atomic replace.
	_ = os.Rename(f.Name(), p)
}

// Lookup returns a previously cached output for the same options and source
// bytes. Any read or schema mismatch reads as a miss.
func (c *DiskCache) Lookup(opts TransformOptions, content []byte) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(cacheKey(opts, content)))
	if err != nil {
		return "", false
	}
	defer f.Close()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return "", false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return "", false
	}
	return payload.Output, true
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
