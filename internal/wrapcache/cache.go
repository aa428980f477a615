// Package wrapcache stores rendered wrapper intros and outros on disk, keyed
// by the digest of everything that influences them.
package wrapcache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"modwrap/internal/project"
	"modwrap/internal/wrapper"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 1

// Cache is a directory of msgpack-encoded payloads.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is one cached wrapper.
type Payload struct {
	Schema  uint16
	Format  string
	Imports uint32
	Intro   string
	Outro   string
}

// NewPayload builds a payload for the given rendering.
func NewPayload(format wrapper.Format, imports int, intro, outro string) (*Payload, error) {
	n, err := safecast.Conv[uint32](imports)
	if err != nil {
		return nil, fmt.Errorf("import count %d: %w", imports, err)
	}
	return &Payload{
		Schema:  schemaVersion,
		Format:  format.String(),
		Imports: n,
		Intro:   intro,
		Outro:   outro,
	}, nil
}

// Open returns a cache rooted at dir, creating it if needed.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenDefault opens the cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDefault(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return Open(filepath.Join(base, app))
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "wrappers", key.String()+".mp")
}

// Put serializes and writes a payload.
func (c *Cache) Put(key project.Digest, payload *Payload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// after a successful rename the temp file is already gone
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. It reports false for missing entries and for entries
// written with another schema version.
func (c *Cache) Get(key project.Digest) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out Payload
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, err
	}
	if out.Schema != schemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// DropAll removes every cached wrapper.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "wrappers"))
}
