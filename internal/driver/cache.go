package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vmihailenco/msgpack/v5"

	"cslines/internal/format"
	"cslines/internal/linebreak"
	"cslines/internal/version"
)

// Current schema version - increment when CacheEntry format changes
const diskCacheSchemaVersion uint16 = 1

const (
	defaultMemEntries = 1024
	defaultMemTTL     = 10 * time.Minute
)

// CacheKey identifies one formatting outcome: the content digest mixed with
// the engine stamp, the reason and the options fingerprint.
type CacheKey [sha256.Size]byte

// String returns the hex form of the key.
func (k CacheKey) String() string { return hex.EncodeToString(k[:]) }

// KeyFor computes the cache key for content formatted with opts.
func KeyFor(content []byte, opts format.Options) CacheKey {
	sum := sha256.Sum256(content)
	h := sha256.New()
	h.Write(sum[:])
	h.Write([]byte{0})
	h.Write([]byte(engineStamp()))
	h.Write([]byte{0})
	h.Write([]byte(opts.Reason.String()))
	h.Write([]byte{0})
	h.Write([]byte(opts.Fingerprint()))
	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}

// engineStamp ties keys to the rule revision and the build, so a new binary
// never reads results of an older engine.
func engineStamp() string {
	return fmt.Sprintf("rules/%d cslines/%s", linebreak.Revision, version.Version)
}

// CacheEntry is what formatting one file produced.
type CacheEntry struct {
	// Schema version for safe invalidation when format changes
	Schema      uint16
	Output      []byte
	Changed     bool
	ParseErrors uint
}

// Cache is a two-level decision cache: an expiring in-memory LRU in front of
// an optional disk cache. Safe for concurrent use.
type Cache struct {
	mem    *lru.LRU[CacheKey, CacheEntry]
	disk   *DiskCache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a cache holding up to size entries in memory for ttl.
// disk may be nil.
func NewCache(size int, ttl time.Duration, disk *DiskCache) *Cache {
	if size <= 0 {
		size = defaultMemEntries
	}
	if ttl <= 0 {
		ttl = defaultMemTTL
	}
	return &Cache{
		mem:  lru.NewLRU[CacheKey, CacheEntry](size, nil, ttl),
		disk: disk,
	}
}

// Get looks key up in memory, then on disk. Disk hits are promoted.
func (c *Cache) Get(key CacheKey) (CacheEntry, bool) {
	if c == nil {
		return CacheEntry{}, false
	}
	if entry, ok := c.mem.Get(key); ok {
		c.hits.Add(1)
		return entry, true
	}
	var entry CacheEntry
	ok, err := c.disk.Get(key, &entry)
	if err != nil || !ok {
		c.misses.Add(1)
		return CacheEntry{}, false
	}
	c.mem.Add(key, entry)
	c.hits.Add(1)
	return entry, true
}

// Put stores entry under key in both layers.
func (c *Cache) Put(key CacheKey, entry CacheEntry) error {
	if c == nil {
		return nil
	}
	entry.Schema = diskCacheSchemaVersion
	c.mem.Add(key, entry)
	return c.disk.Put(key, &entry)
}

// Purge drops the in-memory layer.
func (c *Cache) Purge() {
	if c != nil {
		c.mem.Purge()
	}
}

// Stats returns hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// DiskCache хранит результаты форматирования по CacheKey на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a disk cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := key.String()
	// Подкаталог по первым двум символам, чтобы не держать всё в одной папке.
	return filepath.Join(c.dir, "fmt", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes an entry to the disk cache.
func (c *DiskCache) Put(key CacheKey, entry *CacheEntry) (err error) {
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
	tmp := f.Name()
	defer func() {
		// после успешного Rename файла уже нет
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	err = os.Rename(tmp, p)
	return err
}

// Get reads and deserializes an entry. Entries written under another schema
// version read as misses.
func (c *DiskCache) Get(key CacheKey, out *CacheEntry) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	var entry CacheEntry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return false, err
	}
	if entry.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	*out = entry
	return true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
