package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"texlog/internal/diag"
	"texlog/internal/rules"
	"texlog/internal/source"
)

// Current schema version - increment when cachePayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores scan results keyed by log content + rule set, so reruns
// over an unchanged transcript skip the engine entirely. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	File     string
	LocKind  uint8
	Line     uint32
	Start    uint32
	End      uint32
}

type cachePayload struct {
	Schema uint16
	Items  []cachedDiagnostic
}

// OpenDiskCache initializes the cache at the standard location
// ($XDG_CACHE_HOME/texlog, falling back to ~/.cache/texlog).
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

// OpenDiskCacheAt initializes the cache at an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// cacheKey mixes the log content hash with the active rule names: changing
// the rule set must invalidate cached results.
func cacheKey(contentHash [32]byte, active []rules.Rule) [32]byte {
	h := sha256.New()
	h.Write(contentHash[:])
	for _, r := range active {
		h.Write([]byte(r.Name()))
		h.Write([]byte{0})
	}
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

func (c *DiskCache) pathFor(key [32]byte) string {
	// "scans" subdirectory keeps the cache dir readable and easy to clear.
	return filepath.Join(c.dir, "scans", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a bag into the cache. Writes go through a temp file and a
// rename so readers never observe a partial payload.
func (c *DiskCache) Put(key [32]byte, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{
		Schema: diskCacheSchemaVersion,
		Items:  make([]cachedDiagnostic, 0, bag.Len()),
	}
	for _, d := range bag.Items() {
		payload.Items = append(payload.Items, cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			File:     d.File,
			LocKind:  uint8(d.Loc.Kind),
			Line:     d.Loc.Line,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	enc := msgpack.NewEncoder(tmp)
	if err := enc.Encode(&payload); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// Get loads a cached bag. A miss, a stale schema or a corrupt payload all
// come back as (nil, false); corruption is not an error, just a rescan.
func (c *DiskCache) Get(key [32]byte) (*diag.Bag, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	bag := diag.NewBag(len(payload.Items))
	for _, it := range payload.Items {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(it.Severity),
			Code:     diag.Code(it.Code),
			Message:  it.Message,
			File:     it.File,
			Loc:      diag.Location{Kind: diag.LocKind(it.LocKind), Line: it.Line},
			Primary:  source.Span{Start: it.Start, End: it.End},
		})
	}
	return bag, true
}

// Clear removes every cached payload.
func (c *DiskCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	err := os.RemoveAll(filepath.Join(c.dir, "scans"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
