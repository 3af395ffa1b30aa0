package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	swagcodegen "github.com/swagcodegen/swagcodegen"
	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/parser"
	"github.com/swagcodegen/swagcodegen/view"
)

// docSource names the Swagger 2.0 document a tool call works on.
// Exactly one of File, URL, or Content must be set.
type docSource struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger 2.0 file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a Swagger 2.0 document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline Swagger 2.0 document content (JSON or YAML)"`
}

// modelKey identifies a view model built from a cached document.
type modelKey struct {
	dialect   string
	className string
}

// docEntry is one cached document and the view models built from it.
// Models are shared between calls and must not be modified.
type docEntry struct {
	parsed   *parser.ParseResult
	models   map[modelKey]*view.ViewModel
	lastUsed time.Time
	expires  time.Time
}

func (e *docEntry) expired(now time.Time) bool {
	return now.After(e.expires)
}

// docCache holds parsed documents for the lifetime of the server. Concurrent
// loads of one key share a single parse.
type docCache struct {
	mu       sync.Mutex
	entries  map[string]*docEntry
	max      int
	loads    singleflight.Group
	sweeping atomic.Bool
}

var docs = newDocCache(cfg.CacheMaxSize)

func newDocCache(limit int) *docCache {
	return &docCache{entries: make(map[string]*docEntry), max: limit}
}

// lookup returns the live entry for key, dropping it when expired.
func (c *docCache) lookup(key string) *docEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := time.Now()
	if e.expired(now) {
		delete(c.entries, key)
		return nil
	}
	e.lastUsed = now
	return e
}

func (c *docCache) store(key string, parsed *parser.ParseResult, ttl time.Duration) *docEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	e := &docEntry{parsed: parsed, lastUsed: now, expires: now.Add(ttl)}
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.max {
		c.evictLocked()
	}
	c.entries[key] = e
	return e
}

// evictLocked drops the least recently used entry.
func (c *docCache) evictLocked() {
	var victim string
	var oldest time.Time
	for k, e := range c.entries {
		if victim == "" || e.lastUsed.Before(oldest) {
			victim, oldest = k, e.lastUsed
		}
	}
	delete(c.entries, victim)
}

// load returns the entry for key, parsing with fn on a miss.
func (c *docCache) load(key string, ttl time.Duration, fn func() (*parser.ParseResult, error)) (*docEntry, error) {
	if e := c.lookup(key); e != nil {
		return e, nil
	}
	v, err, _ := c.loads.Do(key, func() (any, error) {
		if e := c.lookup(key); e != nil {
			return e, nil
		}
		parsed, err := fn()
		if err != nil {
			return nil, err
		}
		return c.store(key, parsed, ttl), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*docEntry), nil
}

// model returns the view model for k, building it once per entry.
func (c *docCache) model(e *docEntry, k modelKey) (*view.ViewModel, error) {
	c.mu.Lock()
	m, ok := e.models[k]
	c.mu.Unlock()
	if ok {
		return m, nil
	}

	m, err := buildModel(e.parsed.Document, k)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e.models == nil {
		e.models = make(map[modelKey]*view.ViewModel)
	}
	if prev, ok := e.models[k]; ok {
		return prev, nil
	}
	e.models[k] = m
	return m, nil
}

func (c *docCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
}

// startSweeper removes expired entries every interval until ctx is done.
// Only one sweeper runs at a time.
func (c *docCache) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *docCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*docEntry)
}

func (c *docCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func buildModel(doc *parser.Document, k modelKey) (*view.ViewModel, error) {
	return view.New(view.WithDialect(k.dialect), view.WithClassName(k.className)).Build(doc)
}

func (s docSource) validate() error {
	n := 0
	for _, set := range []bool{s.File != "", s.URL != "", s.Content != ""} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", n)
	}
	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SWAGCODEGEN_MCP_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// cacheKey returns the cache key for s, or "" when s cannot be cached.
// Files are keyed by absolute path and mtime so edits are picked up.
func (s docSource) cacheKey() string {
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano())
	case s.URL != "":
		return "url:" + s.URL
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	}
	return ""
}

func (s docSource) ttl() time.Duration {
	switch {
	case s.File != "":
		return cfg.CacheFileTTL
	case s.URL != "":
		return cfg.CacheURLTTL
	}
	return cfg.CacheContentTTL
}

// parse reads the document and rejects anything but Swagger 2.0.
func (s docSource) parse() (*parser.ParseResult, error) {
	opts := []parser.Option{parser.WithUserAgent(swagcodegen.UserAgent())}
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		opts = append(opts, parser.WithFilePath(s.URL))
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	default:
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	}
	parsed, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	if v := parsed.Document.Swagger; v != view.SupportedVersion {
		return nil, &cgerrors.VersionError{Found: v, Supported: view.SupportedVersion}
	}
	return parsed, nil
}

// entry resolves s through the cache. The returned entry is detached from
// the cache when caching is off or s has no key.
func (s docSource) entry() (*docEntry, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	key := ""
	if cfg.CacheEnabled {
		key = s.cacheKey()
	}
	if key == "" {
		parsed, err := s.parse()
		if err != nil {
			return nil, err
		}
		return &docEntry{parsed: parsed}, nil
	}
	return docs.load(key, s.ttl(), s.parse)
}

// resolve returns the parsed document for s.
func (s docSource) resolve() (*parser.ParseResult, error) {
	e, err := s.entry()
	if err != nil {
		return nil, err
	}
	return e.parsed, nil
}

// model returns the view model of s for dialect and className.
func (s docSource) model(dialect, className string) (*view.ViewModel, error) {
	e, err := s.entry()
	if err != nil {
		return nil, err
	}
	return docs.model(e, modelKey{dialect: dialect, className: className})
}
