package mcpserver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/parser"
)

const petstoreFile = "../../generator/testdata/petstore.yaml"

func swaggerWithTitle(title string) string {
	return fmt.Sprintf(`swagger: "2.0"
info:
  title: %q
  version: "1.0"
paths: {}
`, title)
}

func TestDocSource_ResolveFile(t *testing.T) {
	docs.reset()
	result, err := docSource{File: petstoreFile}.resolve()
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	assert.Equal(t, "2.0", result.Version)
}

func TestDocSource_ResolveContent(t *testing.T) {
	docs.reset()
	result, err := docSource{Content: swaggerWithTitle("Test")}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Test", result.Document.Info.Title)
}

func TestDocSource_Validate(t *testing.T) {
	tests := []struct {
		name string
		src  docSource
		want string
	}{
		{name: "none", src: docSource{}, want: "got 0"},
		{name: "file and content", src: docSource{File: "foo.yaml", Content: "bar"}, want: "got 2"},
		{name: "all three", src: docSource{File: "a", URL: "b", Content: "c"}, want: "got 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.src.resolve()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDocSource_ResolveFileNotFound(t *testing.T) {
	docs.reset()
	_, err := docSource{File: "/nonexistent/path.yaml"}.resolve()
	assert.Error(t, err)
	assert.Zero(t, docs.size())
}

func TestDocSource_InlineSizeLimit(t *testing.T) {
	old := cfg.MaxInlineSize
	cfg.MaxInlineSize = 16
	t.Cleanup(func() { cfg.MaxInlineSize = old })

	_, err := docSource{Content: strings.Repeat("x", 17)}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWAGCODEGEN_MCP_MAX_INLINE_SIZE")
}

func TestDocSource_RejectsOtherVersionsBeforeCaching(t *testing.T) {
	docs.reset()
	src := docSource{Content: "swagger: \"1.2\"\ninfo: {title: Old, version: \"1\"}\npaths: {}\n"}

	_, err := src.resolve()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cgerrors.ErrUnsupportedSpecVersion))
	var verr *cgerrors.VersionError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "1.2", verr.Found)
	assert.Zero(t, docs.size())

	_, err = docSource{Content: "openapi: 3.0.0\ninfo: {title: New, version: \"1\"}\npaths: {}\n"}.resolve()
	assert.True(t, errors.Is(err, cgerrors.ErrUnsupportedSpecVersion))
	assert.Zero(t, docs.size())
}

func TestDocCache_HitOnSameFile(t *testing.T) {
	docs.reset()
	src := docSource{File: petstoreFile}

	first, err := src.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docs.size())

	second, err := src.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestDocCache_MissOnModifiedFile(t *testing.T) {
	docs.reset()

	path := filepath.Join(t.TempDir(), "swagger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(swaggerWithTitle("Test V1")), 0o644))

	src := docSource{File: path}
	first, err := src.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Test V1", first.Document.Info.Title)

	require.NoError(t, os.WriteFile(path, []byte(swaggerWithTitle("Test V2")), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := src.resolve()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "Test V2", second.Document.Info.Title)
}

func TestDocCache_Disabled(t *testing.T) {
	docs.reset()
	cfg.CacheEnabled = false
	t.Cleanup(func() { cfg.CacheEnabled = true })

	src := docSource{Content: swaggerWithTitle("Uncached")}
	first, err := src.resolve()
	require.NoError(t, err)
	second, err := src.resolve()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Zero(t, docs.size())
}

func TestDocCache_LRUEviction(t *testing.T) {
	docs.reset()

	var firstKey string
	for i := range cfg.CacheMaxSize + 1 {
		src := docSource{Content: swaggerWithTitle("Spec " + string(rune('A'+i)))}
		if i == 0 {
			firstKey = src.cacheKey()
		}
		_, err := src.resolve()
		require.NoError(t, err)
	}

	assert.Equal(t, cfg.CacheMaxSize, docs.size())
	assert.Nil(t, docs.lookup(firstKey))
}

func TestDocCache_Expiry(t *testing.T) {
	c := newDocCache(4)
	c.store("short", &parser.ParseResult{}, time.Nanosecond)
	c.store("long", &parser.ParseResult{}, time.Hour)
	time.Sleep(time.Millisecond)

	assert.Nil(t, c.lookup("short"))
	c.store("gone", &parser.ParseResult{}, time.Nanosecond)
	time.Sleep(time.Millisecond)
	c.sweep()
	assert.Equal(t, 1, c.size())
	assert.NotNil(t, c.lookup("long"))
}

func TestDocCache_LoadSharesOneParse(t *testing.T) {
	c := newDocCache(4)
	var calls atomic.Int32
	release := make(chan struct{})
	parse := func() (*parser.ParseResult, error) {
		calls.Add(1)
		<-release
		return &parser.ParseResult{Version: "2.0"}, nil
	}

	const callers = 8
	results := make([]*docEntry, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := c.load("k", time.Hour, parse)
			assert.NoError(t, err)
			results[i] = e
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(2))
	assert.Equal(t, 1, c.size())
	for _, e := range results {
		assert.Same(t, c.lookup("k"), e)
	}
}

func TestDocSource_ModelCachedPerDialectAndClass(t *testing.T) {
	docs.reset()
	src := docSource{File: petstoreFile}

	ts, err := src.model("typescript", "Client")
	require.NoError(t, err)
	again, err := src.model("typescript", "Client")
	require.NoError(t, err)
	assert.Same(t, ts, again)

	goModel, err := src.model("go", "Client")
	require.NoError(t, err)
	assert.NotSame(t, ts, goModel)

	renamed, err := src.model("typescript", "PetStore")
	require.NoError(t, err)
	assert.Equal(t, "PetStore", renamed.ClassName)
	assert.Equal(t, 1, docs.size())
}

func TestDocSource_CacheKey(t *testing.T) {
	assert.Empty(t, docSource{}.cacheKey())
	assert.Empty(t, docSource{File: "/nonexistent/path.yaml"}.cacheKey())
	assert.Equal(t, "url:https://example.com/swagger.json", docSource{URL: "https://example.com/swagger.json"}.cacheKey())
	assert.True(t, strings.HasPrefix(docSource{Content: "x"}.cacheKey(), "content:"))
	assert.NotEqual(t, docSource{Content: "x"}.cacheKey(), docSource{Content: "y"}.cacheKey())
}
