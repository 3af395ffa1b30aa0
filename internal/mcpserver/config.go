package mcpserver

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/swagcodegen/swagcodegen/internal/config"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Generate tool defaults.
	Dialect   string
	ClassName string
	Lint      bool
	Beautify  bool

	// View tool defaults.
	ViewMaxBytes int

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// mcpDefaults are keyed by the suffix after SWAGCODEGEN_MCP_.
var mcpDefaults = map[string]any{
	"cache_enabled":        true,
	"cache_max_size":       10,
	"cache_file_ttl":       15 * time.Minute,
	"cache_url_ttl":        5 * time.Minute,
	"cache_content_ttl":    15 * time.Minute,
	"cache_sweep_interval": 60 * time.Second,
	"dialect":              "javascript",
	"class_name":           "Client",
	"lint":                 true,
	"beautify":             true,
	"view_max_bytes":       512 * 1024,
	"max_inline_size":      int64(10 * 1024 * 1024),
	"allow_private_ips":    false,
}

// loadConfig reads configuration from SWAGCODEGEN_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix + "_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range mcpDefaults {
		v.SetDefault(key, value)
	}

	r := envReader{v: v, logger: zap.L().Named("mcp")}
	return &serverConfig{
		CacheEnabled:       r.boolean("cache_enabled"),
		CacheMaxSize:       r.positive("cache_max_size"),
		CacheFileTTL:       r.duration("cache_file_ttl"),
		CacheURLTTL:        r.duration("cache_url_ttl"),
		CacheContentTTL:    r.duration("cache_content_ttl"),
		CacheSweepInterval: r.duration("cache_sweep_interval"),
		Dialect:            r.dialect("dialect"),
		ClassName:          v.GetString("class_name"),
		Lint:               r.boolean("lint"),
		Beautify:           r.boolean("beautify"),
		ViewMaxBytes:       r.positive("view_max_bytes"),
		MaxInlineSize:      int64(r.positive("max_inline_size")),
		AllowPrivateIPs:    r.boolean("allow_private_ips"),
	}
}

type envReader struct {
	v      *viper.Viper
	logger *zap.Logger
}

func (r envReader) warn(key string, fallback any) {
	r.logger.Warn("invalid env var, using default",
		zap.String("key", strings.ToUpper(config.EnvPrefix+"_MCP_"+key)),
		zap.String("value", r.v.GetString(key)),
		zap.Any("default", fallback))
}

func (r envReader) boolean(key string) bool {
	fallback := mcpDefaults[key].(bool)
	switch strings.ToLower(r.v.GetString(key)) {
	case "1", "t", "true", "yes", "on":
		return true
	case "0", "f", "false", "no", "off":
		return false
	}
	r.warn(key, fallback)
	return fallback
}

func (r envReader) positive(key string) int {
	var fallback int
	switch d := mcpDefaults[key].(type) {
	case int:
		fallback = d
	case int64:
		fallback = int(d)
	}
	n := r.v.GetInt(key)
	if n <= 0 {
		r.warn(key, fallback)
		return fallback
	}
	return n
}

func (r envReader) duration(key string) time.Duration {
	fallback := mcpDefaults[key].(time.Duration)
	d := r.v.GetDuration(key)
	if d <= 0 {
		r.warn(key, fallback)
		return fallback
	}
	return d
}

func (r envReader) dialect(key string) string {
	fallback := mcpDefaults[key].(string)
	d := config.Default()
	d.Dialect = r.v.GetString(key)
	if err := d.Validate(); err != nil {
		r.warn(key, fallback)
		return fallback
	}
	return d.Dialect
}
