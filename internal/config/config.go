// Package config loads swagcodegen settings from a config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/generator"
	"github.com/swagcodegen/swagcodegen/internal/options"
)

// EnvPrefix prefixes environment overrides, e.g. SWAGCODEGEN_CLASS_NAME.
const EnvPrefix = "SWAGCODEGEN"

// Config represents the swagcodegen configuration.
type Config struct {
	// Dialect is the target dialect (javascript, typescript, flow, go, custom)
	Dialect string `mapstructure:"dialect" yaml:"dialect" json:"dialect"`

	// ClassName is the generated class or client type name
	ClassName string `mapstructure:"class_name" yaml:"class_name" json:"class_name"`

	// ModuleName is exposed to templates as moduleName
	ModuleName string `mapstructure:"module_name" yaml:"module_name" json:"module_name"`

	// PackageName is the Go package name of the go dialect
	PackageName string `mapstructure:"package_name" yaml:"package_name" json:"package_name"`

	// Output is the output file, or directory when generating several documents
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Lint enables linting for the dialects that support it
	Lint bool `mapstructure:"lint" yaml:"lint" json:"lint"`

	// Beautify enables formatting of the generated code
	Beautify bool `mapstructure:"beautify" yaml:"beautify" json:"beautify"`

	// ESNext predefines ES2015+ globals while linting
	ESNext bool `mapstructure:"esnext" yaml:"esnext" json:"esnext"`

	// ES6 marks the view model as ES6
	ES6 bool `mapstructure:"es6" yaml:"es6" json:"es6"`

	// LogLevel is the CLI log level (debug, info, warn, error)
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`

	// Templates holds template file paths
	Templates TemplatesConfig `mapstructure:"templates" yaml:"templates" json:"templates"`

	// Data is merged over the view model before rendering
	Data map[string]any `mapstructure:"data" yaml:"data" json:"data"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// TemplatesConfig holds template file paths. Empty paths keep the dialect defaults.
type TemplatesConfig struct {
	Class  string `mapstructure:"class" yaml:"class" json:"class"`
	Method string `mapstructure:"method" yaml:"method" json:"method"`
	Type   string `mapstructure:"type" yaml:"type" json:"type"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the quiet period after a change before regenerating
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"swagcodegen.yaml",
	"swagcodegen.json",
	".swagcodegen.yaml",
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Dialect:     generator.DialectJavaScript,
		ClassName:   "Client",
		PackageName: "api",
		Lint:        true,
		Beautify:    true,
		LogLevel:    "info",
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load loads the configuration. When configPath is empty the working
// directory is searched for swagcodegen.yaml, swagcodegen.json and
// .swagcodegen.yaml in that order; without a file only defaults and
// environment overrides apply.
func Load(configPath string) (*Config, error) {
	v := newViper()

	if configPath == "" {
		configPath = FindConfigFile(".")
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				return nil, &cgerrors.ConfigError{Option: "config", Value: configPath, Message: "config file not found", Cause: err}
			}
			return nil, &cgerrors.ConfigError{Option: "config", Value: configPath, Message: "failed to read config file", Cause: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &cgerrors.ConfigError{Option: "config", Message: "failed to unmarshal config", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfigFile returns the first config file present in dir, or "".
func FindConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults sets the default values for viper. Every key needs a default
// so that AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("dialect", d.Dialect)
	v.SetDefault("class_name", d.ClassName)
	v.SetDefault("module_name", d.ModuleName)
	v.SetDefault("package_name", d.PackageName)
	v.SetDefault("output", d.Output)
	v.SetDefault("lint", d.Lint)
	v.SetDefault("beautify", d.Beautify)
	v.SetDefault("esnext", d.ESNext)
	v.SetDefault("es6", d.ES6)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("templates.class", "")
	v.SetDefault("templates.method", "")
	v.SetDefault("templates.type", "")
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

// Validate reports the first invalid setting as a *cgerrors.ConfigError.
func (c *Config) Validate() error {
	if err := options.ValidateOneOf("dialect", c.Dialect, generator.Dialects...); err != nil {
		return &cgerrors.ConfigError{Option: "dialect", Value: c.Dialect, Message: err.Error()}
	}
	if err := options.ValidateOneOf("log level", c.LogLevel, logLevels...); err != nil {
		return &cgerrors.ConfigError{Option: "log_level", Value: c.LogLevel, Message: err.Error()}
	}
	if c.Watch.Debounce < 0 {
		return &cgerrors.ConfigError{Option: "watch.debounce", Value: c.Watch.Debounce, Message: "debounce must be non-negative"}
	}
	return nil
}

// LoadTemplates reads the configured template files.
func (c *Config) LoadTemplates() (generator.Templates, error) {
	var t generator.Templates
	for _, f := range []struct {
		option string
		path   string
		dst    *string
	}{
		{"templates.class", c.Templates.Class, &t.Class},
		{"templates.method", c.Templates.Method, &t.Method},
		{"templates.type", c.Templates.Type, &t.Type},
	} {
		if f.path == "" {
			continue
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return generator.Templates{}, &cgerrors.ConfigError{Option: f.option, Value: f.path, Message: "failed to read template", Cause: err}
		}
		*f.dst = string(data)
	}
	return t, nil
}

// Generator builds a generator configured from c.
func (c *Config) Generator() (*generator.Generator, error) {
	templates, err := c.LoadTemplates()
	if err != nil {
		return nil, err
	}
	g := generator.New()
	g.ClassName = c.ClassName
	g.ModuleName = c.ModuleName
	g.PackageName = c.PackageName
	g.ES6 = c.ES6
	g.ESNext = c.ESNext
	g.Lint = c.Lint
	g.Beautify = c.Beautify
	g.Templates = templates
	g.Data = c.Data
	return g, nil
}

// String renders c for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("dialect=%s class=%s package=%s lint=%t beautify=%t",
		c.Dialect, c.ClassName, c.PackageName, c.Lint, c.Beautify)
}
