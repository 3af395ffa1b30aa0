package generator

import (
	"fmt"
	"maps"

	"github.com/swagcodegen/swagcodegen/internal/options"
	"github.com/swagcodegen/swagcodegen/parser"
	"github.com/swagcodegen/swagcodegen/typeconv"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	document *parser.Document

	gen *Generator
}

// GenerateWithOptions renders dialect code using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(generator.DialectTypeScript,
//	    generator.WithFilePath("swagger.yaml"),
//	    generator.WithClassName("PetStore"),
//	)
func GenerateWithOptions(dialect string, opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	parsed, err := cfg.parse()
	if err != nil {
		return nil, err
	}
	return cfg.gen.GenerateParsed(dialect, *parsed)
}

// parse resolves the configured input source to a parse result.
func (cfg *generateConfig) parse() (*parser.ParseResult, error) {
	switch {
	case cfg.filePath != nil:
		return cfg.gen.parse(*cfg.filePath)
	case cfg.parsed != nil:
		return cfg.parsed, nil
	default:
		return &parser.ParseResult{Document: cfg.document, Version: cfg.document.Swagger}, nil
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{gen: New()}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath, WithParsed, or WithDocument)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil, cfg.document != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		if result.Document == nil {
			return fmt.Errorf("generator: parse result has no document")
		}
		cfg.parsed = &result
		return nil
	}
}

// WithDocument specifies a decoded document as the input source
func WithDocument(doc *parser.Document) Option {
	return func(cfg *generateConfig) error {
		if doc == nil {
			return fmt.Errorf("generator: document cannot be nil")
		}
		cfg.document = doc
		return nil
	}
}

// WithClassName sets the generated class or client type name.
// Default: "Client"
func WithClassName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: class name cannot be empty")
		}
		cfg.gen.ClassName = name
		return nil
	}
}

// WithModuleName sets the module name exposed to templates
func WithModuleName(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.ModuleName = name
		return nil
	}
}

// WithPackageName sets the Go package name of the go dialect.
// Default: "api"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: package name cannot be empty")
		}
		cfg.gen.PackageName = name
		return nil
	}
}

// WithImports sets the imports exposed to templates
func WithImports(imports ...string) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.Imports = append([]string(nil), imports...)
		return nil
	}
}

// WithES6 marks the view model as ES6
func WithES6(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.ES6 = enabled
		return nil
	}
}

// WithTemplate overrides the class, method and type templates. Empty
// fields keep the dialect defaults.
func WithTemplate(t Templates) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.Templates = t
		return nil
	}
}

// WithData merges data over the view model before rendering. Repeated
// calls accumulate; later keys win.
func WithData(data map[string]any) Option {
	return func(cfg *generateConfig) error {
		if cfg.gen.Data == nil {
			cfg.gen.Data = make(map[string]any, len(data))
		}
		maps.Copy(cfg.gen.Data, data)
		return nil
	}
}

// WithESNext predefines ES2015+ globals while linting
func WithESNext(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.ESNext = enabled
		return nil
	}
}

// WithLint enables or disables linting.
// Default: true
func WithLint(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.Lint = enabled
		return nil
	}
}

// WithBeautify enables or disables formatting.
// Default: true
func WithBeautify(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.Beautify = enabled
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.Logger = l
		return nil
	}
}

// WithConverters replaces type converters by dialect key. A nil value
// removes that dialect's descriptor.
func WithConverters(converters map[string]typeconv.Converter) Option {
	return func(cfg *generateConfig) error {
		if cfg.gen.Converters == nil {
			cfg.gen.Converters = make(map[string]typeconv.Converter, len(converters))
		}
		maps.Copy(cfg.gen.Converters, converters)
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
func WithUserAgent(ua string) Option {
	return func(cfg *generateConfig) error {
		cfg.gen.UserAgent = ua
		return nil
	}
}
