package generator

import (
	"fmt"
	"time"

	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/internal/options"
	"github.com/swagcodegen/swagcodegen/lint"
	"github.com/swagcodegen/swagcodegen/parser"
	"github.com/swagcodegen/swagcodegen/typeconv"
	"github.com/swagcodegen/swagcodegen/view"
)

// Dialects understood by the generator.
const (
	DialectJavaScript = "javascript"
	DialectTypeScript = "typescript"
	DialectFlow       = "flow"
	DialectGo         = "go"
	DialectCustom     = "custom"
)

// Dialects lists every supported dialect.
var Dialects = []string{DialectJavaScript, DialectTypeScript, DialectFlow, DialectGo, DialectCustom}

// Templates holds template text. Empty fields fall back to the dialect's
// embedded defaults.
type Templates struct {
	Class  string
	Method string
	Type   string
}

// GenerateResult contains the rendered code and metadata about the run.
type GenerateResult struct {
	// Code is the generated source
	Code string
	// Dialect is the dialect the code was generated for
	Dialect string
	// SourcePath is the file path or URL of the input, if any
	SourcePath string
	// SourceFormat is the format of the source document (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourceVersion is the declared swagger version
	SourceVersion string
	// ClassName is the class name exposed to templates
	ClassName string
	// Methods is the number of client methods generated
	Methods int
	// Definitions is the number of definitions generated
	Definitions int
	// Warnings are the non-error lint findings, if linting ran
	Warnings []lint.Finding
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to build, render, lint and format
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Generator renders client code. The zero value is not ready for use;
// call New.
type Generator struct {
	// ClassName is the generated class or client type name.
	// Default: "Client"
	ClassName string
	// ModuleName is exposed to templates as moduleName
	ModuleName string
	// PackageName is the Go package name of the go dialect.
	// Default: "api"
	PackageName string
	// Imports are exposed to templates as imports
	Imports []string
	// ES6 marks the view model as ES6; javascript always is
	ES6 bool
	// ESNext predefines ES2015+ globals while linting
	ESNext bool
	// Lint enables linting for the dialects that support it.
	// Default: true
	Lint bool
	// Beautify enables formatting.
	// Default: true
	Beautify bool
	// Templates overrides embedded templates
	Templates Templates
	// Data is merged over the view model; keys here win
	Data map[string]any
	// Converters replace type converters by dialect key; a nil value removes one
	Converters map[string]typeconv.Converter
	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string
	// Logger is the structured logger for debug output
	Logger parser.Logger
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{
		ClassName:   "Client",
		PackageName: "api",
		Lint:        true,
		Beautify:    true,
	}
}

func (g *Generator) log() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

// Generate parses specPath (a file path or URL) and renders it in dialect.
func (g *Generator) Generate(dialect, specPath string) (*GenerateResult, error) {
	parsed, err := g.parse(specPath)
	if err != nil {
		return nil, err
	}
	return g.GenerateParsed(dialect, *parsed)
}

// parse reads specPath with the generator's user agent and logger.
func (g *Generator) parse(specPath string) (*parser.ParseResult, error) {
	p := parser.New()
	if g.UserAgent != "" {
		p.UserAgent = g.UserAgent
	}
	p.Logger = g.Logger
	return p.Parse(specPath)
}

// GenerateParsed renders an already parsed document in dialect.
func (g *Generator) GenerateParsed(dialect string, parsed parser.ParseResult) (*GenerateResult, error) {
	res, err := g.GenerateDocument(dialect, parsed.Document)
	if err != nil {
		return nil, err
	}
	res.SourcePath = parsed.SourcePath
	res.SourceFormat = parsed.SourceFormat
	res.LoadTime = parsed.LoadTime
	res.SourceSize = parsed.SourceSize
	return res, nil
}

// GenerateDocument renders doc in dialect. doc is not modified.
func (g *Generator) GenerateDocument(dialect string, doc *parser.Document) (*GenerateResult, error) {
	if err := options.ValidateOneOf("dialect", dialect, Dialects...); err != nil {
		return nil, &cgerrors.TemplateError{Dialect: dialect, Message: err.Error()}
	}
	start := time.Now()

	tmpl, err := g.templates(dialect)
	if err != nil {
		return nil, err
	}

	model, err := g.builder(dialect).Build(doc)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	source, err := render(tmpl, dialect, model, g.Data)
	if err != nil {
		return nil, err
	}

	warnings, err := g.lint(dialect, source)
	if err != nil {
		return nil, err
	}

	code, err := g.format(dialect, source)
	if err != nil {
		return nil, err
	}

	res := &GenerateResult{
		Code:          code,
		Dialect:       dialect,
		SourceVersion: doc.Swagger,
		ClassName:     model.ClassName,
		Methods:       len(model.Methods),
		Definitions:   len(model.Definitions),
		Warnings:      warnings,
		GenerateTime:  time.Since(start),
	}
	g.log().Debug("generated code",
		"dialect", dialect,
		"methods", res.Methods,
		"definitions", res.Definitions,
		"bytes", len(code))
	return res, nil
}

func (g *Generator) builder(dialect string) *view.Builder {
	opts := []view.Option{
		view.WithDialect(dialect),
		view.WithClassName(g.ClassName),
		view.WithModuleName(g.ModuleName),
		view.WithPackageName(g.PackageName),
		view.WithImports(g.Imports...),
		view.WithES6(g.ES6),
		view.WithLogger(g.Logger),
	}
	if len(g.Converters) > 0 {
		opts = append(opts, view.WithConverters(g.Converters))
	}
	return view.New(opts...)
}
