package view

import (
	"fmt"
	"strings"

	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/internal/httputil"
	"github.com/swagcodegen/swagcodegen/parser"
	"github.com/swagcodegen/swagcodegen/typeconv"
)

// SupportedVersion is the only swagger version the builder accepts.
const SupportedVersion = "2.0"

// Builder builds view models from documents.
type Builder struct {
	dialect     string
	className   string
	moduleName  string
	packageName string
	imports     []string
	es6         bool
	converters  map[string]typeconv.Converter
	logger      parser.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// New creates a Builder. Without WithConverters the built-in TypeScript,
// Flow and Go converters are used.
func New(opts ...Option) *Builder {
	b := &Builder{
		converters: typeconv.Defaults(),
		logger:     parser.NopLogger{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithDialect sets the target dialect. It selects the converter whose
// sanitizer is applied to definition names, and "javascript" implies ES6.
func WithDialect(dialect string) Option {
	return func(b *Builder) { b.dialect = dialect }
}

// WithClassName sets the generated class name.
func WithClassName(name string) Option {
	return func(b *Builder) { b.className = name }
}

// WithModuleName sets the generated module name.
func WithModuleName(name string) Option {
	return func(b *Builder) { b.moduleName = name }
}

// WithPackageName sets the package name used by the go dialect.
func WithPackageName(name string) Option {
	return func(b *Builder) { b.packageName = name }
}

// WithImports sets extra imports exposed to templates.
func WithImports(imports ...string) Option {
	return func(b *Builder) { b.imports = append([]string(nil), imports...) }
}

// WithES6 marks the model as targeting ES6.
func WithES6(enabled bool) Option {
	return func(b *Builder) { b.es6 = enabled }
}

// WithConverters replaces converters by dialect key ("typescript", "flow",
// "go"). A nil value removes the dialect.
func WithConverters(converters map[string]typeconv.Converter) Option {
	return func(b *Builder) {
		for dialect, c := range converters {
			if c == nil {
				delete(b.converters, dialect)
				continue
			}
			b.converters[dialect] = c
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l parser.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// build holds the state of a single Build call.
type build struct {
	*Builder
	doc   *parser.Document
	names methodNames
	model *ViewModel
}

// Build transforms doc into a ViewModel. doc is not modified.
func (b *Builder) Build(doc *parser.Document) (*ViewModel, error) {
	if doc == nil {
		return nil, &cgerrors.ValidationError{Message: "no document"}
	}
	if doc.Swagger != SupportedVersion {
		return nil, &cgerrors.VersionError{Found: doc.Swagger, Supported: SupportedVersion}
	}

	s := &build{
		Builder: b,
		doc:     doc,
		names:   methodNames{},
		model:   b.newModel(doc),
	}

	for _, entry := range doc.Paths {
		if err := s.walkPath(entry.Path, entry.Item); err != nil {
			return nil, err
		}
	}
	s.model.Definitions = s.mapDefinitions()

	b.logger.Debug("built view model",
		"methods", len(s.model.Methods),
		"definitions", len(s.model.Definitions))
	return s.model, nil
}

func (b *Builder) newModel(doc *parser.Document) *ViewModel {
	m := &ViewModel{
		IsSecure:    doc.HasSecurityDefinitions(),
		IsES6:       b.es6 || b.dialect == "javascript",
		ModuleName:  b.moduleName,
		ClassName:   b.className,
		PackageName: b.packageName,
		Imports:     b.imports,
		Domain:      domain(doc),
		Methods:     []Method{},
		Definitions: []Definition{},
	}
	if doc.Info != nil {
		m.Title = doc.Info.Title
		m.Description = doc.Info.Description
		m.Version = doc.Info.Version
	}
	return m
}

// domain is schemes[0]://host+basePath without trailing slashes, or empty
// when any of the three is missing.
func domain(doc *parser.Document) string {
	if len(doc.Schemes) == 0 || doc.Host == "" || doc.BasePath == "" {
		return ""
	}
	return doc.Schemes[0] + "://" + doc.Host + strings.TrimRight(doc.BasePath, "/")
}

func (s *build) walkPath(path string, item *parser.PathItem) error {
	if item == nil {
		return nil
	}
	for _, entry := range item.Operations {
		verb := strings.ToUpper(entry.Method)
		if !httputil.IsClientMethod(verb) {
			s.logger.Debug("skipping unsupported verb", "path", path, "verb", entry.Method)
			continue
		}
		method, err := s.buildMethod(path, verb, entry.Operation, item.Parameters)
		if err != nil {
			return fmt.Errorf("view: %s %s: %w", verb, path, err)
		}
		s.model.Methods = append(s.model.Methods, method)
	}
	return nil
}

func (s *build) buildMethod(path, verb string, op *parser.Operation, shared []*parser.Parameter) (Method, error) {
	if op == nil {
		op = &parser.Operation{}
	}

	name := s.names.unique(methodName(op, verb, path))
	m := Method{
		Path:         path,
		ClassName:    s.className,
		MethodName:   name,
		Method:       verb,
		IsGET:        verb == httputil.MethodGet,
		IsPOST:       verb == httputil.MethodPost,
		Summary:      op.Description,
		ExternalDocs: op.ExternalDocs,
		Deprecated:   op.Deprecated,
		Tags:         op.Tags,
		Headers:      s.headers(op),
	}
	if m.Summary == "" {
		m.Summary = op.Summary
	}

	sec := resolveSecurity(s.doc, op)
	m.IsSecure = sec.isSecure
	m.IsSecureToken = sec.token
	m.IsSecureApiKey = sec.apiKey
	m.IsSecureBasic = sec.basic
	if m.IsSecure {
		s.model.IsSecureToken = s.model.IsSecureToken || m.IsSecureToken
		s.model.IsSecureApiKey = s.model.IsSecureApiKey || m.IsSecureApiKey
		s.model.IsSecureBasic = s.model.IsSecureBasic || m.IsSecureBasic
	}

	params, err := s.classifyParameters(op.Parameters, shared)
	if err != nil {
		return Method{}, err
	}
	m.Parameters = params
	m.HasParameters = len(params) > 0

	resp, err := s.resolveResponse(op)
	if err != nil {
		return Method{}, err
	}
	m.IsInlineType = resp.typ != nil
	m.ResponseType = resp.typ
	m.ResponseDescription = resp.description

	return m, nil
}

// headers derives Accept from produces and Content-Type from consumes;
// operation-level lists replace document-level ones.
func (s *build) headers(op *parser.Operation) []Header {
	headers := []Header{}
	produces := op.Produces
	if produces == nil {
		produces = s.doc.Produces
	}
	s.checkMediaTypes("produces", produces)
	if len(produces) > 0 {
		headers = append(headers, Header{Name: "Accept", Value: strings.Join(produces, ", ")})
	}
	consumes := op.Consumes
	if consumes == nil {
		consumes = s.doc.Consumes
	}
	s.checkMediaTypes("consumes", consumes)
	if len(consumes) > 0 {
		headers = append(headers, Header{Name: "Content-Type", Value: strings.Join(consumes, ",")})
	}
	return headers
}

// checkMediaTypes logs malformed media types. They are still sent as given.
func (s *build) checkMediaTypes(field string, types []string) {
	for _, t := range types {
		if !httputil.IsValidMediaType(t) {
			s.logger.Warn("malformed media type", "field", field, "value", t)
		}
	}
}

// describe converts schema with every configured converter.
func (s *build) describe(schema *parser.Schema) TypeDescriptor {
	var td TypeDescriptor
	for dialect, c := range s.converters {
		t := c.ConvertType(schema, s.doc)
		switch dialect {
		case typeconv.DialectTypeScript:
			td.TsType = t
		case typeconv.DialectFlow:
			td.FlowType = t
		case typeconv.DialectGo:
			td.GoType = t
		}
	}
	return td
}
