package parser

import "slices"

// Document is a Swagger 2.0 document.
//
// Callers should treat a decoded Document as read-only.
type Document struct {
	Swagger             string                     `yaml:"swagger" json:"swagger"`
	Info                *Info                      `yaml:"info,omitempty" json:"info,omitempty"`
	Host                string                     `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath            string                     `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes             []string                   `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Consumes            []string                   `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces            []string                   `yaml:"produces,omitempty" json:"produces,omitempty"`
	Paths               Paths                      `yaml:"paths,omitempty" json:"paths,omitempty"`
	Definitions         SchemaMap                  `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	Parameters          map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses           map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme `yaml:"securityDefinitions,omitempty" json:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement      `yaml:"security,omitempty" json:"security,omitempty"`
	Tags                []*Tag                     `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs        *ExternalDocs              `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extra               map[string]any             `yaml:",inline" json:"-"`

	hasSecurity            bool
	hasSecurityDefinitions bool
}

// HasSecurity reports whether the document declares a top-level security
// key, even an empty one.
func (d *Document) HasSecurity() bool {
	return d.hasSecurity || len(d.Security) > 0
}

// HasSecurityDefinitions reports whether the document declares a
// securityDefinitions key, even an empty one.
func (d *Document) HasSecurityDefinitions() bool {
	return d.hasSecurityDefinitions || len(d.SecurityDefinitions) > 0
}

// Info provides metadata about the API.
type Info struct {
	Title          string         `yaml:"title" json:"title"`
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string         `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Version        string         `yaml:"version" json:"version"`
	Extra          map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

// ExternalDocs points at additional documentation.
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
}

// Paths holds the path items in declaration order.
type Paths []PathEntry

// PathEntry is one path template and its item.
type PathEntry struct {
	Path string
	Item *PathItem
}

// Get returns the item for path, or nil.
func (p Paths) Get(path string) *PathItem {
	for _, e := range p {
		if e.Path == path {
			return e.Item
		}
	}
	return nil
}

// PathItem holds the operations declared under one path.
//
// Every mapping-valued key other than parameters, $ref and x- extensions is
// kept as an operation under its declared key, so non-standard verbs such as
// COPY or PROPFIND survive decoding. Filtering verbs is left to consumers.
type PathItem struct {
	Ref        string
	Parameters []*Parameter
	Operations []OperationEntry
	Extensions map[string]any
}

// OperationEntry is an operation together with the key it was declared under.
type OperationEntry struct {
	Method    string
	Operation *Operation
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Consumes     []string              `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces     []string              `yaml:"produces,omitempty" json:"produces,omitempty"`
	Parameters   []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses    Responses             `yaml:"responses,omitempty" json:"responses,omitempty"`
	Schemes      []string              `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Deprecated   bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Extra        map[string]any        `yaml:",inline" json:"-"`

	hasSecurity bool
}

// HasSecurity reports whether the operation declares a security key, even
// an empty one.
func (o *Operation) HasSecurity() bool {
	return o.hasSecurity || len(o.Security) > 0
}

// Parameter describes a single operation parameter, or a $ref to one.
type Parameter struct {
	Ref              string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name             string         `yaml:"name,omitempty" json:"name,omitempty"`
	In               string         `yaml:"in,omitempty" json:"in,omitempty"`
	Description      string         `yaml:"description,omitempty" json:"description,omitempty"`
	Required         bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Schema           *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Type             string         `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string         `yaml:"format,omitempty" json:"format,omitempty"`
	AllowEmptyValue  bool           `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Items            *Schema        `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat string         `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Default          any            `yaml:"default,omitempty" json:"default,omitempty"`
	Enum             []any          `yaml:"enum,omitempty" json:"enum,omitempty"`
	Pattern          string         `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Extra            map[string]any `yaml:",inline" json:"-"`
}

// Extension returns the value of the x- extension key, if present.
func (p *Parameter) Extension(key string) (any, bool) {
	v, ok := p.Extra[key]
	return v, ok
}

// Clone returns a shallow copy of p with its own Extra and Enum storage.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	c := *p
	if p.Extra != nil {
		c.Extra = make(map[string]any, len(p.Extra))
		for k, v := range p.Extra {
			c.Extra[k] = v
		}
	}
	c.Enum = slices.Clone(p.Enum)
	return &c
}

// Responses holds an operation's responses in declaration order.
type Responses []ResponseEntry

// ResponseEntry is a status code (or "default") and its response.
type ResponseEntry struct {
	Code     string
	Response *Response
}

// Get returns the response for code, or nil.
func (r Responses) Get(code string) *Response {
	for _, e := range r {
		if e.Code == code {
			return e.Response
		}
	}
	return nil
}

// Response describes a single response from an API operation.
type Response struct {
	Ref         string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Schema      *Schema            `yaml:"schema,omitempty" json:"schema,omitempty"`
	Headers     map[string]*Schema `yaml:"headers,omitempty" json:"headers,omitempty"`
	Examples    map[string]any     `yaml:"examples,omitempty" json:"examples,omitempty"`
	Extra       map[string]any     `yaml:",inline" json:"-"`
}

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Type             string            `yaml:"type" json:"type"`
	Description      string            `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string            `yaml:"name,omitempty" json:"name,omitempty"`
	In               string            `yaml:"in,omitempty" json:"in,omitempty"`
	Flow             string            `yaml:"flow,omitempty" json:"flow,omitempty"`
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// SecurityRequirement maps scheme names to required scopes.
type SecurityRequirement map[string][]string
