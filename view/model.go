package view

import (
	"fmt"

	"github.com/swagcodegen/swagcodegen/parser"
)

// ViewModel is the data every client template is rendered from. The json
// names are the keys templates refer to.
type ViewModel struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string   `json:"version" yaml:"version"`
	Domain      string   `json:"domain" yaml:"domain"`
	IsSecure    bool     `json:"isSecure" yaml:"isSecure"`
	IsES6       bool     `json:"isES6" yaml:"isES6"`
	ModuleName  string   `json:"moduleName,omitempty" yaml:"moduleName,omitempty"`
	ClassName   string   `json:"className,omitempty" yaml:"className,omitempty"`
	PackageName string   `json:"packageName,omitempty" yaml:"packageName,omitempty"`
	Imports     []string `json:"imports,omitempty" yaml:"imports,omitempty"`

	Methods     []Method     `json:"methods" yaml:"methods"`
	Definitions []Definition `json:"definitions" yaml:"definitions"`

	IsSecureToken  bool `json:"isSecureToken" yaml:"isSecureToken"`
	IsSecureApiKey bool `json:"isSecureApiKey" yaml:"isSecureApiKey"` //nolint:revive // template key
	IsSecureBasic  bool `json:"isSecureBasic" yaml:"isSecureBasic"`
}

// Method is one client call, built from one operation.
type Method struct {
	Path         string               `json:"path" yaml:"path"`
	ClassName    string               `json:"className,omitempty" yaml:"className,omitempty"`
	MethodName   string               `json:"methodName" yaml:"methodName"`
	Method       string               `json:"method" yaml:"method"`
	IsGET        bool                 `json:"isGET" yaml:"isGET"`
	IsPOST       bool                 `json:"isPOST" yaml:"isPOST"`
	Summary      string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	ExternalDocs *parser.ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	Deprecated   bool                 `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Tags         []string             `json:"tags,omitempty" yaml:"tags,omitempty"`

	IsSecure       bool `json:"isSecure" yaml:"isSecure"`
	IsSecureToken  bool `json:"isSecureToken" yaml:"isSecureToken"`
	IsSecureApiKey bool `json:"isSecureApiKey" yaml:"isSecureApiKey"` //nolint:revive // template key
	IsSecureBasic  bool `json:"isSecureBasic" yaml:"isSecureBasic"`

	Parameters    []Parameter `json:"parameters" yaml:"parameters"`
	HasParameters bool        `json:"hasParameters" yaml:"hasParameters"`
	Headers       []Header    `json:"headers" yaml:"headers"`

	IsInlineType        bool            `json:"isInlineType" yaml:"isInlineType"`
	ResponseType        *TypeDescriptor `json:"responseType,omitempty" yaml:"responseType,omitempty"`
	ResponseDescription *string         `json:"responseDescription,omitempty" yaml:"responseDescription,omitempty"`
}

// Header is a fixed request header derived from produces/consumes.
// Value is unquoted; templates quote it for their dialect.
type Header struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// TypeDescriptor holds the type expression of one value in every dialect
// that has a converter configured.
type TypeDescriptor struct {
	TsType   string `json:"tsType,omitempty" yaml:"tsType,omitempty"`
	FlowType string `json:"flowType,omitempty" yaml:"flowType,omitempty"`
	GoType   string `json:"goType,omitempty" yaml:"goType,omitempty"`
}

// Location is where a parameter is sent. The set is closed.
type Location string

// Parameter locations.
const (
	LocationBody   Location = "body"
	LocationPath   Location = "path"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationForm   Location = "form"
)

// ParseLocation maps a Swagger "in" value to a Location.
func ParseLocation(in string) (Location, error) {
	switch in {
	case "body":
		return LocationBody, nil
	case "path":
		return LocationPath, nil
	case "query":
		return LocationQuery, nil
	case "header":
		return LocationHeader, nil
	case "formData":
		return LocationForm, nil
	default:
		return "", fmt.Errorf("unknown parameter location %q", in)
	}
}

// Parameter is a classified operation parameter.
type Parameter struct {
	Name             string   `json:"name" yaml:"name"`
	CamelCaseName    string   `json:"camelCaseName" yaml:"camelCaseName"`
	In               Location `json:"in" yaml:"in"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Required         bool     `json:"required" yaml:"required"`
	Cardinality      string   `json:"cardinality" yaml:"cardinality"`
	Type             string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format           string   `json:"format,omitempty" yaml:"format,omitempty"`
	CollectionFormat string   `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`
	Default          any      `json:"default,omitempty" yaml:"default,omitempty"`
	Enum             []any    `json:"enum,omitempty" yaml:"enum,omitempty"`

	IsSingleton   bool   `json:"isSingleton" yaml:"isSingleton"`
	Singleton     any    `json:"singleton,omitempty" yaml:"singleton,omitempty"`
	IsPatternType bool   `json:"isPatternType" yaml:"isPatternType"`
	Pattern       string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	IsBodyParameter   bool `json:"isBodyParameter" yaml:"isBodyParameter"`
	IsPathParameter   bool `json:"isPathParameter" yaml:"isPathParameter"`
	IsQueryParameter  bool `json:"isQueryParameter" yaml:"isQueryParameter"`
	IsHeaderParameter bool `json:"isHeaderParameter" yaml:"isHeaderParameter"`
	IsFormParameter   bool `json:"isFormParameter" yaml:"isFormParameter"`

	TypeDescriptor `yaml:",inline"`
}

// setLocation records loc and its derived flags.
func (p *Parameter) setLocation(loc Location) {
	p.In = loc
	switch loc {
	case LocationBody:
		p.IsBodyParameter = true
	case LocationPath:
		p.IsPathParameter = true
	case LocationQuery:
		p.IsQueryParameter = true
	case LocationHeader:
		p.IsHeaderParameter = true
	case LocationForm:
		p.IsFormParameter = true
	}
}

// Definition is a named schema from the document's definitions.
type Definition struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	TypeDescriptor `yaml:",inline"`
}
