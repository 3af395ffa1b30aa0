package typeconv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/swagcodegen/swagcodegen/parser"
)

// Converter renders a schema as a dialect-specific type expression.
// doc is used to look up $ref targets and may be nil.
type Converter interface {
	ConvertType(schema *parser.Schema, doc *parser.Document) string
}

// Sanitizer is implemented by converters whose dialect reserves some type names.
type Sanitizer interface {
	SanitizeReservedWords(name string) string
}

// Dialect names of the built-in converters.
const (
	DialectTypeScript = "typescript"
	DialectFlow       = "flow"
	DialectGo         = "go"
)

// Defaults returns a fresh set of the built-in converters keyed by dialect.
func Defaults() map[string]Converter {
	return map[string]Converter{
		DialectTypeScript: TypeScript{},
		DialectFlow:       Flow{},
		DialectGo:         Go{},
	}
}

// Sanitize passes name through c's sanitizer when it has one.
func Sanitize(c Converter, name string) string {
	if s, ok := c.(Sanitizer); ok {
		return s.SanitizeReservedWords(name)
	}
	return name
}

// ParameterSchema returns the schema describing a parameter's value: the
// body schema for body parameters, otherwise a schema built from the
// parameter's own type fields.
func ParameterSchema(p *parser.Parameter) *parser.Schema {
	if p == nil {
		return nil
	}
	if p.Schema != nil {
		return p.Schema
	}
	return &parser.Schema{
		Type:    p.Type,
		Format:  p.Format,
		Items:   p.Items,
		Enum:    p.Enum,
		Default: p.Default,
		Pattern: p.Pattern,
		Extra:   p.Extra,
	}
}

// RefName returns the last segment of a JSON pointer reference.
// Example: "#/definitions/Pet" -> "Pet"
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// schemaType returns the declared type, inferring it from structure when absent.
func schemaType(s *parser.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	switch {
	case len(s.Properties) > 0 || s.AdditionalProperties != nil:
		return "object"
	case s.Items != nil:
		return "array"
	}
	return ""
}

// isNullable reports the x-nullable vendor extension.
func isNullable(s *parser.Schema) bool {
	v, ok := s.Extra["x-nullable"].(bool)
	return ok && v
}

// literal renders an enum value as a TypeScript/Flow literal type.
func literal(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", `\'`) + "'"
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// literalUnion joins enum values with " | ".
func literalUnion(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = literal(v)
	}
	return strings.Join(parts, " | ")
}

// isIdentifier reports whether name can be used unquoted as a property key.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// propertyKey quotes name when it is not a plain identifier.
func propertyKey(name string) string {
	if isIdentifier(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
}

// refTarget returns the definition name a $ref points at. When doc is
// available, references to definitions it does not declare report false.
func refTarget(ref string, doc *parser.Document) (string, bool) {
	name := RefName(ref)
	if doc == nil || !strings.HasPrefix(ref, "#/definitions/") {
		return name, true
	}
	return name, doc.Definitions.Get(name) != nil
}
