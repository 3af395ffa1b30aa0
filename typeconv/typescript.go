package typeconv

import (
	"strings"

	"github.com/swagcodegen/swagcodegen/parser"
)

// TypeScript renders TypeScript type expressions.
type TypeScript struct{}

// ConvertType implements Converter.
func (ts TypeScript) ConvertType(s *parser.Schema, doc *parser.Document) string {
	if s == nil {
		return "any"
	}
	t := ts.convert(s, doc)
	if isNullable(s) {
		return t + " | null"
	}
	return t
}

func (ts TypeScript) convert(s *parser.Schema, doc *parser.Document) string {
	switch {
	case s.Ref != "":
		if name, ok := refTarget(s.Ref, doc); ok {
			return name
		}
		return "any"
	case len(s.Enum) > 0:
		return literalUnion(s.Enum)
	case len(s.AllOf) > 0:
		parts := make([]string, len(s.AllOf))
		for i, part := range s.AllOf {
			parts[i] = ts.ConvertType(part, doc)
		}
		return strings.Join(parts, " & ")
	}

	switch schemaType(s) {
	case "string":
		return "string"
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		return "Array<" + ts.ConvertType(s.Items, doc) + ">"
	case "object":
		return ts.object(s, doc)
	default:
		return "any"
	}
}

func (ts TypeScript) object(s *parser.Schema, doc *parser.Document) string {
	if len(s.Properties) == 0 {
		if ap := s.AdditionalProperties; ap != nil && ap.Schema != nil {
			return "{ [key: string]: " + ts.ConvertType(ap.Schema, doc) + " }"
		}
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for _, p := range s.Properties {
		b.WriteString(propertyKey(p.Name))
		if !s.IsRequired(p.Name) {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(ts.ConvertType(p.Schema, doc))
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}
