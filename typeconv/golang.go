package typeconv

import (
	"strings"

	"github.com/swagcodegen/swagcodegen/parser"
)

// Go renders Go type expressions. Objects become anonymous struct types with
// json tags; optional scalar properties are pointers.
type Go struct{}

// SanitizeReservedWords converts name to an exported, keyword-safe Go identifier.
func (Go) SanitizeReservedWords(name string) string {
	return GoTypeName(name)
}

// ConvertType implements Converter.
func (g Go) ConvertType(s *parser.Schema, doc *parser.Document) string {
	if s == nil {
		return "any"
	}
	switch {
	case s.Ref != "":
		if name, ok := refTarget(s.Ref, doc); ok {
			return GoTypeName(name)
		}
		return "any"
	case len(s.AllOf) == 1:
		return g.ConvertType(s.AllOf[0], doc)
	case len(s.AllOf) > 1:
		return g.allOf(s, doc)
	}

	switch schemaType(s) {
	case "string":
		return stringFormatToGoType(s.Format)
	case "integer":
		return integerFormatToGoType(s.Format)
	case "number":
		return numberFormatToGoType(s.Format)
	case "boolean":
		return "bool"
	case "array":
		return "[]" + g.ConvertType(s.Items, doc)
	case "object":
		return g.object(s, doc)
	case "file":
		return "[]byte"
	default:
		return "any"
	}
}

func (g Go) object(s *parser.Schema, doc *parser.Document) string {
	if len(s.Properties) == 0 {
		if ap := s.AdditionalProperties; ap != nil && ap.Schema != nil {
			return "map[string]" + g.ConvertType(ap.Schema, doc)
		}
		return "map[string]any"
	}
	var b strings.Builder
	b.WriteString("struct {\n")
	g.writeFields(&b, s, doc)
	b.WriteString("}")
	return b.String()
}

// allOf embeds referenced schemas and flattens inline properties.
func (g Go) allOf(s *parser.Schema, doc *parser.Document) string {
	var b strings.Builder
	b.WriteString("struct {\n")
	for _, part := range s.AllOf {
		if part == nil {
			continue
		}
		if part.Ref != "" {
			b.WriteString("\t" + GoTypeName(RefName(part.Ref)) + "\n")
			continue
		}
		g.writeFields(&b, part, doc)
	}
	b.WriteString("}")
	return b.String()
}

func (g Go) writeFields(b *strings.Builder, s *parser.Schema, doc *parser.Document) {
	for _, p := range s.Properties {
		typ := g.ConvertType(p.Schema, doc)
		tag := p.Name
		if !s.IsRequired(p.Name) {
			tag += ",omitempty"
			if isGoScalar(typ) {
				typ = "*" + typ
			}
		}
		b.WriteString("\t" + GoTypeName(p.Name) + " " + typ + " `json:\"" + tag + "\"`\n")
	}
}

func isGoScalar(t string) bool {
	switch t {
	case "string", "bool", "int32", "int64", "float32", "float64", "time.Time":
		return true
	}
	return false
}

func stringFormatToGoType(format string) string {
	switch format {
	case "date-time":
		return "time.Time"
	case "byte", "binary":
		return "[]byte"
	default:
		return "string"
	}
}

func integerFormatToGoType(format string) string {
	if format == "int32" {
		return "int32"
	}
	return "int64"
}

func numberFormatToGoType(format string) string {
	if format == "float" {
		return "float32"
	}
	return "float64"
}
