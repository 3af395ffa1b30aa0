package typeconv

import (
	"strings"

	"github.com/swagcodegen/swagcodegen/parser"
)

// flowReserved are names that collide with Flow built-in types.
var flowReserved = map[string]bool{
	"any": true, "mixed": true, "empty": true, "number": true, "string": true,
	"boolean": true, "void": true, "null": true, "Object": true, "Array": true,
	"Function": true, "Class": true, "Symbol": true, "Date": true, "Promise": true,
	"Map": true, "Set": true, "Error": true, "Number": true, "String": true,
	"Boolean": true,
}

// Flow renders Flow type annotations.
type Flow struct{}

// SanitizeReservedWords appends "Type" to names that shadow a Flow built-in.
func (Flow) SanitizeReservedWords(name string) string {
	if flowReserved[name] {
		return name + "Type"
	}
	return name
}

// ConvertType implements Converter.
func (f Flow) ConvertType(s *parser.Schema, doc *parser.Document) string {
	if s == nil {
		return "any"
	}
	t := f.convert(s, doc)
	if isNullable(s) {
		return "?" + t
	}
	return t
}

func (f Flow) convert(s *parser.Schema, doc *parser.Document) string {
	switch {
	case s.Ref != "":
		if name, ok := refTarget(s.Ref, doc); ok {
			return f.SanitizeReservedWords(name)
		}
		return "any"
	case len(s.Enum) > 0:
		return literalUnion(s.Enum)
	case len(s.AllOf) > 0:
		parts := make([]string, len(s.AllOf))
		for i, part := range s.AllOf {
			parts[i] = f.ConvertType(part, doc)
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
		return "Array<" + f.ConvertType(s.Items, doc) + ">"
	case "object":
		return f.object(s, doc)
	default:
		return "any"
	}
}

func (f Flow) object(s *parser.Schema, doc *parser.Document) string {
	if len(s.Properties) == 0 {
		if ap := s.AdditionalProperties; ap != nil && ap.Schema != nil {
			return "{ [key: string]: " + f.ConvertType(ap.Schema, doc) + " }"
		}
		return "{}"
	}
	fields := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		key := propertyKey(p.Name)
		if !s.IsRequired(p.Name) {
			key += "?"
		}
		fields = append(fields, key+": "+f.ConvertType(p.Schema, doc))
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}
