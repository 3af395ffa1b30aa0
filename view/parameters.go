package view

import (
	"fmt"
	"strings"

	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/internal/naming"
	"github.com/swagcodegen/swagcodegen/parser"
	"github.com/swagcodegen/swagcodegen/typeconv"
)

const (
	extExcludeFromBindings = "x-exclude-from-bindings"
	extProxyHeader         = "x-proxy-header"
	extNamePattern         = "x-name-pattern"
)

// classifyParameters classifies the operation's parameters followed by the
// path-level shared ones. Excluded and proxy-injected parameters are dropped.
func (s *build) classifyParameters(opParams, shared []*parser.Parameter) ([]Parameter, error) {
	raw := make([]*parser.Parameter, 0, len(opParams)+len(shared))
	raw = append(raw, opParams...)
	raw = append(raw, shared...)

	out := make([]Parameter, 0, len(raw))
	for i, p := range raw {
		if p == nil {
			continue
		}
		if reason := dropReason(p); reason != "" {
			s.logger.Debug("dropping parameter", "name", p.Name, "reason", reason)
			continue
		}
		resolved, err := s.resolveParameter(p)
		if err != nil {
			return nil, err
		}
		if reason := dropReason(resolved); reason != "" {
			s.logger.Debug("dropping parameter", "name", resolved.Name, "reason", reason)
			continue
		}
		param, err := s.classify(resolved)
		if err != nil {
			return nil, fmt.Errorf("parameters[%d]: %w", i, err)
		}
		out = append(out, param)
	}
	return out, nil
}

// dropReason names the marker that excludes p from the bindings, if any.
func dropReason(p *parser.Parameter) string {
	if v, ok := p.Extension(extExcludeFromBindings); ok && v == true {
		return extExcludeFromBindings
	}
	if v, ok := p.Extension(extProxyHeader); ok && truthy(v) {
		return extProxyHeader
	}
	return ""
}

// truthy follows JavaScript truthiness for decoded YAML values.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

// resolveParameter follows a $ref into the document's parameters by its last
// path segment. The result is a copy; the document is never modified.
func (s *build) resolveParameter(p *parser.Parameter) (*parser.Parameter, error) {
	if p.Ref == "" {
		return p.Clone(), nil
	}
	name := typeconv.RefName(p.Ref)
	target, ok := s.doc.Parameters[name]
	if !ok || target == nil {
		return nil, &cgerrors.ReferenceError{Ref: p.Ref, Section: "parameters"}
	}
	return target.Clone(), nil
}

func (s *build) classify(p *parser.Parameter) (Parameter, error) {
	loc, err := ParseLocation(p.In)
	if err != nil {
		return Parameter{}, &cgerrors.ValidationError{Path: p.Name, Field: "in", Value: p.In, Message: err.Error()}
	}

	param := Parameter{
		Name:             p.Name,
		CamelCaseName:    naming.CamelCase(p.Name),
		Description:      p.Description,
		Required:         p.Required,
		Type:             p.Type,
		Format:           p.Format,
		CollectionFormat: p.CollectionFormat,
		Default:          p.Default,
		Enum:             p.Enum,
	}
	if len(p.Enum) == 1 {
		param.IsSingleton = true
		param.Singleton = p.Enum[0]
	}

	param.setLocation(loc)
	if loc == LocationQuery {
		if pattern, ok := p.Extension(extNamePattern); ok && truthy(pattern) {
			param.IsPatternType = true
			param.Pattern = fmt.Sprint(pattern)
		}
	}

	param.TypeDescriptor = s.describe(typeconv.ParameterSchema(p))
	if strings.EqualFold(param.Type, "integer") {
		param.Type = "number"
	}
	if !p.Required {
		param.Cardinality = "?"
	}
	return param, nil
}
