package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// content unwraps document and alias nodes.
func content(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return node
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return node
}

// eachPair calls fn for every key/value pair of a mapping node, in order.
func eachPair(node *yaml.Node, what string, fn func(key string, value *yaml.Node) error) error {
	node = content(node)
	if node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", node.Line, what)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := content(node.Content[i])
		if err := fn(key.Value, content(node.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// hasKey reports whether a mapping node declares key.
func hasKey(node *yaml.Node, key string) bool {
	node = content(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if content(node.Content[i]).Value == key {
			return true
		}
	}
	return false
}

// UnmarshalYAML records which optional security keys are present.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type plain Document
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*d = Document(raw)
	d.hasSecurity = hasKey(node, "security")
	d.hasSecurityDefinitions = hasKey(node, "securityDefinitions")
	return nil
}

// UnmarshalYAML records whether the operation declares security.
func (o *Operation) UnmarshalYAML(node *yaml.Node) error {
	type plain Operation
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*o = Operation(raw)
	o.hasSecurity = hasKey(node, "security")
	return nil
}

// UnmarshalYAML decodes paths in declaration order.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	var out Paths
	err := eachPair(node, "paths", func(key string, value *yaml.Node) error {
		if strings.HasPrefix(key, "x-") {
			return nil
		}
		item := &PathItem{}
		if err := item.UnmarshalYAML(value); err != nil {
			return fmt.Errorf("path %s: %w", key, err)
		}
		out = append(out, PathEntry{Path: key, Item: item})
		return nil
	})
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// UnmarshalYAML decodes a path item, keeping operations in declaration order.
func (pi *PathItem) UnmarshalYAML(node *yaml.Node) error {
	return eachPair(node, "path item", func(key string, value *yaml.Node) error {
		switch {
		case key == "$ref":
			pi.Ref = value.Value
		case strings.EqualFold(key, "parameters"):
			var params []*Parameter
			if err := value.Decode(&params); err != nil {
				return fmt.Errorf("parameters: %w", err)
			}
			pi.Parameters = params
		case strings.HasPrefix(key, "x-"):
			var v any
			if err := value.Decode(&v); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			if pi.Extensions == nil {
				pi.Extensions = make(map[string]any)
			}
			pi.Extensions[key] = v
		case value.Kind == yaml.MappingNode:
			op := &Operation{}
			if err := value.Decode(op); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			pi.Operations = append(pi.Operations, OperationEntry{Method: key, Operation: op})
		}
		return nil
	})
}

// UnmarshalYAML decodes responses in declaration order.
func (r *Responses) UnmarshalYAML(node *yaml.Node) error {
	var out Responses
	err := eachPair(node, "responses", func(key string, value *yaml.Node) error {
		if strings.HasPrefix(key, "x-") {
			return nil
		}
		resp := &Response{}
		if err := value.Decode(resp); err != nil {
			return fmt.Errorf("response %s: %w", key, err)
		}
		out = append(out, ResponseEntry{Code: key, Response: resp})
		return nil
	})
	if err != nil {
		return err
	}
	*r = out
	return nil
}

// UnmarshalYAML decodes named schemas in declaration order.
func (m *SchemaMap) UnmarshalYAML(node *yaml.Node) error {
	var out SchemaMap
	err := eachPair(node, "schema map", func(key string, value *yaml.Node) error {
		s := &Schema{}
		if err := value.Decode(s); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, NamedSchema{Name: key, Schema: s})
		return nil
	})
	if err != nil {
		return err
	}
	*m = out
	return nil
}

// UnmarshalYAML accepts either a boolean or a schema.
func (a *AdditionalProperties) UnmarshalYAML(node *yaml.Node) error {
	node = content(node)
	if node.Kind == yaml.ScalarNode {
		var allowed bool
		if err := node.Decode(&allowed); err != nil {
			return fmt.Errorf("additionalProperties: %w", err)
		}
		a.Allowed = allowed
		return nil
	}
	s := &Schema{}
	if err := node.Decode(s); err != nil {
		return fmt.Errorf("additionalProperties: %w", err)
	}
	a.Allowed = true
	a.Schema = s
	return nil
}
