package parser

// Schema is a Swagger 2.0 schema object.
type Schema struct {
	Ref                  string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type                 string                `yaml:"type,omitempty" json:"type,omitempty"`
	Format               string                `yaml:"format,omitempty" json:"format,omitempty"`
	Title                string                `yaml:"title,omitempty" json:"title,omitempty"`
	Description          string                `yaml:"description,omitempty" json:"description,omitempty"`
	Default              any                   `yaml:"default,omitempty" json:"default,omitempty"`
	Enum                 []any                 `yaml:"enum,omitempty" json:"enum,omitempty"`
	Required             []string              `yaml:"required,omitempty" json:"required,omitempty"`
	Items                *Schema               `yaml:"items,omitempty" json:"items,omitempty"`
	AllOf                []*Schema             `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	Properties           SchemaMap             `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *AdditionalProperties `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Discriminator        string                `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly             bool                  `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Pattern              string                `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Example              any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Extra                map[string]any        `yaml:",inline" json:"-"`
}

// IsRequired reports whether the named property is listed in Required.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// AdditionalProperties is either a boolean or a schema.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema
}

// SchemaMap holds named schemas in declaration order. It is used for both
// definitions and object properties.
type SchemaMap []NamedSchema

// NamedSchema is a schema together with its declared name.
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Get returns the schema declared under name, or nil.
func (m SchemaMap) Get(name string) *Schema {
	for _, e := range m {
		if e.Name == name {
			return e.Schema
		}
	}
	return nil
}

// Names returns the declared names in order.
func (m SchemaMap) Names() []string {
	names := make([]string, len(m))
	for i, e := range m {
		names[i] = e.Name
	}
	return names
}
