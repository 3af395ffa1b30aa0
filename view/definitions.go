package view

import "github.com/swagcodegen/swagcodegen/typeconv"

// mapDefinitions maps every definition in declaration order. Names are passed
// through the target dialect's sanitizer when it has one.
func (s *build) mapDefinitions() []Definition {
	target := s.converters[s.dialect]
	defs := make([]Definition, 0, len(s.doc.Definitions))
	for _, entry := range s.doc.Definitions {
		name := entry.Name
		if target != nil {
			name = typeconv.Sanitize(target, name)
		}
		def := Definition{
			Name:           name,
			TypeDescriptor: s.describe(entry.Schema),
		}
		if entry.Schema != nil {
			def.Description = entry.Schema.Description
		}
		defs = append(defs, def)
	}
	return defs
}
