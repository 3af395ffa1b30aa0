// Package typeconv renders Swagger schemas as type expressions for each
// target dialect.
//
// A [Converter] maps a schema (or a non-body parameter, via
// [ParameterSchema]) to a type expression string. Converters for dialects
// whose type names can collide with reserved words also implement
// [Sanitizer]; definition names and $ref targets go through it so that a
// definition and every reference to it agree.
//
//	ts := typeconv.TypeScript{}
//	ts.ConvertType(&parser.Schema{Type: "array", Items: &parser.Schema{Type: "integer"}}, doc)
//	// Array<number>
//
// Converters are stateless and safe for concurrent use.
package typeconv
