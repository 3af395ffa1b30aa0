// Package swagcodegen generates API clients from Swagger 2.0 documents.
//
// A document is parsed once into an order-preserving model, reduced to a
// language neutral view model, and rendered through a dialect's templates.
// JavaScript, TypeScript, Flow and Go clients ship built in; the custom
// dialect renders caller supplied templates.
//
// # Overview
//
// The library is split into small packages, one per stage:
//
//   - parser: Decode a Swagger 2.0 document from a file, URL, reader or bytes
//   - view: Build the view model (methods, parameters, headers, security, definitions)
//   - typeconv: Map schemas to TypeScript, Flow and Go type expressions
//   - generator: Render a view model with text/template and post-process it
//   - lint: Check generated JavaScript and Go for syntax errors
//   - beautify: Re-indent generated JavaScript
//   - cgerrors: Typed errors shared by every stage
//
// # Quick Start
//
// Generate a TypeScript client:
//
//	code, err := generator.GetTypeScriptCode(
//		generator.WithFilePath("swagger.yaml"),
//		generator.WithClassName("PetStore"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(code)
//
// Reuse one parsed document for several dialects:
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("swagger.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	g := generator.New()
//	g.ClassName = "PetStore"
//	for _, dialect := range []string{"javascript", "go"} {
//		result, err := g.GenerateParsed(dialect, *parsed)
//		if err != nil {
//			log.Fatal(err)
//		}
//		_ = result.WriteFile("client" + result.Extension())
//	}
//
// Inspect the view model that templates receive:
//
//	model, err := view.New(view.WithDialect("typescript")).Build(parsed.Document)
//
// # Errors
//
// Every stage returns errors from cgerrors. Use errors.As to tell them
// apart: ParseError for an unreadable document, VersionError for anything
// but Swagger 2.0, ReferenceError for an unresolved $ref, ValidationError
// for an unknown parameter location, TemplateError and LintError for
// rendering failures.
//
// # Command Line
//
// cmd/swagcodegen wraps the library: generate, view, watch and mcp
// subcommands, configured through swagcodegen.yaml and SWAGCODEGEN_*
// environment variables.
package swagcodegen
