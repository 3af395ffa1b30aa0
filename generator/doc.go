// Package generator renders client source code from Swagger 2.0 documents.
//
// A document is turned into a [view.ViewModel], converted to a generic map,
// merged with caller data and rendered with text/template. The result is
// then linted and formatted depending on the dialect.
//
// # Quick Start
//
//	code, err := generator.GetTypeScriptCode(
//		generator.WithFilePath("swagger.yaml"),
//		generator.WithClassName("PetStore"),
//	)
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.ClassName = "PetStore"
//	result, err := g.Generate(generator.DialectGo, "swagger.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.WriteFile("./client/client.go")
//
// # Dialects
//
// The built-in dialects are javascript, typescript, flow and go. Each ships
// a class template, a method template and, except javascript, a type
// template; any of them can be replaced with [WithTemplate]. The custom
// dialect has no defaults and requires at least a class and a method
// template.
//
// # Templates
//
// The class template is the root. The method template is available as
// {{template "method" .}} and the type template as {{template "type" .}}.
// Template data uses the json names of [view.ViewModel]. Every method and
// definition also sees the top-level keys it does not define itself, so a
// method template can refer to {{.className}} or {{.isES6}} directly.
//
// Functions available to templates: quote, js (text/template builtin),
// json, join, lower, upper, camel, pascal, comment, goType and goParam.
//
// # Lint and Format
//
// Output of the javascript, typescript and flow dialects is never linted.
// custom output is checked with [lint.JavaScript] and go output with
// [lint.Go]; an error-class finding fails generation with a
// [cgerrors.LintError]. Formatting uses [beautify.Go] for go,
// [beautify.Typed] for typescript and flow, and [beautify.JavaScript] for
// javascript and custom.
package generator
