package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/swagcodegen/swagcodegen/generator"
)

type generateInput struct {
	Spec           docSource      `json:"spec"                      jsonschema:"The Swagger 2.0 document to generate a client from"`
	Dialect        string         `json:"dialect,omitempty"         jsonschema:"Target dialect: javascript, typescript, flow, go or custom (default from SWAGCODEGEN_MCP_DIALECT)"`
	ClassName      string         `json:"class_name,omitempty"      jsonschema:"Generated class or client type name"`
	ModuleName     string         `json:"module_name,omitempty"     jsonschema:"Module name exposed to templates"`
	PackageName    string         `json:"package_name,omitempty"    jsonschema:"Go package name for the go dialect (default: api)"`
	ES6            bool           `json:"es6,omitempty"             jsonschema:"Mark the view model as ES6"`
	ESNext         bool           `json:"esnext,omitempty"          jsonschema:"Predefine ES2015+ globals while linting"`
	Lint           *bool          `json:"lint,omitempty"            jsonschema:"Lint the generated code where the dialect supports it"`
	Beautify       *bool          `json:"beautify,omitempty"        jsonschema:"Format the generated code"`
	ClassTemplate  string         `json:"class_template,omitempty"  jsonschema:"Class template source (text/template)"`
	MethodTemplate string         `json:"method_template,omitempty" jsonschema:"Method template source (text/template)"`
	TypeTemplate   string         `json:"type_template,omitempty"   jsonschema:"Type template source (text/template)"`
	Data           map[string]any `json:"data,omitempty"            jsonschema:"Extra template data merged over the view model"`
	Output         string         `json:"output,omitempty"          jsonschema:"File to write the generated code to instead of returning it"`
}

type lintWarning struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
	Line   int    `json:"line,omitempty"`
}

type generateOutput struct {
	Dialect       string        `json:"dialect"`
	ClassName     string        `json:"class_name"`
	SourceVersion string        `json:"source_version"`
	Methods       int           `json:"methods"`
	Definitions   int           `json:"definitions"`
	Size          int           `json:"size"`
	Output        string        `json:"output,omitempty"`
	Code          string        `json:"code,omitempty"`
	WarningCount  int           `json:"warning_count"`
	Warnings      []lintWarning `json:"warnings,omitempty"`
}

func (in generateInput) options() []generator.Option {
	opts := []generator.Option{
		generator.WithES6(in.ES6),
		generator.WithESNext(in.ESNext),
		generator.WithLint(cfg.Lint),
		generator.WithBeautify(cfg.Beautify),
	}
	className := in.ClassName
	if className == "" {
		className = cfg.ClassName
	}
	if className != "" {
		opts = append(opts, generator.WithClassName(className))
	}
	if in.ModuleName != "" {
		opts = append(opts, generator.WithModuleName(in.ModuleName))
	}
	if in.PackageName != "" {
		opts = append(opts, generator.WithPackageName(in.PackageName))
	}
	if in.Lint != nil {
		opts = append(opts, generator.WithLint(*in.Lint))
	}
	if in.Beautify != nil {
		opts = append(opts, generator.WithBeautify(*in.Beautify))
	}
	if in.ClassTemplate != "" || in.MethodTemplate != "" || in.TypeTemplate != "" {
		opts = append(opts, generator.WithTemplate(generator.Templates{
			Class:  in.ClassTemplate,
			Method: in.MethodTemplate,
			Type:   in.TypeTemplate,
		}))
	}
	if len(in.Data) > 0 {
		opts = append(opts, generator.WithData(in.Data))
	}
	return opts
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	dialect := input.Dialect
	if dialect == "" {
		dialect = cfg.Dialect
	}

	opts := append([]generator.Option{generator.WithParsed(*parseResult)}, input.options()...)
	result, err := generator.GenerateWithOptions(dialect, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Dialect:       result.Dialect,
		ClassName:     result.ClassName,
		SourceVersion: result.SourceVersion,
		Methods:       result.Methods,
		Definitions:   result.Definitions,
		Size:          len(result.Code),
		WarningCount:  len(result.Warnings),
	}
	output.Warnings = makeSlice[lintWarning](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, lintWarning{Code: w.Code, Reason: w.Reason, Line: w.Line})
	}

	if input.Output == "" {
		output.Code = result.Code
		return nil, output, nil
	}
	if err := result.WriteFile(input.Output); err != nil {
		return errResult(fmt.Errorf("failed to write generated code: %w", err)), generateOutput{}, nil
	}
	output.Output = input.Output
	return nil, output, nil
}

// makeSlice returns a nil slice when n is 0 so omitempty fields stay absent.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
