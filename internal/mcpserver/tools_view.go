package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/gjson"
)

type viewInput struct {
	Spec      docSource `json:"spec"                 jsonschema:"The Swagger 2.0 document to build the view model from"`
	Dialect   string    `json:"dialect,omitempty"    jsonschema:"Dialect whose type converters fill the type descriptors (default from SWAGCODEGEN_MCP_DIALECT)"`
	ClassName string    `json:"class_name,omitempty" jsonschema:"Class name recorded in the view model"`
	Query     string    `json:"query,omitempty"      jsonschema:"gjson path selecting part of the view model, e.g. methods.#.methodName"`
}

type viewOutput struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Domain      string `json:"domain"`
	Methods     int    `json:"methods"`
	Definitions int    `json:"definitions"`
	Query       string `json:"query,omitempty"`
	Result      any    `json:"result"`
}

func handleView(_ context.Context, _ *mcp.CallToolRequest, input viewInput) (*mcp.CallToolResult, viewOutput, error) {
	dialect := input.Dialect
	if dialect == "" {
		dialect = cfg.Dialect
	}
	className := input.ClassName
	if className == "" {
		className = cfg.ClassName
	}

	model, err := input.Spec.model(dialect, className)
	if err != nil {
		return errResult(err), viewOutput{}, nil
	}

	raw, err := json.Marshal(model)
	if err != nil {
		return errResult(fmt.Errorf("encoding view model: %w", err)), viewOutput{}, nil
	}

	output := viewOutput{
		Title:       model.Title,
		Version:     model.Version,
		Domain:      model.Domain,
		Methods:     len(model.Methods),
		Definitions: len(model.Definitions),
		Query:       input.Query,
	}

	if input.Query != "" {
		res := gjson.GetBytes(raw, input.Query)
		if !res.Exists() {
			return errResult(fmt.Errorf("query %q matched nothing", input.Query)), viewOutput{}, nil
		}
		output.Result = res.Value()
		return nil, output, nil
	}

	if len(raw) > cfg.ViewMaxBytes {
		return errResult(fmt.Errorf("view model is %d bytes, over the %d byte limit; narrow it with query", len(raw), cfg.ViewMaxBytes)), viewOutput{}, nil
	}
	if err := json.Unmarshal(raw, &output.Result); err != nil {
		return errResult(fmt.Errorf("decoding view model: %w", err)), viewOutput{}, nil
	}
	return nil, output, nil
}
