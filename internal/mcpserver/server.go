// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes swagcodegen over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	swagcodegen "github.com/swagcodegen/swagcodegen"
)

const serverInstructions = `swagcodegen MCP server: generates JavaScript, TypeScript, Flow and Go API clients from Swagger 2.0 documents.

Tools:
- generate: render client code for a dialect. Returns the code, or writes it when output is set.
- view: return the view model templates are rendered from, optionally narrowed with a gjson query.

Configuration: defaults come from SWAGCODEGEN_MCP_* environment variables set in your MCP client config.

Key settings:
- SWAGCODEGEN_MCP_DIALECT (default: javascript): dialect used when a call omits one
- SWAGCODEGEN_MCP_CLASS_NAME (default: Client): class name used when a call omits one
- SWAGCODEGEN_MCP_LINT / SWAGCODEGEN_MCP_BEAUTIFY (default: true)
- SWAGCODEGEN_MCP_CACHE_ENABLED (default: true): disable document caching entirely
- SWAGCODEGEN_MCP_CACHE_FILE_TTL (default: 15m), SWAGCODEGEN_MCP_CACHE_URL_TTL (default: 5m)
- SWAGCODEGEN_MCP_VIEW_MAX_BYTES (default: 524288): larger view results must use a query

Caching: parsed documents are cached per session. File entries use path+mtime as key, so edits are picked up.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docs.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagcodegen", Version: swagcodegen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate an API client from a Swagger 2.0 document. dialect is one of javascript, typescript, flow, go or custom; custom requires class_template and method_template (Go text/template source). data is merged over the view model before rendering and wins on conflicts. Returns the code inline unless output is set, in which case the file is written and only a summary is returned.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "view",
		Description: "Build the view model for a Swagger 2.0 document: methods with their parameters, headers, security flags and response types, plus definitions. Use query (gjson syntax, e.g. methods.#.methodName) to select part of it; large documents require a query.",
	}, handleView)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
