package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSwagger = `swagger: "2.0"
info:
  title: Ping API
  version: "1.0.0"
host: ping.example.com
paths:
  /ping:
    get:
      summary: Ping the service
      responses:
        "200":
          description: pong
`

func TestGenerateTool_JavaScriptInline(t *testing.T) {
	input := generateInput{
		Spec:    docSource{File: petstoreFile},
		Dialect: "javascript",
	}
	res, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, "javascript", output.Dialect)
	assert.Equal(t, "Client", output.ClassName)
	assert.Equal(t, "2.0", output.SourceVersion)
	assert.Equal(t, 4, output.Methods)
	assert.Equal(t, 2, output.Definitions)
	assert.Empty(t, output.Output)
	assert.Contains(t, output.Code, "export class Client {")
	assert.Contains(t, output.Code, "listPets(parameters) {")
	assert.Equal(t, len(output.Code), output.Size)
}

func TestGenerateTool_DefaultDialectFromConfig(t *testing.T) {
	old := cfg.Dialect
	cfg.Dialect = "typescript"
	t.Cleanup(func() { cfg.Dialect = old })

	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:      docSource{Content: minimalSwagger},
		ClassName: "Ping",
	})
	require.NoError(t, err)
	assert.Equal(t, "typescript", output.Dialect)
	assert.Contains(t, output.Code, "export class Ping {")
	assert.Contains(t, output.Code, "getPing(parameters: {")
}

func TestGenerateTool_GoWritesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client", "petstore.go")

	res, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:        docSource{File: petstoreFile},
		Dialect:     "go",
		ClassName:   "PetStore",
		PackageName: "petstore",
		Output:      path,
	})
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, path, output.Output)
	assert.Empty(t, output.Code, "code is not echoed when written")
	assert.Positive(t, output.Size)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "package petstore")
	assert.Contains(t, string(written), "type PetStore struct {")
	assert.Len(t, written, output.Size)
}

func TestGenerateTool_CustomTemplates(t *testing.T) {
	lint := false
	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:           docSource{Content: minimalSwagger},
		Dialect:        "custom",
		ClassTemplate:  `// {{.title}} {{.flavour}}{{range .methods}}{{template "method" .}}{{end}}`,
		MethodTemplate: "\n// {{.methodName}} {{.method}}",
		Data:           map[string]any{"flavour": "vanilla"},
		Lint:           &lint,
	})
	require.NoError(t, err)
	assert.Contains(t, output.Code, "// Ping API vanilla")
	assert.Contains(t, output.Code, "// getPing GET")
	assert.Zero(t, output.WarningCount)
	assert.Empty(t, output.Warnings)
}

func TestGenerateTool_CustomLintWarnings(t *testing.T) {
	beautify := false
	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:           docSource{Content: minimalSwagger},
		Dialect:        "custom",
		ClassTemplate:  "var api = {};\n{{range .methods}}{{template \"method\" .}}{{end}}",
		MethodTemplate: "api.{{.methodName}} = function() { return undeclared; };\n",
		Beautify:       &beautify,
	})
	require.NoError(t, err)
	assert.Positive(t, output.WarningCount)
	require.Len(t, output.Warnings, output.WarningCount)
	for _, w := range output.Warnings {
		assert.NotEmpty(t, w.Code)
		assert.NotEmpty(t, w.Reason)
	}
}

func TestGenerateTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input generateInput
	}{
		{
			name:  "no spec",
			input: generateInput{Dialect: "javascript"},
		},
		{
			name:  "unknown dialect",
			input: generateInput{Spec: docSource{Content: minimalSwagger}, Dialect: "cobol"},
		},
		{
			name:  "custom without templates",
			input: generateInput{Spec: docSource{Content: minimalSwagger}, Dialect: "custom"},
		},
		{
			name:  "missing file",
			input: generateInput{Spec: docSource{File: "/nonexistent/swagger.yaml"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			assert.Empty(t, output.Code)
		})
	}
}
