package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/swagcodegen/swagcodegen/internal/config"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))
	assert.Error(t, ValidateOutputFormat("text"))
}

func TestMarshalStructured(t *testing.T) {
	data := map[string]any{"name": "Pet"}

	out, err := MarshalStructured(data, FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Pet"}`, string(out))

	out, err = MarshalStructured(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "name: Pet\n", string(out))

	_, err = MarshalStructured(data, "xml")
	assert.Error(t, err)
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	for _, p := range []string{"specs/b.yaml", "specs/a.yaml", "specs/deep/c.yaml", "specs/readme.md"} {
		writeFile(t, filepath.Join(dir, p), "x")
	}

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{
			name: "plain paths pass through",
			args: []string{"missing.yaml", "specs/a.yaml"},
			want: []string{"missing.yaml", "specs/a.yaml"},
		},
		{
			name: "single star is sorted",
			args: []string{"specs/*.yaml"},
			want: []string{"specs/a.yaml", "specs/b.yaml"},
		},
		{
			name: "double star crosses directories",
			args: []string{"specs/**/*.yaml"},
			want: []string{"specs/a.yaml", "specs/b.yaml", "specs/deep/c.yaml"},
		},
		{
			name: "duplicates are dropped",
			args: []string{"specs/a.yaml", "specs/*.yaml"},
			want: []string{"specs/a.yaml", "specs/b.yaml"},
		},
		{
			name: "urls and stdin pass through",
			args: []string{"https://example.com/swagger.json?v=*"},
			want: []string{"https://example.com/swagger.json?v=*"},
		},
		{
			name:    "no match",
			args:    []string{"other/*.yaml"},
			wantErr: "matched no files",
		},
		{
			name:    "invalid pattern",
			args:    []string{"specs/[a.yaml"},
			wantErr: "invalid glob pattern",
		},
		{
			name:    "stdin with others",
			args:    []string{"-", "specs/a.yaml"},
			wantErr: "stdin",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandInputs(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputPathFor(t *testing.T) {
	dir := t.TempDir()

	assert.Empty(t, OutputPathFor("", "a.yaml", ".js", false))
	assert.Equal(t, "client.ts", OutputPathFor("client.ts", "a.yaml", ".ts", false))
	assert.Equal(t, filepath.Join(dir, "petstore.go"), OutputPathFor(dir, "specs/petstore.yaml", ".go", false))
	assert.Equal(t, filepath.Join("out", "a.js"), OutputPathFor("out/", "a.json", ".js", false))
	assert.Equal(t, filepath.Join("out", "b.js"), OutputPathFor("out", "x/b.yaml", ".js", true))
	assert.Equal(t, filepath.Join("out", "swagger.js"), OutputPathFor("out", "https://example.com/api/swagger.json", ".js", true))
	assert.Equal(t, filepath.Join("out", "client.js"), OutputPathFor("out/", StdinFilePath, ".js", false))
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.js")
	writeFile(t, target, "")
	link := filepath.Join(dir, "link.js")
	require.NoError(t, os.Symlink(target, link))

	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "new.js")))
	assert.NoError(t, RejectSymlinkOutput(target))
	err := RejectSymlinkOutput(link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "a.yaml", FormatSpecPath("a.yaml"))
}

func TestParseData(t *testing.T) {
	data, err := ParseData([]string{"name=PetStore", "retries=3", "debug=true", "meta.owner=team", "meta.tier=gold", "empty="})
	require.NoError(t, err)
	assert.Equal(t, "PetStore", data["name"])
	assert.Equal(t, 3, data["retries"])
	assert.Equal(t, true, data["debug"])
	assert.Equal(t, map[string]any{"owner": "team", "tier": "gold"}, data["meta"])
	assert.Equal(t, "", data["empty"])

	_, err = ParseData([]string{"=value"})
	assert.Error(t, err)
}

func TestReadDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	writeFile(t, path, `{"author": "me", "tags": ["a", "b"]}`)

	data, err := ReadDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, "me", data["author"])
	assert.Equal(t, []any{"a", "b"}, data["tags"])

	_, err = ReadDataFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestRegenerator(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "ping.json")
	writeFile(t, spec, minimalSwagger)

	cfg := config.Default()
	cfg.Dialect = "typescript"
	cfg.Output = filepath.Join(dir, "ping.ts")
	a := &app{cfg: cfg, logger: zaptest.NewLogger(t)}

	r := &regenerator{app: a, inputs: []string{spec}}
	r.run(r.inputs)

	code, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(code), "getPing(parameters: {")

	// A broken document is logged, not fatal; the previous output stays.
	writeFile(t, spec, "swagger: [")
	r.run(r.inputs)
	again, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, code, again)
}
