package parser

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagcodegen/swagcodegen/cgerrors"
)

const minimalSwagger = `swagger: "2.0"
info:
  title: Minimal
  version: "0.1"
paths:
  /:
    get:
      responses:
        "200":
          description: ok
`

func parsePetstore(t *testing.T) *Document {
	t.Helper()
	res, err := ParseWithOptions(WithFilePath("testdata/petstore.yaml"))
	require.NoError(t, err)
	require.NotNil(t, res.Document)
	return res.Document
}

func TestParseFile(t *testing.T) {
	res, err := New().Parse("testdata/petstore.yaml")
	require.NoError(t, err)

	assert.Equal(t, "testdata/petstore.yaml", res.SourcePath)
	assert.Equal(t, SourceFormatYAML, res.SourceFormat)
	assert.Equal(t, "2.0", res.Version)
	assert.Positive(t, res.SourceSize)

	doc := res.Document
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Pet Store", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.Equal(t, "petstore.example.com", doc.Host)
	assert.Equal(t, "/v1", doc.BasePath)
	assert.Equal(t, []string{"https"}, doc.Schemes)
}

func TestPathsKeepDeclarationOrder(t *testing.T) {
	doc := parsePetstore(t)

	require.Len(t, doc.Paths, 2)
	assert.Equal(t, "/pets", doc.Paths[0].Path)
	assert.Equal(t, "/pets/{petId}", doc.Paths[1].Path)

	pets := doc.Paths.Get("/pets")
	require.NotNil(t, pets)
	require.Len(t, pets.Operations, 2)
	assert.Equal(t, "post", pets.Operations[0].Method)
	assert.Equal(t, "get", pets.Operations[1].Method)

	require.Len(t, pets.Parameters, 1)
	assert.Equal(t, "X-Trace-Id", pets.Parameters[0].Name)
	v, ok := pets.Parameters[0].Extension("x-proxy-header")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	byID := doc.Paths.Get("/pets/{petId}")
	require.NotNil(t, byID)
	require.Len(t, byID.Operations, 2)
	assert.Equal(t, "PROPFIND", byID.Operations[1].Method)

	assert.Nil(t, doc.Paths.Get("/missing"))
}

func TestResponsesKeepDeclarationOrder(t *testing.T) {
	doc := parsePetstore(t)
	list := doc.Paths.Get("/pets").Operations[1].Operation

	require.Len(t, list.Responses, 2)
	assert.Equal(t, "200", list.Responses[0].Code)
	assert.Equal(t, "default", list.Responses[1].Code)
	require.NotNil(t, list.Responses.Get("200").Schema)
	assert.Equal(t, "array", list.Responses.Get("200").Schema.Type)
	assert.Equal(t, "#/definitions/Pet", list.Responses.Get("200").Schema.Items.Ref)
}

func TestDefinitionsAndProperties(t *testing.T) {
	doc := parsePetstore(t)

	assert.Equal(t, []string{"Pet", "Error"}, doc.Definitions.Names())

	pet := doc.Definitions.Get("Pet")
	require.NotNil(t, pet)
	assert.Equal(t, []string{"name", "id", "tag", "extra"}, pet.Properties.Names())
	assert.True(t, pet.IsRequired("id"))
	assert.False(t, pet.IsRequired("tag"))

	extra := pet.Properties.Get("extra")
	require.NotNil(t, extra.AdditionalProperties)
	assert.True(t, extra.AdditionalProperties.Allowed)
	require.NotNil(t, extra.AdditionalProperties.Schema)
	assert.Equal(t, "string", extra.AdditionalProperties.Schema.Type)

	errDef := doc.Definitions.Get("Error")
	require.NotNil(t, errDef.AdditionalProperties)
	assert.False(t, errDef.AdditionalProperties.Allowed)
	assert.Nil(t, errDef.AdditionalProperties.Schema)
}

func TestSecurityPresence(t *testing.T) {
	doc := parsePetstore(t)
	assert.True(t, doc.HasSecurity())
	assert.True(t, doc.HasSecurityDefinitions())
	assert.Equal(t, "oauth2", doc.SecurityDefinitions["petstore_auth"].Type)

	add := doc.Paths.Get("/pets").Operations[0].Operation
	assert.True(t, add.HasSecurity())
	assert.Equal(t, []string{"write:pets"}, add.Security[0]["petstore_auth"])

	list := doc.Paths.Get("/pets").Operations[1].Operation
	assert.False(t, list.HasSecurity())

	t.Run("empty lists still count as declared", func(t *testing.T) {
		res, err := New().ParseBytes([]byte(`swagger: "2.0"
securityDefinitions: {}
security: []
paths:
  /a:
    get:
      security: []
      responses: {}
`))
		require.NoError(t, err)
		assert.True(t, res.Document.HasSecurity())
		assert.True(t, res.Document.HasSecurityDefinitions())
		assert.True(t, res.Document.Paths[0].Item.Operations[0].Operation.HasSecurity())
	})

	t.Run("absent keys", func(t *testing.T) {
		res, err := New().ParseBytes([]byte(minimalSwagger))
		require.NoError(t, err)
		assert.False(t, res.Document.HasSecurity())
		assert.False(t, res.Document.HasSecurityDefinitions())
	})
}

func TestParameterRefsAndExtensions(t *testing.T) {
	doc := parsePetstore(t)

	list := doc.Paths.Get("/pets").Operations[1].Operation
	require.Len(t, list.Parameters, 1)
	assert.Equal(t, "#/parameters/limitParam", list.Parameters[0].Ref)

	limit := doc.Parameters["limitParam"]
	require.NotNil(t, limit)
	assert.Equal(t, "integer", limit.Type)
	assert.Equal(t, "query", limit.In)
}

func TestParameterClone(t *testing.T) {
	p := &Parameter{Name: "a", Enum: []any{"x"}, Extra: map[string]any{"x-name-pattern": "^a"}}
	c := p.Clone()
	c.Name = "b"
	c.Enum[0] = "y"
	c.Extra["x-name-pattern"] = "^b"

	assert.Equal(t, "a", p.Name)
	assert.Equal(t, "x", p.Enum[0])
	assert.Equal(t, "^a", p.Extra["x-name-pattern"])
	assert.Nil(t, (*Parameter)(nil).Clone())
}

func TestParseJSON(t *testing.T) {
	data, err := os.ReadFile("testdata/minimal.json")
	require.NoError(t, err)

	res, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, res.SourceFormat)
	assert.Equal(t, "ParseBytes.json", res.SourcePath)
	require.Len(t, res.Document.Paths, 1)
	assert.Equal(t, "/", res.Document.Paths[0].Path)
}

func TestParseReader(t *testing.T) {
	res, err := ParseWithOptions(WithReader(strings.NewReader(minimalSwagger)))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.yaml", res.SourcePath)
	assert.Equal(t, "2.0", res.Version)
}

func TestParseDoesNotCheckVersion(t *testing.T) {
	res, err := New().ParseBytes([]byte("swagger: \"1.2\"\npaths: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, "1.2", res.Version)
}

func TestParseUnquotedVersion(t *testing.T) {
	res, err := New().ParseBytes([]byte("swagger: 2.0\n"))
	require.NoError(t, err)
	assert.Equal(t, "2.0", res.Version)
}

func TestParseErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("  \n"))
		assert.ErrorIs(t, err, cgerrors.ErrParse)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("swagger: [unclosed"))
		var parseErr *cgerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "ParseBytes", parseErr.Path)
	})

	t.Run("paths must be a mapping", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("swagger: \"2.0\"\npaths: [1, 2]\n"))
		assert.ErrorIs(t, err, cgerrors.ErrParse)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Parse("testdata/does-not-exist.yaml")
		assert.Error(t, err)
	})
}

func TestParseWithOptionsValidation(t *testing.T) {
	_, err := ParseWithOptions()
	assert.ErrorContains(t, err, "must specify an input source")

	_, err = ParseWithOptions(WithBytes([]byte(minimalSwagger)), WithFilePath("x.yaml"))
	assert.ErrorContains(t, err, "exactly one input source")

	_, err = ParseWithOptions(WithReader(nil))
	assert.ErrorContains(t, err, "reader cannot be nil")
}

func TestParseURL(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write([]byte(minimalSwagger))
	}))
	defer srv.Close()

	res, err := ParseWithOptions(WithFilePath(srv.URL+"/spec"), WithUserAgent("test-agent"))
	require.NoError(t, err)
	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, SourceFormatYAML, res.SourceFormat)
	assert.Equal(t, srv.URL+"/spec", res.SourcePath)

	_, err = ParseWithOptions(WithFilePath(srv.URL + "/missing"))
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("a.JSON"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("a.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("a.txt"))

	assert.Equal(t, SourceFormatJSON, detectFormatFromURL("https://x/spec", "application/json; charset=utf-8"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromURL("https://x/spec.yaml", "application/json"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromURL("https://x/spec", "text/plain"))

	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  {}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("a: b")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent(nil))
}
