package beautify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedIndentsBlocks(t *testing.T) {
	src := "class A {\nconstructor(x) {\nthis.x = x;\n}\n}\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "class A {\n    constructor(x) {\n        this.x = x;\n    }\n}\n", got)
}

func TestTypedOneLevelPerLine(t *testing.T) {
	src := "foo({\na: 1,\nb: [\n2\n]\n});\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "foo({\n    a: 1,\n    b: [\n        2\n    ]\n});\n", got)
}

func TestTypedChainedClosers(t *testing.T) {
	src := "p.then(function (r) {\nreturn r;\n}).catch(function (e) {\nthrow e;\n});\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "p.then(function (r) {\n    return r;\n}).catch(function (e) {\n    throw e;\n});\n", got)
}

func TestTypedIgnoresBracketsInLiterals(t *testing.T) {
	src := strings.Join([]string{
		"function f() {",
		"var s = '{ not a block';",
		"var r = /[{(]/g;",
		"// { comment",
		"/* { */",
		"return s;",
		"}",
		"",
	}, "\n")
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"function f() {",
		"    var s = '{ not a block';",
		"    var r = /[{(]/g;",
		"    // { comment",
		"    /* { */",
		"    return s;",
		"}",
		"",
	}, "\n"), got)
}

func TestTypedPreservesTemplateLiteralLines(t *testing.T) {
	src := "if (x) {\nvar q = `a\n  { b\n c`;\n}\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "if (x) {\n    var q = `a\n  { b\n c`;\n}\n", got)
}

func TestTypedCollapsesBlankLines(t *testing.T) {
	src := "\n\nvar a = 1;   \n\n\n\nvar b = 2;\t\n\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "var a = 1;\n\nvar b = 2;\n", got)
}

func TestTypedCustomIndent(t *testing.T) {
	got, err := Typed{IndentSize: 2}.Format("if (a) {\nb();\n}")
	require.NoError(t, err)
	assert.Equal(t, "if (a) {\n  b();\n}\n", got)
}

func TestTypedUnbalancedInput(t *testing.T) {
	got, err := Typed{}.Format("}\n}\nvar a;\n")
	require.NoError(t, err)
	assert.Equal(t, "}\n}\nvar a;\n", got)
}

func TestGoFormatsAndFixesImports(t *testing.T) {
	src := "package api\nimport \"os\"\nfunc F() string { return strings.ToUpper(\"x\") }\n"
	got, err := Go{}.Format(src)
	require.NoError(t, err)
	assert.Contains(t, got, "\"strings\"")
	assert.NotContains(t, got, "\"os\"")
	assert.Contains(t, got, "func F() string { return strings.ToUpper(\"x\") }")
}

func TestGoReportsSyntaxErrors(t *testing.T) {
	_, err := Go{Filename: "client.go"}.Format("package api\nfunc {")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client.go")
}

func TestFormattersImplementInterface(t *testing.T) {
	var _ Formatter = JavaScript{}
	var _ Formatter = Typed{}
	var _ Formatter = Go{}
}

func TestTypedCloserMidLine(t *testing.T) {
	src := "list(parameters: {\n'a'?: string;\n} = {} as any): Promise<any> {\nreturn this.request();\n}\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "list(parameters: {\n    'a'?: string;\n} = {} as any): Promise<any> {\n    return this.request();\n}\n", got)
}

func TestTypedBlockComments(t *testing.T) {
	src := "class A {\n/**\n* Lists { items\n*/\nlist() {\n}\n}\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "class A {\n    /**\n     * Lists { items\n     */\n    list() {\n    }\n}\n", got)
}

func TestTypedRegexAfterKeyword(t *testing.T) {
	src := "function f(s) {\nreturn /[{(]/.test(s);\n}\nvar half = total / 2;\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "function f(s) {\n    return /[{(]/.test(s);\n}\nvar half = total / 2;\n", got)
}

func TestTypedKeepsTypeSyntax(t *testing.T) {
	src := "list(p: {\n'a'?: Array<Pet>;\n}): Promise<Array<Pet>> {\nreturn x;\n}\n"
	got, err := Typed{}.Format(src)
	require.NoError(t, err)
	assert.Contains(t, got, "\n    'a'?: Array<Pet>;\n")
	assert.Contains(t, got, "}): Promise<Array<Pet>> {\n")
}

func TestJavaScriptIndentsBlocks(t *testing.T) {
	src := "function A(x) {\nif (x) {\nthis.x = x;\n}\n}\n"
	got, err := JavaScript{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "function A(x) {\n    if (x) {\n        this.x = x;\n    }\n}\n", got)
}

func TestJavaScriptIgnoresBracketsInLiterals(t *testing.T) {
	src := "function f(s) {\nvar q = '{ not a block';\n// { comment\nreturn /[{(]/.test(s);\n}\n"
	got, err := JavaScript{}.Format(src)
	require.NoError(t, err)
	assert.Contains(t, got, "\n    var q = '{ not a block';\n")
	assert.Contains(t, got, "\n    // { comment\n")
	assert.Contains(t, got, "\n    return /[{(]/.test(s);\n}\n")
}

func TestJavaScriptCollapsesBlankLines(t *testing.T) {
	src := "\n\nvar a = 1;   \n\n\n\nvar b = 2;\t\n\n"
	got, err := JavaScript{}.Format(src)
	require.NoError(t, err)
	assert.Equal(t, "var a = 1;\n\nvar b = 2;\n", got)
}

func TestJavaScriptCustomIndent(t *testing.T) {
	got, err := JavaScript{IndentSize: 2}.Format("if (a) {\nb();\n}")
	require.NoError(t, err)
	assert.Equal(t, "if (a) {\n  b();\n}\n", got)
}

func TestJavaScriptEmptyInput(t *testing.T) {
	got, err := JavaScript{}.Format(" \n\n")
	require.NoError(t, err)
	assert.Empty(t, got)
}
