package generator

import (
	"embed"
	"encoding/json"
	"strconv"
	"strings"
	"text/template"

	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/internal/naming"
	"github.com/swagcodegen/swagcodegen/typeconv"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Names of the associated templates available to class templates.
const (
	methodTemplate = "method"
	typeTemplate   = "type"
)

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	// String manipulation
	"quote": strconv.Quote,
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,

	// Custom helpers
	"json":    toJSON,
	"camel":   naming.CamelCase,
	"pascal":  naming.PascalCase,
	"comment": cleanComment,
	"goType":  typeconv.GoTypeName,
	"goParam": typeconv.GoParamName,
}

// defaultTemplates returns the embedded template names for dialect.
// custom has no defaults.
func defaultTemplates(dialect string) (class, method, typ string) {
	switch dialect {
	case DialectJavaScript:
		return "javascript-class", "method", ""
	case DialectTypeScript:
		return "typescript-class", "typescript-method", "type"
	case DialectFlow:
		return "flow-class", "flow-method", "flow-type"
	case DialectGo:
		return "go-class", "go-method", "go-type"
	}
	return "", "", ""
}

func readTemplate(name string) string {
	data, err := templateFS.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		// embedded at build time; a missing file is a packaging bug
		panic(err)
	}
	return string(data)
}

// templates resolves the template texts for dialect, filling gaps in the
// caller's Templates from the embedded defaults.
func (g *Generator) templates(dialect string) (Templates, error) {
	t := g.Templates
	if dialect == DialectCustom {
		var missing []string
		if t.Class == "" {
			missing = append(missing, "class")
		}
		if t.Method == "" {
			missing = append(missing, "method")
		}
		if len(missing) > 0 {
			return Templates{}, &cgerrors.TemplateError{
				Dialect: dialect,
				Missing: missing,
				Message: `provide at least Templates{Class: "...", Method: "..."}`,
			}
		}
		return t, nil
	}

	class, method, typ := defaultTemplates(dialect)
	if t.Class == "" {
		t.Class = readTemplate(class)
	}
	if t.Method == "" {
		t.Method = readTemplate(method)
	}
	if t.Type == "" && typ != "" {
		t.Type = readTemplate(typ)
	}
	return t, nil
}

// parse builds a fresh template set: the class template as root with the
// method and type templates associated under fixed names.
func (t Templates) parse(dialect string) (*template.Template, error) {
	root, err := template.New(dialect + "-class").Funcs(templateFuncs).Parse(t.Class)
	if err != nil {
		return nil, &cgerrors.TemplateError{Dialect: dialect, Message: "class template", Cause: err}
	}
	if _, err := root.New(methodTemplate).Parse(t.Method); err != nil {
		return nil, &cgerrors.TemplateError{Dialect: dialect, Message: "method template", Cause: err}
	}
	// an empty type template still defines "type" so class templates can
	// reference it unconditionally
	if _, err := root.New(typeTemplate).Parse(t.Type); err != nil {
		return nil, &cgerrors.TemplateError{Dialect: dialect, Message: "type template", Cause: err}
	}
	return root, nil
}

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// cleanComment flattens v to a single line safe inside a block comment.
func cleanComment(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "*/", "* /")
}
