package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/swagcodegen/swagcodegen/beautify"
	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/lint"
	"github.com/swagcodegen/swagcodegen/view"
)

// Keys whose list elements inherit the top-level keys.
var inheritingKeys = []string{"methods", "definitions"}

// templateData converts model to the generic map templates see and merges
// data over it. Caller data wins on conflicting keys.
func templateData(model *view.ViewModel, data map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("generator: encode view model: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("generator: decode view model: %w", err)
	}
	maps.Copy(out, data)

	for _, key := range inheritingKeys {
		items, ok := out[key].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				inherit(m, out)
			}
		}
	}
	return out, nil
}

// inherit copies the keys of parent that child lacks, except the lists
// that would make the structure recursive.
func inherit(child, parent map[string]any) {
	for k, v := range parent {
		if _, ok := child[k]; ok {
			continue
		}
		switch k {
		case "methods", "definitions":
			continue
		}
		child[k] = v
	}
}

func render(t Templates, dialect string, model *view.ViewModel, data map[string]any) (string, error) {
	tmpl, err := t.parse(dialect)
	if err != nil {
		return "", err
	}
	values, err := templateData(model, data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", &cgerrors.TemplateError{Dialect: dialect, Message: "render", Cause: err}
	}
	return buf.String(), nil
}

// lintEnabled reports whether dialect output is linted. The javascript,
// typescript and flow defaults are never linted.
func (g *Generator) lintEnabled(dialect string) bool {
	switch dialect {
	case DialectJavaScript, DialectTypeScript, DialectFlow:
		return false
	}
	return g.Lint
}

func linterFor(dialect string) lint.Linter {
	if dialect == DialectGo {
		return lint.Go{}
	}
	return lint.JavaScript{}
}

// lint runs the dialect's linter over source. The first error-class finding
// fails the run; the remaining findings are returned as warnings.
func (g *Generator) lint(dialect, source string) ([]lint.Finding, error) {
	if !g.lintEnabled(dialect) {
		return nil, nil
	}
	opts := lint.Options{
		Browser:   dialect == DialectJavaScript,
		Undef:     true,
		Strict:    true,
		Trailing:  true,
		SmartTabs: true,
		ESNext:    g.ESNext,
		MaxErrors: lint.DefaultMaxErrors,
	}
	findings := linterFor(dialect).Lint(source, opts)
	if f, ok := lint.FirstError(findings); ok {
		return nil, &cgerrors.LintError{Code: f.Code, Reason: f.Reason, Evidence: f.Evidence, Line: f.Line}
	}
	for _, f := range findings {
		g.log().Debug("lint finding", "code", f.Code, "reason", f.Reason, "line", f.Line)
	}
	return findings, nil
}

func formatterFor(dialect string) beautify.Formatter {
	switch dialect {
	case DialectGo:
		return beautify.Go{}
	case DialectTypeScript, DialectFlow:
		return beautify.Typed{IndentSize: 4, MaxPreserveNewlines: 2}
	}
	return beautify.JavaScript{IndentSize: 4, MaxPreserveNewlines: 2}
}

func (g *Generator) format(dialect, source string) (string, error) {
	if !g.Beautify {
		return source, nil
	}
	code, err := formatterFor(dialect).Format(source)
	if err != nil {
		return "", fmt.Errorf("generator: %w", err)
	}
	return code, nil
}
