package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// Finding codes reported by JavaScript.
const (
	CodeSyntax          = "E001"
	CodeTooMany         = "E043"
	CodeTrailing        = "W102"
	CodeMixedIndent     = "W099"
	CodeMissingStrict   = "W097"
	CodeUndefinedGlobal = "W117"
)

var coreGlobals = []string{
	"Array", "Boolean", "Date", "Error", "Function", "JSON", "Math", "Number",
	"Object", "RegExp", "String", "TypeError", "RangeError", "SyntaxError",
	"decodeURI", "decodeURIComponent", "encodeURI", "encodeURIComponent",
	"isFinite", "isNaN", "parseFloat", "parseInt", "undefined", "NaN",
	"Infinity", "arguments", "eval",
}

var esNextGlobals = []string{
	"Promise", "Map", "Set", "WeakMap", "WeakSet", "Symbol", "Proxy", "Reflect",
	"ArrayBuffer", "Uint8Array", "BigInt", "globalThis",
}

var browserGlobals = []string{
	"window", "document", "navigator", "location", "console", "fetch",
	"XMLHttpRequest", "FormData", "URL", "URLSearchParams", "Headers",
	"Request", "Response", "Blob", "File", "localStorage", "sessionStorage",
	"setTimeout", "clearTimeout", "setInterval", "clearInterval", "btoa", "atob",
	"module", "exports", "require", "define",
}

// JavaScript lints JavaScript source.
type JavaScript struct {
	// Globals are extra predefined identifiers.
	Globals []string
}

// Lint implements Linter.
func (l JavaScript) Lint(src string, opts Options) []Finding {
	f := newFindings(src, opts.MaxErrors)

	ast, err := js.Parse(parse.NewInputString(src), js.Options{})
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			f.add(CodeSyntax, perr.Message, perr.Line, perr.Column, "")
		} else {
			f.add(CodeSyntax, err.Error(), 0, 0, "")
		}
	}

	l.whitespace(f, opts)
	if opts.Strict && !hasUseStrict(src) {
		f.add(CodeMissingStrict, `Missing "use strict" statement.`, 1, 1, "")
	}
	if opts.Undef && err == nil && ast != nil {
		l.undefined(f, ast, opts)
	}

	if f.full() {
		f.out = append(f.out, Finding{Code: CodeTooMany, Reason: "Too many errors."})
	}
	return f.out
}

func (l JavaScript) whitespace(f *findings, opts Options) {
	for i, line := range f.lines {
		if opts.Trailing && strings.TrimRight(line, " \t") != line {
			f.add(CodeTrailing, "Trailing whitespace.", i+1, len(strings.TrimRight(line, " \t"))+1, "")
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if strings.Contains(indent, " \t") || (!opts.SmartTabs && strings.Contains(indent, "\t ")) {
			f.add(CodeMixedIndent, "Mixed spaces and tabs.", i+1, 1, "")
		}
	}
}

func (l JavaScript) undefined(f *findings, ast *js.AST, opts Options) {
	known := map[string]bool{}
	for _, g := range coreGlobals {
		known[g] = true
	}
	if opts.ESNext {
		for _, g := range esNextGlobals {
			known[g] = true
		}
	}
	if opts.Browser {
		for _, g := range browserGlobals {
			known[g] = true
		}
	}
	for _, g := range l.Globals {
		known[g] = true
	}

	for _, v := range ast.BlockStmt.Scope.Undeclared {
		name := string(v.Data)
		if known[name] {
			continue
		}
		f.add(CodeUndefinedGlobal, fmt.Sprintf("'%s' is not defined.", name), 0, 0, name)
	}
}

func hasUseStrict(src string) bool {
	return strings.Contains(src, `"use strict"`) || strings.Contains(src, `'use strict'`)
}
