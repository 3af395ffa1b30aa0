package lint

import (
	"errors"
	"go/parser"
	"go/scanner"
	"go/token"
)

// CodeGoSyntax is reported for Go parse errors.
const CodeGoSyntax = "E100"

// Go lints Go source by parsing it. Only the Trailing and MaxErrors options apply.
type Go struct{}

// Lint implements Linter.
func (Go) Lint(src string, opts Options) []Finding {
	f := newFindings(src, opts.MaxErrors)

	_, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.AllErrors|parser.ParseComments)
	var list scanner.ErrorList
	switch {
	case errors.As(err, &list):
		for _, e := range list {
			f.add(CodeGoSyntax, e.Msg, e.Pos.Line, e.Pos.Column, "")
		}
	case err != nil:
		f.add(CodeGoSyntax, err.Error(), 0, 0, "")
	}

	if opts.Trailing {
		JavaScript{}.whitespace(f, Options{Trailing: true, SmartTabs: true})
	}
	return f.out
}
