package lint

import "strings"

// DefaultMaxErrors is the finding cap used when Options.MaxErrors is zero.
const DefaultMaxErrors = 999

// Finding is one lint result.
type Finding struct {
	Code     string
	Reason   string
	Evidence string
	Line     int
	Column   int
}

// Options toggles checks. Not every linter honours every option.
type Options struct {
	// Browser predefines browser globals (window, document, fetch, ...).
	Browser bool
	// Undef reports identifiers used without a declaration.
	Undef bool
	// Strict requires a "use strict" directive.
	Strict bool
	// Trailing reports trailing whitespace.
	Trailing bool
	// SmartTabs allows tabs followed by spaces for alignment.
	SmartTabs bool
	// ESNext predefines ES2015+ globals such as Promise and Map.
	ESNext bool
	// MaxErrors caps the number of findings; zero means DefaultMaxErrors.
	MaxErrors int
}

// Linter inspects source text.
type Linter interface {
	Lint(src string, opts Options) []Finding
}

// IsError reports whether code is an error-class finding code.
func IsError(code string) bool {
	return len(code) > 0 && code[0] == 'E'
}

// FirstError returns the first error-class finding.
func FirstError(findings []Finding) (Finding, bool) {
	for _, f := range findings {
		if IsError(f.Code) {
			return f, true
		}
	}
	return Finding{}, false
}

// findings accumulates results up to a cap.
type findings struct {
	lines []string
	max   int
	out   []Finding
}

func newFindings(src string, maxErrors int) *findings {
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}
	return &findings{lines: strings.Split(src, "\n"), max: maxErrors}
}

func (f *findings) full() bool {
	return len(f.out) >= f.max
}

// add records a finding; evidence defaults to the trimmed source line.
func (f *findings) add(code, reason string, line, col int, evidence string) {
	if f.full() {
		return
	}
	if evidence == "" && line > 0 && line <= len(f.lines) {
		evidence = strings.TrimSpace(f.lines[line-1])
	}
	f.out = append(f.out, Finding{Code: code, Reason: reason, Evidence: evidence, Line: line, Column: col})
}
