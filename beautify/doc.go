// Package beautify formats generated source.
//
// [JavaScript] runs js-beautify (github.com/ditashi/jsbeautifier-go) over
// plain JavaScript.
//
// [Typed] re-indents TypeScript and Flow by bracket depth, since js-beautify
// reads generics and optional members as operators and splits them apart.
// Each line is indented one level per enclosing line that left a bracket
// open, trailing whitespace is removed and runs of blank lines are capped.
// Strings, template literals, comments and regular expression literals are
// skipped when counting brackets.
//
// [Go] runs goimports-equivalent processing from golang.org/x/tools/imports.
package beautify

// Formatter formats source text.
type Formatter interface {
	Format(src string) (string, error)
}
