// Package lint checks generated source for problems before it is formatted.
//
// A [Linter] returns [Finding]s. Codes starting with "E" are error-class and
// abort generation; "W" codes are warnings the generator logs and discards.
//
// [JavaScript] parses with github.com/tdewolff/parse/v2/js and adds
// whitespace and undefined-variable checks controlled by [Options]. [Go]
// parses with go/parser.
package lint
