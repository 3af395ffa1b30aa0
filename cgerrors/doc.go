// Package cgerrors provides structured error types for swagcodegen.
//
// Import path: github.com/swagcodegen/swagcodegen/cgerrors
//
// Every failure in the generation pipeline is synchronous and terminal. The
// types below let callers tell the failure kinds apart with [errors.Is] and
// [errors.As] and decide whether the document, the template bundle, or the
// options need fixing.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures
//   - [VersionError]: the document declares a version other than "2.0"
//   - [ReferenceError]: a $ref that cannot be resolved
//   - [ValidationError]: document content the view builder cannot classify
//   - [TemplateError]: unknown dialect or an incomplete custom template bundle
//   - [LintError]: rendered source carries an error-class lint finding
//   - [ConfigError]: invalid options or configuration files
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrUnsupportedSpecVersion]: Matches any [VersionError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrUnsupportedTarget]: Matches any [TemplateError]
//   - [ErrLint]: Matches any [LintError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	code, err := generator.GetTypeScriptCode(generator.WithFilePath("api.yaml"))
//	if errors.Is(err, cgerrors.ErrUnsupportedSpecVersion) {
//	    // ask for a Swagger 2.0 document
//	}
//	var lintErr *cgerrors.LintError
//	if errors.As(err, &lintErr) {
//	    fmt.Println(lintErr.Code, lintErr.Evidence)
//	}
package cgerrors
