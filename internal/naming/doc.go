// Package naming provides the identifier transformations shared by the view
// builder, the type converters and the generator templates.
//
// CamelCase and PascalCase split their input into words the way JavaScript
// client generators traditionally do: any non-alphanumeric rune separates
// words, a lower-to-upper transition starts a new word, an upper-case run
// followed by a lower-case letter ends before its last letter ("XMLHttp" ->
// "XML", "Http"), and digit runs form words of their own.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
