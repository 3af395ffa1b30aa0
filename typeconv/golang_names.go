package typeconv

import (
	"strings"
	"unicode"
)

// goReservedWords are Go keywords. Predeclared identifiers such as "error"
// can be shadowed and are left alone.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeGoKeyword appends an underscore to Go keywords, compared
// case-insensitively so that "Type" and "Range" are escaped too.
func escapeGoKeyword(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// GoTypeName converts a definition or property name to an exported Go identifier.
// Example: "pet-owner" -> "PetOwner"
// Example: "2fa" -> "T2fa"
func GoTypeName(s string) string {
	if s == "" {
		return "Type"
	}

	var b strings.Builder
	capitalizeNext := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			r = unicode.ToUpper(r)
			capitalizeNext = false
		}
		b.WriteRune(r)
	}

	name := b.String()
	if name == "" {
		return "Type"
	}
	if r := []rune(name)[0]; !unicode.IsLetter(r) {
		name = "T" + name
	}
	return escapeGoKeyword(name)
}

// GoParamName converts a parameter name to an unexported Go identifier.
// Example: "X-Request-Id" -> "xRequestId"
func GoParamName(s string) string {
	name := GoTypeName(s)
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return escapeGoKeyword(string(runes))
}
