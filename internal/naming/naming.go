package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type runeClass int

const (
	classSeparator runeClass = iota
	classLower
	classUpper
	classDigit
)

func classify(r rune) runeClass {
	switch {
	case unicode.IsDigit(r):
		return classDigit
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsLetter(r):
		return classLower
	default:
		return classSeparator
	}
}

// Words splits s into words.
// Example: "byId-orders" -> ["by", "Id", "orders"]
// Example: "XMLHttpRequest2" -> ["XML", "Http", "Request", "2"]
func Words(s string) []string {
	var words []string
	var cur []rune
	var classes []runeClass

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
		}
		cur = cur[:0]
		classes = classes[:0]
	}

	for _, r := range s {
		c := classify(r)
		if c == classSeparator {
			flush()
			continue
		}
		if n := len(classes); n > 0 {
			last := classes[n-1]
			switch {
			case c == classDigit && last != classDigit:
				flush()
			case c != classDigit && last == classDigit:
				flush()
			case c == classUpper && last == classLower:
				flush()
			case c == classLower && last == classUpper && n >= 2 && classes[n-2] == classUpper:
				carry := cur[n-1]
				cur = cur[:n-1]
				classes = classes[:n-1]
				flush()
				cur = append(cur, carry)
				classes = append(classes, classUpper)
			}
		}
		cur = append(cur, r)
		classes = append(classes, c)
	}
	flush()
	return words
}

// CamelCase joins the words of s, lower-casing the first word and
// title-casing the rest.
// Example: "X-Request-ID" -> "xRequestId"
// Example: "byId-orders" -> "byIdOrders"
func CamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	// Casers are stateful; one pair per call keeps CamelCase goroutine-safe.
	titleCaser := cases.Title(language.Und)
	lowerCaser := cases.Lower(language.Und)
	var b strings.Builder
	b.WriteString(lowerCaser.String(words[0]))
	for _, w := range words[1:] {
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

// PascalCase is CamelCase with the first letter upper-cased.
// Example: "user_profile" -> "UserProfile"
func PascalCase(s string) string {
	return UpperFirst(CamelCase(s))
}

// UpperFirst converts the first letter to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// LowerFirst converts the first letter to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// NormalizeIdentifier replaces every '.', '-', '{', '}' and whitespace rune with '_'.
// Example: "list.Items" -> "list_Items"
func NormalizeIdentifier(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '-' || r == '{' || r == '}' || unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)
}
