package beautify

import "strings"

// Typed re-indents TypeScript and Flow source by bracket depth. Type
// syntax such as generics and optional members is left untouched.
type Typed struct {
	// IndentSize is the number of spaces per level. Defaults to 4.
	IndentSize int
	// MaxPreserveNewlines caps consecutive newlines kept between
	// statements; 2 keeps at most one blank line. Defaults to 2.
	MaxPreserveNewlines int
}

// Format implements Formatter. It never fails.
func (j Typed) Format(src string) (string, error) {
	indentSize := j.IndentSize
	if indentSize <= 0 {
		indentSize = 4
	}
	maxBlank := j.MaxPreserveNewlines - 1
	if j.MaxPreserveNewlines <= 0 {
		maxBlank = 1
	}
	unit := strings.Repeat(" ", indentSize)

	var (
		b     strings.Builder
		sc    scanner
		blank int
		wrote bool
	)
	for _, raw := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		if sc.inTemplate() {
			b.WriteString(raw)
			b.WriteByte('\n')
			sc.scanLine(raw)
			continue
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			blank++
			continue
		}
		if wrote {
			for i := 0; i < min(blank, maxBlank); i++ {
				b.WriteByte('\n')
			}
		}
		blank = 0
		wrote = true

		if sc.inComment {
			b.WriteString(strings.Repeat(unit, sc.level(len(sc.stack))))
			if strings.HasPrefix(line, "*") {
				b.WriteByte(' ')
			}
			b.WriteString(line)
			b.WriteByte('\n')
			sc.scanLine(line)
			continue
		}

		// frames below the shallowest depth reached on this line are
		// untouched by scanLine, so the indent can be computed afterwards
		depth := sc.scanLine(line)
		b.WriteString(strings.Repeat(unit, sc.level(depth)))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// frame is an open bracket; indents marks the frames that add a level.
type frame struct {
	open    byte
	indents bool
}

// scanner tracks bracket and literal state across lines.
type scanner struct {
	stack     []frame
	inComment bool
	// quote is the open string delimiter; '`' for template literals.
	quote byte
}

func (s *scanner) inTemplate() bool { return s.quote == '`' }

// level counts the indenting frames among the first depth frames.
func (s *scanner) level(depth int) int {
	n := 0
	for _, f := range s.stack[:depth] {
		if f.indents {
			n++
		}
	}
	return n
}

// scanLine updates the state for line and returns the shallowest stack
// depth reached. Of the frames opened on this line and still open at its
// end, the outermost adds an indent level.
func (s *scanner) scanLine(line string) int {
	base := len(s.stack)
	var (
		prev     byte
		word     []byte
		lastWord string
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if s.quote == 0 && !s.inComment && isWordByte(c) {
			word = append(word, c)
			prev = c
			continue
		}
		if len(word) > 0 {
			lastWord = string(word)
			word = word[:0]
		}
		switch {
		case s.inComment:
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				s.inComment = false
				i++
			}
			continue
		case s.quote != 0:
			if c == '\\' {
				i++
			} else if c == s.quote {
				s.quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'', '`':
			s.quote = c
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				i = len(line)
				continue
			}
			if i+1 < len(line) && line[i+1] == '*' {
				s.inComment = true
				i++
				continue
			}
			if regexAllowedAfter(prev) || (isWordByte(prev) && regexKeywords[lastWord]) {
				i = skipRegex(line, i)
			}
		case '{', '[', '(':
			s.stack = append(s.stack, frame{open: c})
		case '}', ']', ')':
			if len(s.stack) > 0 {
				s.stack = s.stack[:len(s.stack)-1]
			}
			if len(s.stack) < base {
				base = len(s.stack)
			}
		}
		if c != ' ' && c != '\t' {
			prev = c
			lastWord = ""
		}
	}
	// Single and double quoted strings do not span lines.
	if s.quote == '"' || s.quote == '\'' {
		s.quote = 0
	}
	if base < len(s.stack) {
		s.stack[base].indents = true
	}
	return base
}

// regexAllowedAfter reports whether a '/' following prev starts a regex literal.
func regexAllowedAfter(prev byte) bool {
	switch prev {
	case 0, '(', ',', '=', ':', '[', '!', '&', '|', '?', '{', '}', ';', '+', '-', '*', '%', '<', '>', '~', '^':
		return true
	}
	return false
}

// regexKeywords are the keywords after which '/' starts a regex literal.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "delete": true, "void": true, "throw": true,
	"new": true, "instanceof": true, "yield": true, "await": true,
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// skipRegex returns the index of the closing '/' of the regex starting at i.
func skipRegex(line string, i int) int {
	inClass := false
	for j := i + 1; j < len(line); j++ {
		switch line[j] {
		case '\\':
			j++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return j
			}
		}
	}
	return len(line) - 1
}
