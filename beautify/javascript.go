package beautify

import (
	"fmt"
	"strings"

	"github.com/ditashi/jsbeautifier-go/jsbeautifier"
)

// JavaScript formats JavaScript source with js-beautify.
type JavaScript struct {
	// IndentSize is the number of spaces per level. Defaults to 4.
	IndentSize int
	// MaxPreserveNewlines caps consecutive newlines kept between
	// statements; 2 keeps at most one blank line. Defaults to 2.
	MaxPreserveNewlines int
}

// Format implements Formatter. The result always ends with a newline.
func (j JavaScript) Format(src string) (string, error) {
	opts := jsbeautifier.DefaultOptions()
	opts["indent_size"] = 4
	if j.IndentSize > 0 {
		opts["indent_size"] = j.IndentSize
	}
	opts["preserve_newlines"] = true
	opts["max_preserve_newlines"] = 2
	if j.MaxPreserveNewlines > 0 {
		opts["max_preserve_newlines"] = j.MaxPreserveNewlines
	}

	src = strings.ReplaceAll(src, "\r\n", "\n")
	out, err := jsbeautifier.Beautify(&src, opts)
	if err != nil {
		return "", fmt.Errorf("beautify: javascript: %w", err)
	}
	out = strings.TrimRight(out, " \t\n")
	if out == "" {
		return "", nil
	}
	return out + "\n", nil
}
