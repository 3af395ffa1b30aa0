package beautify

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// Go formats Go source, adding missing and removing unused imports.
type Go struct {
	// Filename is used for import resolution and error messages.
	// Defaults to "generated.go".
	Filename string
}

// Format implements Formatter.
func (g Go) Format(src string) (string, error) {
	name := g.Filename
	if name == "" {
		name = "generated.go"
	}
	out, err := imports.Process(name, []byte(src), nil)
	if err != nil {
		return "", fmt.Errorf("beautify: format %s: %w", name, err)
	}
	return string(out), nil
}
