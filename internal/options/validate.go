// Package options holds option validation shared by the parser and generator.
package options

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateSingleInputSource returns an error unless exactly one of sources is set.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return fmt.Errorf("%s", noSourceMsg)
	case n > 1:
		return fmt.Errorf("%s", multiSourceMsg)
	}
	return nil
}

// ValidateOneOf returns an error naming the allowed values unless value is one of them.
func ValidateOneOf(option, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q (expected one of: %s)", option, value, strings.Join(allowed, ", "))
}
