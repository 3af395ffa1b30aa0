package view

import (
	"strconv"
	"strings"

	"github.com/swagcodegen/swagcodegen/internal/naming"
	"github.com/swagcodegen/swagcodegen/parser"
)

// methodName returns the candidate name for an operation: the normalized
// operationId, or a name derived from the verb and path.
func methodName(op *parser.Operation, verb, path string) string {
	if op.OperationID != "" {
		return naming.NormalizeIdentifier(op.OperationID)
	}
	return pathMethodName(verb, path)
}

// pathMethodName derives a name from the verb and path.
// Example: GET /users/{id}/orders -> getUsersByIdOrders
func pathMethodName(verb, path string) string {
	verb = strings.ToLower(verb)
	if path == "/" || path == "" {
		return verb
	}

	path = strings.TrimSuffix(path, "/")
	segments := strings.Split(path, "/")
	if len(segments) > 0 && segments[0] == "" {
		segments = segments[1:]
	}
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && len(seg) > 2 {
			segments[i] = "by" + naming.UpperFirst(seg[1:len(seg)-1])
		}
	}
	return verb + naming.UpperFirst(naming.CamelCase(strings.Join(segments, "-")))
}

// methodNames is the set of names already assigned in one build.
type methodNames map[string]bool

// unique returns name, or name_N for the smallest N not yet taken, and
// records the result.
func (n methodNames) unique(name string) string {
	candidate := name
	for i := 1; n[candidate]; i++ {
		candidate = name + "_" + strconv.Itoa(i)
	}
	n[candidate] = true
	return candidate
}
