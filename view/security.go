package view

import (
	"slices"

	"github.com/swagcodegen/swagcodegen/parser"
)

// methodSecurity is the resolved security of one operation.
type methodSecurity struct {
	isSecure bool
	token    bool
	apiKey   bool
	basic    bool
}

// resolveSecurity merges document and operation requirements and reports
// which scheme types they reference.
func resolveSecurity(doc *parser.Document, op *parser.Operation) methodSecurity {
	sec := methodSecurity{isSecure: doc.HasSecurity() || op.HasSecurity()}
	if !doc.HasSecurityDefinitions() && !op.HasSecurity() {
		return sec
	}

	names := schemeNames(mergeRequirements(doc.Security, op.Security))
	for _, name := range names {
		scheme, ok := doc.SecurityDefinitions[name]
		if !ok || scheme == nil {
			continue
		}
		switch scheme.Type {
		case "oauth2":
			sec.token = true
		case "apiKey":
			sec.apiKey = true
		case "basic":
			sec.basic = true
		}
	}
	return sec
}

// mergeRequirements merges two requirement lists index by index; keys from
// the operation's entry are added to, or replace, the document's entry at the
// same position.
func mergeRequirements(docReqs, opReqs []parser.SecurityRequirement) []parser.SecurityRequirement {
	n := max(len(docReqs), len(opReqs))
	merged := make([]parser.SecurityRequirement, n)
	for i := range n {
		m := parser.SecurityRequirement{}
		if i < len(docReqs) {
			for k, v := range docReqs[i] {
				m[k] = v
			}
		}
		if i < len(opReqs) {
			for k, v := range opReqs[i] {
				m[k] = v
			}
		}
		merged[i] = m
	}
	return merged
}

// schemeNames returns the distinct scheme names referenced, sorted.
func schemeNames(reqs []parser.SecurityRequirement) []string {
	var names []string
	for _, req := range reqs {
		for name := range req {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}
