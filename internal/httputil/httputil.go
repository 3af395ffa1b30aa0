// Package httputil holds the HTTP vocabulary the view builder works with.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Method Constants, upper-cased as they appear in generated clients.
const (
	MethodGet      = "GET"
	MethodPut      = "PUT"
	MethodPost     = "POST"
	MethodDelete   = "DELETE"
	MethodOptions  = "OPTIONS"
	MethodHead     = "HEAD"
	MethodPatch    = "PATCH"
	MethodCopy     = "COPY"
	MethodLink     = "LINK"
	MethodUnlink   = "UNLINK"
	MethodPurge    = "PURGE"
	MethodLock     = "LOCK"
	MethodUnlock   = "UNLOCK"
	MethodPropfind = "PROPFIND"
)

// clientMethods are the operation keys that become client methods.
var clientMethods = map[string]bool{
	MethodGet: true, MethodPost: true, MethodPut: true, MethodDelete: true,
	MethodPatch: true, MethodCopy: true, MethodHead: true, MethodOptions: true,
	MethodLink: true, MethodUnlink: true, MethodPurge: true, MethodLock: true,
	MethodUnlock: true, MethodPropfind: true,
}

// IsClientMethod reports whether an operation key (any case) becomes a client method.
func IsClientMethod(method string) bool {
	return clientMethods[strings.ToUpper(method)]
}

// IsSuccessCode reports whether a response key is a 2xx status.
func IsSuccessCode(code string) bool {
	return strings.HasPrefix(code, "2")
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and rejects bare types and */subtype.
func IsValidMediaType(mediaType string) bool {
	essence, _, _ := strings.Cut(mediaType, ";")
	typ, subtype, ok := strings.Cut(strings.TrimSpace(essence), "/")
	if !ok || typ == "" || subtype == "" || strings.Contains(subtype, "/") {
		return false
	}
	if typ == "*" {
		return subtype == "*"
	}
	if subtype == "*" {
		return !strings.ContainsAny(typ, " \t")
	}

	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
