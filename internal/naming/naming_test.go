package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: nil},
		{name: "separators only", input: "-_/ ", want: nil},
		{name: "single word", input: "users", want: []string{"users"}},
		{name: "camel boundary", input: "byId", want: []string{"by", "Id"}},
		{name: "hyphen separator", input: "byId-orders", want: []string{"by", "Id", "orders"}},
		{name: "acronym run", input: "XMLHttpRequest", want: []string{"XML", "Http", "Request"}},
		{name: "all caps", input: "API_KEY", want: []string{"API", "KEY"}},
		{name: "digits split", input: "v1users", want: []string{"v", "1", "users"}},
		{name: "trailing digits", input: "Request2", want: []string{"Request", "2"}},
		{name: "header name", input: "X-Request-ID", want: []string{"X", "Request", "ID"}},
		{name: "unicode", input: "überUser", want: []string{"über", "User"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input), "Words(%q)", tt.input)
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "already camel", input: "userId", want: "userId"},
		{name: "path segments", input: "users-byId-orders", want: "usersByIdOrders"},
		{name: "snake case", input: "page_size", want: "pageSize"},
		{name: "upper snake", input: "API_KEY", want: "apiKey"},
		{name: "header", input: "X-Request-ID", want: "xRequestId"},
		{name: "pascal input", input: "UserProfile", want: "userProfile"},
		{name: "digits", input: "v1-users", want: "v1Users"},
		{name: "spaces", input: "Pet Store", want: "petStore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.input), "CamelCase(%q)", tt.input)
		})
	}
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "UserProfile", PascalCase("user_profile"))
	assert.Equal(t, "PetStoreApi", PascalCase("Pet Store API"))
	assert.Equal(t, "", PascalCase(""))
}

func TestUpperLowerFirst(t *testing.T) {
	assert.Equal(t, "ById", UpperFirst("byId"))
	assert.Equal(t, "Über", UpperFirst("über"))
	assert.Equal(t, "", UpperFirst(""))
	assert.Equal(t, "byId", LowerFirst("ById"))
	assert.Equal(t, "", LowerFirst(""))
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "list.Items", want: "list_Items"},
		{input: "get-user", want: "get_user"},
		{input: "find {id}", want: "find__id_"},
		{input: "tab\there", want: "tab_here"},
		{input: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdentifier(tt.input))
		})
	}
}
