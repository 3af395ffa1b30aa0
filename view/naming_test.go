package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swagcodegen/swagcodegen/parser"
)

func TestMethodName(t *testing.T) {
	tests := []struct {
		name        string
		operationID string
		verb        string
		path        string
		want        string
	}{
		{name: "operationId dots", operationID: "list.Items", verb: "GET", path: "/items", want: "list_Items"},
		{name: "operationId mixed separators", operationID: "pets-find {id}", verb: "GET", path: "/x", want: "pets_find__id_"},
		{name: "root path", verb: "GET", path: "/", want: "get"},
		{name: "empty path", verb: "DELETE", path: "", want: "delete"},
		{name: "single segment", verb: "GET", path: "/pets", want: "getPets"},
		{name: "path parameter first", verb: "GET", path: "/{id}/orders", want: "getByIdOrders"},
		{name: "nested path parameter", verb: "GET", path: "/users/{id}/orders", want: "getUsersByIdOrders"},
		{name: "trailing slash", verb: "POST", path: "/pets/", want: "postPets"},
		{name: "dashed segment", verb: "PUT", path: "/pet-owners/{ownerId}", want: "putPetOwnersByOwnerId"},
		{name: "verb is lower-cased", verb: "PROPFIND", path: "/files", want: "propfindFiles"},
		{name: "versioned path", verb: "GET", path: "/v1/users", want: "getV1Users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &parser.Operation{OperationID: tt.operationID}
			assert.Equal(t, tt.want, methodName(op, tt.verb, tt.path))
		})
	}
}

func TestMethodNamesUnique(t *testing.T) {
	names := methodNames{}
	assert.Equal(t, "get", names.unique("get"))
	assert.Equal(t, "get_1", names.unique("get"))
	assert.Equal(t, "get_2", names.unique("get"))
	assert.Equal(t, "post", names.unique("post"))

	t.Run("smallest unused suffix", func(t *testing.T) {
		names := methodNames{}
		assert.Equal(t, "find_1", names.unique("find_1"))
		assert.Equal(t, "find", names.unique("find"))
		assert.Equal(t, "find_2", names.unique("find"))
	})
}
