package view

import (
	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/internal/httputil"
	"github.com/swagcodegen/swagcodegen/parser"
	"github.com/swagcodegen/swagcodegen/typeconv"
)

// successResponse holds at most one of typ and description.
type successResponse struct {
	typ         *TypeDescriptor
	description *string
}

// resolveResponse folds the 2xx responses in declaration order. Each one
// replaces what the previous ones recorded: a schema sets the type, no schema
// sets the description.
func (s *build) resolveResponse(op *parser.Operation) (successResponse, error) {
	var out successResponse
	for _, entry := range op.Responses {
		if !httputil.IsSuccessCode(entry.Code) {
			continue
		}
		resp, err := s.resolveResponseRef(entry.Response)
		if err != nil {
			return successResponse{}, err
		}
		if resp.Schema != nil {
			td := s.describe(resp.Schema)
			out = successResponse{typ: &td}
			continue
		}
		desc := resp.Description
		out = successResponse{description: &desc}
	}
	return out, nil
}

// resolveResponseRef follows a $ref into the document's shared responses.
func (s *build) resolveResponseRef(resp *parser.Response) (*parser.Response, error) {
	if resp == nil {
		return &parser.Response{}, nil
	}
	if resp.Ref == "" {
		return resp, nil
	}
	target, ok := s.doc.Responses[typeconv.RefName(resp.Ref)]
	if !ok || target == nil {
		return nil, &cgerrors.ReferenceError{Ref: resp.Ref, Section: "responses"}
	}
	return target, nil
}
