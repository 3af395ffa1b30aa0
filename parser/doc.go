// Package parser decodes Swagger 2.0 documents into an order-preserving model.
//
// Import path: github.com/swagcodegen/swagcodegen/parser
//
// Client generation depends on declaration order: methods are emitted in
// path order, then in the order verbs appear under each path, and the last
// 2xx response declared wins. Go maps do not keep that order, so the
// ordered sections of a document ([Paths], the operations of a [PathItem],
// [Responses], [SchemaMap] for definitions and properties) are slices of
// named entries decoded straight from the YAML node tree.
//
// JSON documents are decoded by the same YAML decoder.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("petstore.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, entry := range result.Document.Paths {
//		fmt.Println(entry.Path, len(entry.Item.Operations))
//	}
//
// The parser does not check the declared version; a document claiming
// swagger "1.2" still decodes so that callers can report the version in
// their own error.
package parser
