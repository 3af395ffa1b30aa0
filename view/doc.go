// Package view turns a Swagger 2.0 document into the dialect-neutral view
// model that client templates are rendered from.
//
// A [Builder] walks the document once, in declaration order:
//
//   - every path, collecting its shared parameters first;
//   - every operation under the path whose verb is in the allow-list
//     (GET, POST, PUT, DELETE, PATCH, COPY, HEAD, OPTIONS, LINK, UNLINK,
//     PURGE, LOCK, UNLOCK, PROPFIND), producing one [Method];
//   - every definition, producing one [Definition].
//
// For each operation the builder names the method (unique within the model),
// classifies its parameters into a closed set of [Location]s, resolves which
// security schemes apply, and folds the 2xx responses into a single success
// type or description.
//
// Building is a pure function of the document and the builder options. Each
// call to [Builder.Build] owns its own name set, so one Builder can be shared
// between goroutines.
//
//	model, err := view.New(view.WithClassName("PetStore")).Build(doc)
//	if errors.Is(err, cgerrors.ErrUnsupportedSpecVersion) {
//		// not a Swagger 2.0 document
//	}
package view
