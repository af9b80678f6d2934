// Package graphql prints generated schemas as SDL and drives gqlgen.
//
// The gqlparser object model keeps directives only when they come from
// parsed source. Schemas built by compiler/gen record their directives in
// gen.Annotations instead, and Print writes them back:
//
//	type Contact @is(class: "http://ex.org/Contact") {
//	  "Auto-generated property that will be assigned to the `iri` of the Thing that is being queried."
//	  id: ID! @identifier
//	  givenName: String! @property(iri: "http://ex.org/givenName")
//	}
//
// # Usage
//
//	ctx, err := gen.NewContext(idx)
//	if err != nil {
//	    return err
//	}
//	schema, err := gen.Build(ctx)
//	if err != nil {
//	    return err
//	}
//	sdl := graphql.Print(schema)
//
// # Field Order
//
// Fields listed in DefaultFieldOrder come first, the remaining fields follow
// alphabetically. The same rule applies to root, object and input types:
//
//	graphql.Print(schema, graphql.WithFieldOrder("id", "name"))
//
// # gqlgen
//
// GenerateSDK registers the printed schema in gqlgen.yml, marks the
// generated directives skip_runtime and runs gqlgen. Query documents
// found below SDKOptions.Documents are validated against the schema first.
//
// # Configuration Options
//
//   - WithFieldOrder: Field names printed first
//   - WithIndent: Field indentation
package graphql
