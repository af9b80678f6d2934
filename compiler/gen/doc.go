// Package gen turns SHACL shapes into a GraphQL schema.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	RDF statements (rdf.Index)
//	        ↓
//	   Shapes (one per sh:NodeShape subject)
//	        ↓
//	   PropertyShapes resolved against the complete shape set
//	        ↓
//	   Object types (TypeConverter, default ObjectType)
//	        ↓
//	   Schema (Query, Mutation, <T>Mutation and input types)
//
// Class references are resolved only after every shape has been extracted,
// so a property may refer to a shape declared later, or in another file.
//
// # Key Types
//
//   - Context: owns the index, the shapes, the object types and the
//     interned input types of one run
//   - Shape: a node shape; its name is the fragment of the shape IRI
//   - PropertyShape: a property shape with its resolved field type
//   - Annotations: the directives of generated definitions, keyed by
//     definition identity
//   - Schema: the synthesized schema, the input of the printer in
//     contrib/graphql
//
// # Directives
//
// The gqlparser object model does not print directives applied to
// definitions built in code. Generated definitions therefore record their
// directives in Annotations:
//
//   - @is(class: String) on object and input types with a target class
//   - @property(iri: String) on fields with a property path
//   - @identifier on the synthetic id field
//
// # Error Handling
//
//   - SchemaError: malformed shapes and property shapes (ErrMalformedShape)
//   - ResolutionError: sh:class without exactly one matching shape
//     (ErrUnresolvedClass)
//   - ConfigError: invalid options (ErrMissingConfig)
//
// An index without node shapes fails with an error wrapping sdx.ErrNoShapes.
// Properties with an unknown datatype are dropped, not reported.
//
// Example error handling:
//
//	ctx, err := gen.NewContext(idx)
//	if err != nil {
//	    if sdx.IsNoShapes(err) {
//	        // Remove the stale schema
//	    }
//	    return err
//	}
//	schema, err := gen.Build(ctx)
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	ctx, err := gen.NewContext(idx,
//	    gen.WithLogger(logger),
//	    gen.WithDatatype(rdf.XSDNamespace+"integer", gen.ScalarInt),
//	    gen.WithPluralCollections(),
//	)
//
// # Code Organization
//
//   - annotation.go: directive side table and definitions
//   - context.go: Context, shape extraction and class resolution
//   - errors.go: Structured error types
//   - mutation.go: Mutation root, <T>Mutation and input types
//   - naming.go: Name validation and derived names
//   - option.go: Functional option pattern for configuration
//   - property.go: PropertyShape and the cardinality rule
//   - query.go: Query root
//   - schema.go: Schema and Build
//   - shape.go: Shape
//   - type.go: Default TypeConverter
package gen
