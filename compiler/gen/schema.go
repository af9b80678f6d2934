package gen

import (
	"fmt"
	"log/slog"

	"github.com/vektah/gqlparser/v2/ast"
)

// Schema is the synthesized GraphQL schema of one run. It is read-only
// after Build.
type Schema struct {
	// AST is the schema in the gqlparser object model.
	AST *ast.Schema

	Query    *ast.Definition
	Mutation *ast.Definition
	// Objects holds the shape types followed by the <T>Mutation types.
	Objects []*ast.Definition
	// Inputs holds the input types in creation order. Inputs without
	// fields are never referenced and are left out.
	Inputs []*ast.Definition
	// Directives holds the directive definitions in print order.
	Directives []*ast.DirectiveDefinition

	// Annotations holds the directives applied to the definitions above.
	Annotations *Annotations
}

// Build synthesizes the root query and mutation types of the context.
func Build(c *Context) (*Schema, error) {
	query := QueryType(c)
	mutation, mutations := MutationType(c)
	s := &Schema{
		AST: &ast.Schema{
			Query:         query,
			Mutation:      mutation,
			Types:         make(map[string]*ast.Definition),
			Directives:    make(map[string]*ast.DirectiveDefinition),
			PossibleTypes: make(map[string][]*ast.Definition),
			Implements:    make(map[string][]*ast.Definition),
		},
		Query:       query,
		Mutation:    mutation,
		Objects:     append(append([]*ast.Definition(nil), c.Objects...), mutations...),
		Inputs:      nonEmpty(c.Inputs()),
		Directives:  DirectiveDefinitions(),
		Annotations: c.Annotations,
	}
	defs := append([]*ast.Definition{query, mutation}, s.Objects...)
	defs = append(defs, s.Inputs...)
	for _, def := range defs {
		if _, ok := s.AST.Types[def.Name]; ok {
			return nil, NewSchemaError(def.Name, "", fmt.Sprintf("type name %s is generated more than once", def.Name), nil)
		}
		s.AST.Types[def.Name] = def
		s.AST.PossibleTypes[def.Name] = []*ast.Definition{def}
	}
	for _, d := range s.Directives {
		s.AST.Directives[d.Name] = d
	}
	c.Config.Logger.Debug("synthesized schema",
		slog.Int("objects", len(c.Objects)),
		slog.Int("inputs", len(s.Inputs)),
		slog.Int("query_fields", len(query.Fields)),
		slog.Int("mutation_fields", len(mutation.Fields)),
	)
	return s, nil
}

func nonEmpty(defs []*ast.Definition) []*ast.Definition {
	out := make([]*ast.Definition, 0, len(defs))
	for _, def := range defs {
		if len(def.Fields) > 0 {
			out = append(out, def)
		}
	}
	return out
}

// Type returns the generated definition with the given name.
func (s *Schema) Type(name string) *ast.Definition {
	return s.AST.Types[name]
}
