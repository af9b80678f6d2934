package gen

import "github.com/vektah/gqlparser/v2/ast"

// QueryType builds the root query type: a lookup by id and a collection
// query per object type, in shape order.
func QueryType(c *Context) *ast.Definition {
	def := &ast.Definition{Kind: ast.Object, Name: c.Config.QueryName}
	for _, obj := range c.Objects {
		def.Fields = append(def.Fields,
			&ast.FieldDefinition{
				Name: QueryFieldName(obj.Name),
				Arguments: ast.ArgumentDefinitionList{
					{Name: IDField, Type: ast.NamedType(ScalarString, nil)},
				},
				Type: ast.NamedType(obj.Name, nil),
			},
			&ast.FieldDefinition{
				Name: CollectionFieldName(obj.Name, c.Config.PluralCollections),
				Type: ast.ListType(ast.NamedType(obj.Name, nil), nil),
			},
		)
	}
	return def
}
