package gen

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// Field descriptions of generated fields.
const (
	IDDescription         = "Auto-generated property that will be assigned to the `iri` of the Thing that is being queried."
	CreateIDDescription   = "Optional URI to use as an identifier for the new instance. One of the 'id' or 'slug' fields must be set!"
	CreateSlugDescription = "Optional slug that is combined with the context of the request to generate an identifier for the new instance. One of the 'id' or 'slug' fields must be set!"
)

// IDField is the name of the synthetic identifier field.
const IDField = "id"

// ObjectType is the default TypeConverter. The type starts with a required
// id field marked @identifier, followed by one field per resolved property.
// Fields carry @property with the property path, the type carries @is with
// the target class.
func ObjectType(c *Context, s *Shape) (*ast.Definition, error) {
	def := &ast.Definition{Kind: ast.Object, Name: s.Name}
	id := &ast.FieldDefinition{
		Name:        IDField,
		Description: IDDescription,
		Type:        ast.NonNullNamedType(ScalarID, nil),
	}
	c.Annotations.AnnotateField(id, Identifier())
	def.Fields = append(def.Fields, id)

	for _, p := range s.Properties {
		if p.Dropped() {
			continue
		}
		if def.Fields.ForName(p.Name) != nil {
			return nil, NewSchemaError(s.Name, p.Name, fmt.Sprintf("field %s is declared more than once", p.Name), nil)
		}
		f := &ast.FieldDefinition{
			Name:        p.Name,
			Description: p.Description,
			Type:        p.Type,
		}
		if p.Path != "" {
			c.Annotations.AnnotateField(f, Property(string(p.Path)))
		}
		def.Fields = append(def.Fields, f)
	}
	if s.TargetClass != "" {
		c.Annotations.AnnotateType(def, Is(string(s.TargetClass)))
	}
	return def, nil
}
