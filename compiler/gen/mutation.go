package gen

import "github.com/vektah/gqlparser/v2/ast"

// MutationType builds the root mutation type. Each object type T gets
// create<T> and mutate<T>, the latter returning the <T>Mutation type.
// The <T>Mutation types are returned in shape order.
func MutationType(c *Context) (*ast.Definition, []*ast.Definition) {
	def := &ast.Definition{Kind: ast.Object, Name: c.Config.MutationName}
	var types []*ast.Definition
	for _, obj := range c.Objects {
		create := CreateInput(c, obj)
		mut := ObjectMutation(c, obj)
		types = append(types, mut)
		def.Fields = append(def.Fields,
			&ast.FieldDefinition{
				Name:      "create" + obj.Name,
				Arguments: inputArgument(create.Name),
				Type:      ast.NonNullNamedType(obj.Name, nil),
			},
			&ast.FieldDefinition{
				Name:      "mutate" + obj.Name,
				Arguments: idArgument(),
				Type:      ast.NamedType(mut.Name, nil),
			},
		)
	}
	return def, types
}

// ObjectMutation builds the <T>Mutation type of obj. It holds delete,
// update when the update input has fields, and the operations of every
// relationship field:
//
//	list:     add<F>, remove<F>, link<F>, unlink<F>
//	singular: set<F>, clear<F>, link<F>, unlink<F>
//
// All of them return a non-null obj.
func ObjectMutation(c *Context, obj *ast.Definition) *ast.Definition {
	def := &ast.Definition{Kind: ast.Object, Name: mutationTypeName(obj.Name)}
	inheritClass(c, obj, def)
	ret := func() *ast.Type { return ast.NonNullNamedType(obj.Name, nil) }
	field := func(name string, args ast.ArgumentDefinitionList) {
		def.Fields = append(def.Fields, &ast.FieldDefinition{Name: name, Arguments: args, Type: ret()})
	}

	field("delete", nil)
	if update := UpdateInput(c, obj); len(update.Fields) > 0 {
		field("update", inputArgument(update.Name))
	}
	for _, f := range obj.Fields {
		if !c.IsRelation(f) {
			continue
		}
		target, _ := c.Object(f.Type.Name())
		create := CreateInput(c, target)
		name := Capitalize(f.Name)
		if f.Type.Elem != nil {
			field("add"+name, inputArgument(create.Name))
			field("remove"+name, idArgument())
		} else {
			field("set"+name, inputArgument(create.Name))
			field("clear"+name, nil)
		}
		field("link"+name, idArgument())
		field("unlink"+name, idArgument())
	}
	return def
}

// CreateInput returns the Create<T>Input type of obj. It holds the optional
// id and slug fields followed by the scalar fields of obj.
func CreateInput(c *Context, obj *ast.Definition) *ast.Definition {
	return c.Input(createInputName(obj.Name), func(def *ast.Definition) {
		inheritClass(c, obj, def)
		def.Fields = append(def.Fields,
			&ast.FieldDefinition{
				Name:        IDField,
				Description: CreateIDDescription,
				Type:        ast.NamedType(ScalarID, nil),
			},
			&ast.FieldDefinition{
				Name:        "slug",
				Description: CreateSlugDescription,
				Type:        ast.NamedType(ScalarString, nil),
			},
		)
		for _, f := range inputFields(c, obj, false) {
			if def.Fields.ForName(f.Name) == nil {
				def.Fields = append(def.Fields, f)
			}
		}
	})
}

// UpdateInput returns the Update<T>Input type of obj. It holds the scalar
// fields of obj, all of them optional.
func UpdateInput(c *Context, obj *ast.Definition) *ast.Definition {
	return c.Input(updateInputName(obj.Name), func(def *ast.Definition) {
		inheritClass(c, obj, def)
		def.Fields = inputFields(c, obj, true)
	})
}

// inputFields copies the fields of obj whose innermost type is a built-in
// scalar, leaving out the identifier. Descriptions and field directives are
// kept.
func inputFields(c *Context, obj *ast.Definition, optional bool) ast.FieldList {
	var fields ast.FieldList
	for _, f := range obj.Fields {
		if c.Annotations.IsIdentifier(f) || !IsBuiltinScalar(f.Type.Name()) {
			continue
		}
		t := *f.Type
		if optional {
			t.NonNull = false
		}
		in := &ast.FieldDefinition{
			Name:        f.Name,
			Description: f.Description,
			Type:        &t,
		}
		c.Annotations.AnnotateField(in, c.Annotations.Field(f)...)
		fields = append(fields, in)
	}
	return fields
}

func inheritClass(c *Context, from, to *ast.Definition) {
	if d, ok := c.Annotations.TypeDirective(from, DirectiveIs); ok {
		c.Annotations.AnnotateType(to, d)
	}
}

func inputArgument(name string) ast.ArgumentDefinitionList {
	return ast.ArgumentDefinitionList{{Name: "input", Type: ast.NonNullNamedType(name, nil)}}
}

func idArgument() ast.ArgumentDefinitionList {
	return ast.ArgumentDefinitionList{{Name: IDField, Type: ast.NonNullNamedType(ScalarID, nil)}}
}
