package gen

import (
	"slices"

	"github.com/vektah/gqlparser/v2/ast"
)

// Names of the directives attached to generated definitions.
const (
	// DirectiveIs carries the RDF class of an object or input type.
	DirectiveIs = "is"
	// DirectiveProperty carries the RDF property path of a field.
	DirectiveProperty = "property"
	// DirectiveIdentifier marks the synthetic id field.
	DirectiveIdentifier = "identifier"
)

// Directive is a directive application with string arguments.
type Directive struct {
	Name      string
	Arguments []DirectiveArgument
}

// DirectiveArgument is one named string argument of a Directive.
type DirectiveArgument struct {
	Name  string
	Value string
}

// Argument returns the value of the named argument.
func (d Directive) Argument(name string) (string, bool) {
	for _, a := range d.Arguments {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Is returns the @is(class: ...) directive.
func Is(class string) Directive {
	return Directive{Name: DirectiveIs, Arguments: []DirectiveArgument{{Name: "class", Value: class}}}
}

// Property returns the @property(iri: ...) directive.
func Property(iri string) Directive {
	return Directive{Name: DirectiveProperty, Arguments: []DirectiveArgument{{Name: "iri", Value: iri}}}
}

// Identifier returns the @identifier directive.
func Identifier() Directive {
	return Directive{Name: DirectiveIdentifier}
}

// DirectiveDefinitions returns the definitions of the generated directives
// in the order they are printed.
func DirectiveDefinitions() []*ast.DirectiveDefinition {
	str := func(name string) *ast.ArgumentDefinition {
		return &ast.ArgumentDefinition{Name: name, Type: ast.NamedType(ScalarString, nil)}
	}
	return []*ast.DirectiveDefinition{
		{
			Name:      DirectiveIs,
			Arguments: ast.ArgumentDefinitionList{str("class")},
			Locations: []ast.DirectiveLocation{ast.LocationObject, ast.LocationInputObject},
		},
		{
			Name:      DirectiveProperty,
			Arguments: ast.ArgumentDefinitionList{str("iri")},
			Locations: []ast.DirectiveLocation{ast.LocationFieldDefinition, ast.LocationInputFieldDefinition},
		},
		{
			Name:      DirectiveIdentifier,
			Locations: []ast.DirectiveLocation{ast.LocationFieldDefinition},
		},
	}
}

// Annotations stores the directives of generated definitions and fields,
// keyed by pointer identity. The gqlparser object model is left untouched;
// printers read directives from here.
type Annotations struct {
	types  map[*ast.Definition][]Directive
	fields map[*ast.FieldDefinition][]Directive
}

// NewAnnotations returns an empty side table.
func NewAnnotations() *Annotations {
	return &Annotations{
		types:  make(map[*ast.Definition][]Directive),
		fields: make(map[*ast.FieldDefinition][]Directive),
	}
}

// AnnotateType appends directives to the definition.
func (a *Annotations) AnnotateType(def *ast.Definition, ds ...Directive) {
	a.types[def] = append(a.types[def], ds...)
}

// AnnotateField appends directives to the field.
func (a *Annotations) AnnotateField(f *ast.FieldDefinition, ds ...Directive) {
	a.fields[f] = append(a.fields[f], ds...)
}

// Type returns the directives of the definition.
func (a *Annotations) Type(def *ast.Definition) []Directive {
	return a.types[def]
}

// Field returns the directives of the field.
func (a *Annotations) Field(f *ast.FieldDefinition) []Directive {
	return a.fields[f]
}

// TypeDirective returns the named directive of the definition.
func (a *Annotations) TypeDirective(def *ast.Definition, name string) (Directive, bool) {
	return find(a.types[def], name)
}

// FieldDirective returns the named directive of the field.
func (a *Annotations) FieldDirective(f *ast.FieldDefinition, name string) (Directive, bool) {
	return find(a.fields[f], name)
}

// IsIdentifier reports whether the field carries @identifier.
func (a *Annotations) IsIdentifier(f *ast.FieldDefinition) bool {
	_, ok := a.FieldDirective(f, DirectiveIdentifier)
	return ok
}

func find(ds []Directive, name string) (Directive, bool) {
	i := slices.IndexFunc(ds, func(d Directive) bool { return d.Name == name })
	if i < 0 {
		return Directive{}, false
	}
	return ds[i], true
}
