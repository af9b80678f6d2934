package gen

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/syssam/sdx/rdf"
)

// Shape is a SHACL node shape, the source of one object type.
type Shape struct {
	// Name is the fragment of the shape IRI and the name of its type.
	Name string
	// IRI of the shape subject.
	IRI quad.IRI
	// TargetClass is the sh:targetClass of the shape, empty when absent.
	TargetClass quad.IRI
	// Properties in statement order.
	Properties []*PropertyShape
	// Statements with the shape as subject.
	Statements []quad.Quad
}

// NewShape builds the shape described by the statement group. Property
// definitions are read from blank, the blank node subset of the index.
func NewShape(group *rdf.Group, blank *rdf.Index) (*Shape, error) {
	iri, ok := group.Subject.(quad.IRI)
	if !ok {
		return nil, NewSchemaError(group.Subject.String(), "", "shape subject must be an IRI", nil)
	}
	label := string(iri)
	if n := len(objectsOf(group.Quads, rdf.Type, rdf.NodeShape)); n != 1 {
		return nil, NewSchemaError(label, "", fmt.Sprintf("expected one rdf:type sh:NodeShape statement, got %d", n), nil)
	}
	name, ok := rdf.Fragment(iri)
	if !ok {
		return nil, NewSchemaError(label, "", "shape IRI has no fragment", nil)
	}
	if !IsValidName(name) {
		return nil, NewSchemaError(label, "", fmt.Sprintf("fragment %q is not a valid type name", name), nil)
	}
	s := &Shape{
		Name:       name,
		IRI:        iri,
		Statements: group.Quads,
	}
	classes := objectsOf(group.Quads, rdf.TargetClass, nil)
	switch len(classes) {
	case 0:
	case 1:
		class, ok := classes[0].(quad.IRI)
		if !ok {
			return nil, NewSchemaError(name, "", "sh:targetClass must be an IRI", nil)
		}
		s.TargetClass = class
	default:
		return nil, NewSchemaError(name, "", fmt.Sprintf("expected at most one sh:targetClass, got %d", len(classes)), nil)
	}
	for _, node := range objectsOf(group.Quads, rdf.Property, nil) {
		if !rdf.IsBlank(node) {
			continue
		}
		p, err := NewPropertyShape(name, node, blank)
		if err != nil {
			return nil, err
		}
		s.Properties = append(s.Properties, p)
	}
	return s, nil
}

// String returns the shape name.
func (s *Shape) String() string {
	return s.Name
}

// objectsOf returns the objects of the statements with predicate p, and
// object o when o is not nil.
func objectsOf(quads []quad.Quad, p, o quad.Value) []quad.Value {
	var out []quad.Value
	for _, q := range quads {
		if q.Predicate != p || o != nil && q.Object != o {
			continue
		}
		out = append(out, q.Object)
	}
	return out
}
