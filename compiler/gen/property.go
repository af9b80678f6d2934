package gen

import (
	"fmt"

	"github.com/cayleygraph/quad"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/sdx/rdf"
)

// PropertyShape is a SHACL property shape, the source of one field.
type PropertyShape struct {
	Name        string
	Description string
	// Path is the sh:path IRI, empty when absent or not a plain IRI.
	Path quad.IRI
	// MinCount and MaxCount are nil when unbounded.
	MinCount *int
	MaxCount *int
	// Datatype and Class hold the sh:datatype and sh:class IRIs.
	Datatype quad.IRI
	Class    quad.IRI
	// Type is the resolved field type. It stays nil for dropped properties.
	Type *ast.Type
	// Node is the blank node the property is described by.
	Node quad.Value
}

// NewPropertyShape reads the property described by node from the blank
// node index. Shape names the owning shape in errors.
func NewPropertyShape(shape string, node quad.Value, blank *rdf.Index) (*PropertyShape, error) {
	var quads []quad.Quad
	if g := blank.Group(node); g != nil {
		quads = g.Quads
	}
	names := objectsOf(quads, rdf.Name, nil)
	if len(names) != 1 {
		return nil, NewSchemaError(shape, "", fmt.Sprintf("expected one sh:name for property %s, got %d", node, len(names)), nil)
	}
	name, ok := rdf.Lexical(names[0])
	if !ok || !IsValidName(name) {
		return nil, NewSchemaError(shape, name, "sh:name is not a valid field name", nil)
	}
	p := &PropertyShape{Name: name, Node: node}

	one := func(pred quad.IRI) (quad.Value, error) {
		vs := objectsOf(quads, pred, nil)
		switch len(vs) {
		case 0:
			return nil, nil
		case 1:
			return vs[0], nil
		default:
			return nil, NewSchemaError(shape, name, fmt.Sprintf("expected at most one %s, got %d", pred, len(vs)), nil)
		}
	}
	iri := func(pred quad.IRI) (quad.IRI, error) {
		v, err := one(pred)
		if err != nil || v == nil {
			return "", err
		}
		i, ok := v.(quad.IRI)
		if !ok {
			return "", NewSchemaError(shape, name, fmt.Sprintf("%s must be an IRI", pred), nil)
		}
		return i, nil
	}
	count := func(pred quad.IRI) (*int, error) {
		v, err := one(pred)
		if err != nil || v == nil {
			return nil, err
		}
		n, err := rdf.Integer(v)
		if err != nil {
			return nil, NewSchemaError(shape, name, fmt.Sprintf("invalid %s", pred), err)
		}
		return &n, nil
	}

	v, err := one(rdf.Description)
	if err != nil {
		return nil, err
	}
	if v != nil {
		p.Description, _ = rdf.Lexical(v)
	}
	v, err = one(rdf.Path)
	if err != nil {
		return nil, err
	}
	// Complex SHACL paths are blank nodes and carry no single IRI.
	if i, ok := v.(quad.IRI); ok {
		p.Path = i
	}
	if p.MinCount, err = count(rdf.MinCount); err != nil {
		return nil, err
	}
	if p.MaxCount, err = count(rdf.MaxCount); err != nil {
		return nil, err
	}
	if p.Datatype, err = iri(rdf.Datatype); err != nil {
		return nil, err
	}
	if p.Class, err = iri(rdf.Class); err != nil {
		return nil, err
	}
	return p, nil
}

// Dropped reports whether the property produced no field.
func (p *PropertyShape) Dropped() bool {
	return p.Type == nil
}

// Wrap applies the cardinality rule to the named type: only a maxCount of
// exactly 1 keeps the type singular, a minCount greater than 0 makes the
// outer type non-null. A maxCount of 0 is treated like an absent one.
func Wrap(name string, minCount, maxCount *int) *ast.Type {
	t := ast.NamedType(name, nil)
	if maxCount == nil || *maxCount != 1 {
		t = ast.ListType(t, nil)
	}
	if minCount != nil && *minCount > 0 {
		t.NonNull = true
	}
	return t
}
