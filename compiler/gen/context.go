package gen

import (
	"fmt"
	"log/slog"

	"github.com/cayleygraph/quad"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/sdx"
	"github.com/syssam/sdx/rdf"
)

// TypeConverter turns a shape into its object type. It runs after every
// property of every shape has been resolved.
type TypeConverter func(*Context, *Shape) (*ast.Definition, error)

// Context owns everything one generation run produces: the statement index,
// the shapes, their object types and the interned input types.
type Context struct {
	Config *Config
	// Index holds all statements of the run; Blank its blank node subset.
	Index *rdf.Index
	Blank *rdf.Index
	// Shapes in the order their subjects first appear in the index.
	Shapes []*Shape
	// Objects holds the object type of each shape, in shape order.
	Objects []*ast.Definition
	// Annotations holds the directives of every generated definition.
	Annotations *Annotations

	objects    map[string]*ast.Definition
	inputs     []*ast.Definition
	inputNames map[string]*ast.Definition
}

// NewContext extracts the shapes of the index and converts them into object
// types. Shapes are extracted and their properties resolved before any type
// is converted, so class references may point at shapes declared later.
//
// NewContext returns an error wrapping sdx.ErrNoShapes when the index holds
// no node shape.
func NewContext(idx *rdf.Index, opts ...Option) (*Context, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	c := &Context{
		Config:      cfg,
		Index:       idx,
		Blank:       idx.Blank(),
		Annotations: NewAnnotations(),
		objects:     make(map[string]*ast.Definition),
		inputNames:  make(map[string]*ast.Definition),
	}
	if err := c.extract(); err != nil {
		return nil, err
	}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	if err := c.convert(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewContextFromQuads indexes quads and calls NewContext.
func NewContextFromQuads(quads []quad.Quad, opts ...Option) (*Context, error) {
	return NewContext(rdf.NewIndex(quads), opts...)
}

func (c *Context) extract() error {
	subjects := c.Index.Subjects(rdf.Type, rdf.NodeShape)
	if len(subjects) == 0 {
		return fmt.Errorf("extract shapes: %w", sdx.ErrNoShapes)
	}
	names := make(map[string]*Shape, len(subjects))
	for _, subject := range subjects {
		s, err := NewShape(c.Index.Group(subject), c.Blank)
		if err != nil {
			return err
		}
		if prev, ok := names[s.Name]; ok {
			return NewSchemaError(string(s.IRI), "", fmt.Sprintf("type name %s already used by %s", s.Name, prev.IRI), nil)
		}
		names[s.Name] = s
		c.Shapes = append(c.Shapes, s)
	}
	return nil
}

func (c *Context) resolve() error {
	for _, s := range c.Shapes {
		for _, p := range s.Properties {
			t, err := c.FieldType(s, p)
			if err != nil {
				return err
			}
			if t == nil {
				c.Config.Logger.Debug("dropping property without a known type",
					slog.String("shape", s.Name),
					slog.String("property", p.Name),
					slog.String("datatype", string(p.Datatype)),
				)
				continue
			}
			p.Type = t
		}
	}
	return nil
}

func (c *Context) convert() error {
	for _, s := range c.Shapes {
		def, err := c.Config.Converter(c, s)
		if err != nil {
			return err
		}
		if def == nil || def.Name == "" {
			return NewSchemaError(s.Name, "", "converter returned no type", nil)
		}
		if _, ok := c.objects[def.Name]; ok {
			return NewSchemaError(s.Name, "", fmt.Sprintf("duplicate type %s", def.Name), nil)
		}
		c.objects[def.Name] = def
		c.Objects = append(c.Objects, def)
	}
	return nil
}

// FieldType resolves the type of the property, or returns nil when the
// property has an unknown datatype or neither a datatype nor a class.
func (c *Context) FieldType(s *Shape, p *PropertyShape) (*ast.Type, error) {
	var name string
	switch {
	case p.Datatype != "":
		scalar, ok := c.Config.Datatypes[string(p.Datatype)]
		if !ok {
			return nil, nil
		}
		name = scalar
	case p.Class != "":
		target, err := c.ResolveClass(p.Class)
		if err != nil {
			return nil, NewResolutionError(s.Name, p.Name, string(p.Class), err)
		}
		name = target.Name
	default:
		return nil, nil
	}
	return Wrap(name, p.MinCount, p.MaxCount), nil
}

// ResolveClass returns the one shape whose target class is class.
// It fails with sdx.ErrNotSingular when no shape or several shapes match.
func (c *Context) ResolveClass(class quad.IRI) (*Shape, error) {
	var matches []*Shape
	for _, s := range c.Shapes {
		if s.TargetClass == class {
			matches = append(matches, s)
		}
	}
	if len(matches) != 1 {
		return nil, sdx.NewNotSingularError("shape for class "+string(class), len(matches))
	}
	return matches[0], nil
}

// Object returns the object type with the given name.
func (c *Context) Object(name string) (*ast.Definition, bool) {
	def, ok := c.objects[name]
	return def, ok
}

// IsRelation reports whether the innermost type of f is a generated object
// type.
func (c *Context) IsRelation(f *ast.FieldDefinition) bool {
	_, ok := c.objects[f.Type.Name()]
	return ok
}

// Input returns the input type with the given name. The first call creates
// the type and passes it to build; later calls return the same definition.
func (c *Context) Input(name string, build func(*ast.Definition)) *ast.Definition {
	if def, ok := c.inputNames[name]; ok {
		return def
	}
	def := &ast.Definition{Kind: ast.InputObject, Name: name}
	c.inputNames[name] = def
	c.inputs = append(c.inputs, def)
	if build != nil {
		build(def)
	}
	return def
}

// Inputs returns the interned input types in creation order.
func (c *Context) Inputs() []*ast.Definition {
	return c.inputs
}
