package rdf

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/knakk/rdf"
)

// Format is a textual RDF serialization.
type Format int

// Supported formats.
const (
	Turtle Format = iota
	NTriples
	NQuads
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Turtle:
		return "turtle"
	case NTriples:
		return "ntriples"
	case NQuads:
		return "nquads"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
// Unknown extensions are read as Turtle.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		return NTriples
	case ".nq", ".nquads":
		return NQuads
	default:
		return Turtle
	}
}

// Decode reads all statements of one document. Blank node labels are
// prefixed with scope, which keeps blank nodes of different documents apart
// once their statements share an index.
func Decode(r io.Reader, f Format, scope string) ([]quad.Quad, error) {
	switch f {
	case Turtle:
		return decodeTurtle(r, scope)
	case NTriples, NQuads:
		return decodeNQuads(r, scope)
	default:
		return nil, fmt.Errorf("rdf: unsupported format %v", f)
	}
}

func decodeTurtle(r io.Reader, scope string) ([]quad.Quad, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	var quads []quad.Quad
	for {
		t, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return quads, nil
		}
		if err != nil {
			return nil, fmt.Errorf("rdf: decode turtle: %w", err)
		}
		quads = append(quads, quad.Quad{
			Subject:   fromTerm(t.Subj, scope),
			Predicate: fromTerm(t.Pred, scope),
			Object:    fromTerm(t.Obj, scope),
		})
	}
}

func fromTerm(t rdf.Term, scope string) quad.Value {
	switch t := t.(type) {
	case rdf.IRI:
		return quad.IRI(t.String())
	case rdf.Blank:
		return quad.BNode(scope + t.String())
	case rdf.Literal:
		if lang := t.Lang(); lang != "" {
			return quad.LangString{Value: quad.String(t.String()), Lang: lang}
		}
		return quad.TypedString{Value: quad.String(t.String()), Type: quad.IRI(t.DataType.String())}
	default:
		return quad.String(t.String())
	}
}

func decodeNQuads(r io.Reader, scope string) ([]quad.Quad, error) {
	dec := nquads.NewReader(r, false)
	var quads []quad.Quad
	for {
		q, err := dec.ReadQuad()
		if errors.Is(err, io.EOF) {
			return quads, nil
		}
		if err != nil {
			return nil, fmt.Errorf("rdf: decode nquads: %w", err)
		}
		q.Subject = scopeBlank(q.Subject, scope)
		q.Object = scopeBlank(q.Object, scope)
		q.Label = scopeBlank(q.Label, scope)
		quads = append(quads, q)
	}
}

func scopeBlank(v quad.Value, scope string) quad.Value {
	if b, ok := v.(quad.BNode); ok {
		return quad.BNode(scope + string(b))
	}
	return v
}
