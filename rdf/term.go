// Package rdf holds the statement model used by the compiler: RDF terms
// backed by github.com/cayleygraph/quad, the SHACL vocabulary, document
// decoding and an in-memory triple index.
package rdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
)

// IsBlank reports whether v is a blank node.
func IsBlank(v quad.Value) bool {
	_, ok := v.(quad.BNode)
	return ok
}

// IsIRI reports whether v is a named node.
func IsIRI(v quad.Value) bool {
	_, ok := v.(quad.IRI)
	return ok
}

// Lexical returns the lexical form of an IRI or literal value.
// Decoders may hand back native numeric and boolean values for typed
// literals, so those are formatted back to their lexical form.
func Lexical(v quad.Value) (string, bool) {
	switch v := v.(type) {
	case quad.IRI:
		return string(v), true
	case quad.String:
		return string(v), true
	case quad.TypedString:
		return string(v.Value), true
	case quad.LangString:
		return string(v.Value), true
	case quad.Int:
		return strconv.FormatInt(int64(v), 10), true
	case quad.Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64), true
	case quad.Bool:
		return strconv.FormatBool(bool(v)), true
	default:
		return "", false
	}
}

// Integer returns the non-negative integer held by a literal value.
func Integer(v quad.Value) (int, error) {
	if i, ok := v.(quad.Int); ok {
		if i < 0 {
			return 0, fmt.Errorf("negative integer %d", i)
		}
		return int(i), nil
	}
	s, ok := Lexical(v)
	if !ok || IsIRI(v) {
		return 0, fmt.Errorf("not a literal: %v", v)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative integer %d", n)
	}
	return n, nil
}

// Fragment returns the text after the last '#' of an IRI.
// The second result is false if the IRI has no, or an empty, fragment.
func Fragment(iri quad.IRI) (string, bool) {
	i := strings.LastIndexByte(string(iri), '#')
	if i < 0 || i == len(iri)-1 {
		return "", false
	}
	return string(iri[i+1:]), true
}
