package rdf

import (
	"github.com/cayleygraph/quad"
	rdfvoc "github.com/cayleygraph/quad/voc/rdf"
)

// Namespace IRIs of the vocabularies the compiler reads.
const (
	// RDFNamespace is the base IRI of the RDF vocabulary.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// SHACLNamespace is the base IRI of the SHACL vocabulary.
	SHACLNamespace = "http://www.w3.org/ns/shacl#"
	// XSDNamespace is the base IRI of the XML Schema datatypes.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// RDF terms.
var (
	// Type is rdf:type, written "a" in Turtle.
	Type = quad.IRI(rdfvoc.Type).Full()
	// LangString is the datatype of language tagged strings.
	LangString = quad.IRI(RDFNamespace + "langString")
)

// SHACL terms used to describe node and property shapes.
var (
	NodeShape   = quad.IRI(SHACLNamespace + "NodeShape")
	Property    = quad.IRI(SHACLNamespace + "property")
	TargetClass = quad.IRI(SHACLNamespace + "targetClass")
	Name        = quad.IRI(SHACLNamespace + "name")
	Description = quad.IRI(SHACLNamespace + "description")
	Path        = quad.IRI(SHACLNamespace + "path")
	Datatype    = quad.IRI(SHACLNamespace + "datatype")
	Class       = quad.IRI(SHACLNamespace + "class")
	MinCount    = quad.IRI(SHACLNamespace + "minCount")
	MaxCount    = quad.IRI(SHACLNamespace + "maxCount")
)

// XSD datatypes with a GraphQL scalar counterpart.
var (
	XSDString  = quad.IRI(XSDNamespace + "string")
	XSDInt     = quad.IRI(XSDNamespace + "int")
	XSDInteger = quad.IRI(XSDNamespace + "integer")
	XSDFloat   = quad.IRI(XSDNamespace + "float")
	XSDDouble  = quad.IRI(XSDNamespace + "double")
	XSDBoolean = quad.IRI(XSDNamespace + "boolean")
)
