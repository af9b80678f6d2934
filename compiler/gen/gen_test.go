package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/sdx/rdf"
)

const prefixes = `
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix ex: <http://ex.org/> .
@prefix shapes: <http://ex.org/shapes#> .
`

// contactShapes declares Contact before the Address and Organization shapes
// it refers to.
const contactShapes = `
shapes:Contact a sh:NodeShape ;
  sh:targetClass ex:Contact ;
  sh:property [
    sh:name "givenName" ;
    sh:description "The given name of the contact." ;
    sh:path ex:givenName ;
    sh:datatype xsd:string ;
    sh:minCount 1 ;
    sh:maxCount 1
  ] ;
  sh:property [
    sh:name "nickname" ;
    sh:path ex:nickname ;
    sh:datatype xsd:string
  ] ;
  sh:property [
    sh:name "address" ;
    sh:path ex:address ;
    sh:class ex:Address ;
    sh:maxCount 1
  ] ;
  sh:property [
    sh:name "worksFor" ;
    sh:path ex:worksFor ;
    sh:class ex:Organization
  ] .

shapes:Address a sh:NodeShape ;
  sh:targetClass ex:Address ;
  sh:property [
    sh:name "street" ;
    sh:path ex:street ;
    sh:datatype xsd:string ;
    sh:maxCount 1
  ] .

shapes:Organization a sh:NodeShape ;
  sh:targetClass ex:Organization ;
  sh:property [
    sh:name "member" ;
    sh:path ex:member ;
    sh:class ex:Contact
  ] .
`

func decode(t *testing.T, doc string) *rdf.Index {
	t.Helper()
	quads, err := rdf.Decode(strings.NewReader(prefixes+doc), rdf.Turtle, "d0/")
	require.NoError(t, err)
	return rdf.NewIndex(quads)
}

func newContext(t *testing.T, doc string, opts ...Option) *Context {
	t.Helper()
	c, err := NewContext(decode(t, doc), opts...)
	require.NoError(t, err)
	return c
}

func build(t *testing.T, doc string, opts ...Option) *Schema {
	t.Helper()
	s, err := Build(newContext(t, doc, opts...))
	require.NoError(t, err)
	return s
}

func intp(n int) *int { return &n }
