package rdf

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuads() []quad.Quad {
	shape := quad.IRI("http://ex.org/shapes#Contact")
	prop := quad.BNode("d0/b0")
	return []quad.Quad{
		{Subject: shape, Predicate: Type, Object: NodeShape},
		{Subject: shape, Predicate: TargetClass, Object: quad.IRI("http://ex.org/Contact")},
		{Subject: shape, Predicate: Property, Object: prop},
		{Subject: prop, Predicate: Name, Object: quad.String("givenName")},
		{Subject: prop, Predicate: MaxCount, Object: quad.Int(1)},
		{Subject: shape, Predicate: Type, Object: NodeShape},
	}
}

func TestNewIndex(t *testing.T) {
	t.Run("drops exact duplicates", func(t *testing.T) {
		idx := NewIndex(testQuads())
		assert.Equal(t, 5, idx.Len())
		assert.Len(t, idx.All(), 5)
	})

	t.Run("keeps statements from different graphs", func(t *testing.T) {
		quads := testQuads()[:1]
		dup := quads[0]
		dup.Label = quad.IRI("http://ex.org/graph")
		idx := NewIndex(append(quads, dup))
		assert.Equal(t, 2, idx.Len())
	})

	t.Run("empty input", func(t *testing.T) {
		idx := NewIndex(nil)
		assert.Equal(t, 0, idx.Len())
		assert.Empty(t, idx.GroupBySubject())
		assert.Equal(t, 0, idx.Blank().Len())
	})
}

func TestIndexMatch(t *testing.T) {
	idx := NewIndex(testQuads())
	shape := quad.IRI("http://ex.org/shapes#Contact")

	t.Run("all wildcards", func(t *testing.T) {
		assert.Len(t, idx.Match(nil, nil, nil), 5)
	})

	t.Run("by subject", func(t *testing.T) {
		assert.Len(t, idx.Match(shape, nil, nil), 3)
	})

	t.Run("by predicate and object", func(t *testing.T) {
		got := idx.Match(nil, Type, NodeShape)
		require.Len(t, got, 1)
		assert.Equal(t, shape, got[0].Subject)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, idx.Match(quad.IRI("http://ex.org/missing"), nil, nil))
		assert.Empty(t, idx.Match(nil, Class, nil))
	})

	t.Run("subjects and objects", func(t *testing.T) {
		assert.Equal(t, []quad.Value{shape}, idx.Subjects(Type, NodeShape))
		assert.Equal(t, []quad.Value{quad.IRI("http://ex.org/Contact")}, idx.Objects(shape, TargetClass))
	})
}

func TestIndexBlank(t *testing.T) {
	idx := NewIndex(testQuads())
	blank := idx.Blank()

	assert.Equal(t, 2, blank.Len())
	for _, q := range blank.All() {
		assert.True(t, IsBlank(q.Subject))
	}
	assert.Same(t, blank, blank.Blank())
}

func TestIndexGroupBySubject(t *testing.T) {
	idx := NewIndex(testQuads())
	groups := idx.GroupBySubject()

	require.Len(t, groups, 2)
	assert.Equal(t, quad.IRI("http://ex.org/shapes#Contact"), groups[0].Subject)
	assert.Len(t, groups[0].Quads, 3)
	assert.Equal(t, quad.BNode("d0/b0"), groups[1].Subject)
	assert.Len(t, groups[1].Quads, 2)

	t.Run("blank nodes of different scopes stay apart", func(t *testing.T) {
		idx := NewIndex([]quad.Quad{
			{Subject: quad.BNode("d0/b0"), Predicate: Name, Object: quad.String("a")},
			{Subject: quad.BNode("d1/b0"), Predicate: Name, Object: quad.String("b")},
		})
		assert.Len(t, idx.GroupBySubject(), 2)
		assert.Same(t, idx.GroupBySubject()[1], idx.Group(quad.BNode("d1/b0")))
	})
}
