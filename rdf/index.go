package rdf

import "github.com/cayleygraph/quad"

// Group holds the statements sharing one subject, in insertion order.
type Group struct {
	Subject quad.Value
	Quads   []quad.Quad
}

// Index answers pattern queries over the statements of one parse run.
// All derived views are computed once by NewIndex and never change.
type Index struct {
	quads     []quad.Quad
	groups    []*Group
	bySubject map[quad.Value]*Group
	blank     *Index
}

// NewIndex builds an index over quads. Exact duplicates (all four terms
// equal) are dropped, the first occurrence keeps its position.
func NewIndex(quads []quad.Quad) *Index {
	idx := newIndex(quads)
	var blank []quad.Quad
	for _, q := range idx.quads {
		if IsBlank(q.Subject) {
			blank = append(blank, q)
		}
	}
	idx.blank = newIndex(blank)
	idx.blank.blank = idx.blank
	return idx
}

func newIndex(quads []quad.Quad) *Index {
	idx := &Index{
		quads:     make([]quad.Quad, 0, len(quads)),
		bySubject: make(map[quad.Value]*Group),
	}
	seen := make(map[quad.Quad]struct{}, len(quads))
	for _, q := range quads {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		idx.quads = append(idx.quads, q)
		g, ok := idx.bySubject[q.Subject]
		if !ok {
			g = &Group{Subject: q.Subject}
			idx.bySubject[q.Subject] = g
			idx.groups = append(idx.groups, g)
		}
		g.Quads = append(g.Quads, q)
	}
	return idx
}

// Len returns the number of statements in the index.
func (idx *Index) Len() int {
	return len(idx.quads)
}

// All returns every statement in insertion order.
func (idx *Index) All() []quad.Quad {
	return append([]quad.Quad(nil), idx.quads...)
}

// Blank returns the index of statements whose subject is a blank node.
func (idx *Index) Blank() *Index {
	return idx.blank
}

// GroupBySubject partitions the statements by subject. Groups are ordered
// by the first appearance of their subject.
func (idx *Index) GroupBySubject() []*Group {
	return append([]*Group(nil), idx.groups...)
}

// Group returns the statements of one subject, or nil.
func (idx *Index) Group(subject quad.Value) *Group {
	return idx.bySubject[subject]
}

// Match returns the statements matching the pattern. A nil term matches
// anything.
func (idx *Index) Match(s, p, o quad.Value) []quad.Quad {
	quads := idx.quads
	if s != nil {
		g, ok := idx.bySubject[s]
		if !ok {
			return nil
		}
		quads = g.Quads
	}
	var out []quad.Quad
	for _, q := range quads {
		if p != nil && q.Predicate != p {
			continue
		}
		if o != nil && q.Object != o {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Subjects returns the distinct subjects of statements matching (?, p, o).
func (idx *Index) Subjects(p, o quad.Value) []quad.Value {
	var (
		out  []quad.Value
		seen = make(map[quad.Value]struct{})
	)
	for _, q := range idx.Match(nil, p, o) {
		if _, ok := seen[q.Subject]; ok {
			continue
		}
		seen[q.Subject] = struct{}{}
		out = append(out, q.Subject)
	}
	return out
}

// Objects returns the objects of statements matching (s, p, ?), duplicates
// included.
func (idx *Index) Objects(s, p quad.Value) []quad.Value {
	matches := idx.Match(s, p, nil)
	out := make([]quad.Value, 0, len(matches))
	for _, q := range matches {
		out = append(out, q.Object)
	}
	return out
}
