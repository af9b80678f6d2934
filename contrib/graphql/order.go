package graphql

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultFieldOrder lists the field names printed before all others.
var DefaultFieldOrder = []string{"id", "slug", "delete", "update"}

// SortFields returns the fields ordered by their position in order, then
// alphabetically. The input list is not modified.
func SortFields(fields ast.FieldList, order []string) ast.FieldList {
	sorted := slices.Clone(fields)
	rank := func(name string) int {
		if i := slices.Index(order, name); i >= 0 {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(sorted, func(a, b *ast.FieldDefinition) int {
		if ra, rb := rank(a.Name), rank(b.Name); ra != rb {
			return ra - rb
		}
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
