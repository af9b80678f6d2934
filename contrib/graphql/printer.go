package graphql

import (
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/sdx/compiler/gen"
)

// PrintOption configures Print.
type PrintOption func(*printer)

// WithFieldOrder sets the field names printed first, in the given order.
// Remaining fields follow alphabetically.
func WithFieldOrder(names ...string) PrintOption {
	return func(p *printer) {
		p.order = names
	}
}

// WithIndent sets the indentation of fields. Defaults to two spaces.
func WithIndent(indent string) PrintOption {
	return func(p *printer) {
		p.indent = indent
	}
}

type printer struct {
	annotations *gen.Annotations
	order       []string
	indent      string
}

// Print renders the schema as SDL. Sections are separated by a blank line:
//
//	schema block
//	directive definitions
//	query and mutation types
//	other object types, sorted by name
//	input types, sorted by name
//
// Definitions without fields are left out. Directives are taken from the
// schema annotations.
func Print(s *gen.Schema, opts ...PrintOption) string {
	p := &printer{
		annotations: s.Annotations,
		order:       DefaultFieldOrder,
		indent:      "  ",
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.annotations == nil {
		p.annotations = gen.NewAnnotations()
	}
	var blocks []string
	blocks = append(blocks, p.schemaBlock(s))
	for _, d := range s.Directives {
		blocks = append(blocks, p.directive(d))
	}
	for _, def := range []*ast.Definition{s.Query, s.Mutation} {
		if def != nil && len(def.Fields) > 0 {
			blocks = append(blocks, p.definition(def))
		}
	}
	for _, defs := range [][]*ast.Definition{s.Objects, s.Inputs} {
		for _, def := range sortedByName(defs) {
			if len(def.Fields) > 0 {
				blocks = append(blocks, p.definition(def))
			}
		}
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func (p *printer) schemaBlock(s *gen.Schema) string {
	var b strings.Builder
	b.WriteString("schema {\n")
	if s.Query != nil && len(s.Query.Fields) > 0 {
		b.WriteString(p.indent + "query: " + s.Query.Name + "\n")
	}
	if s.Mutation != nil && len(s.Mutation.Fields) > 0 {
		b.WriteString(p.indent + "mutation: " + s.Mutation.Name + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (p *printer) directive(d *ast.DirectiveDefinition) string {
	var b strings.Builder
	b.WriteString(description(d.Description, ""))
	b.WriteString("directive @" + d.Name)
	b.WriteString(arguments(d.Arguments))
	if d.IsRepeatable {
		b.WriteString(" repeatable")
	}
	locations := make([]string, len(d.Locations))
	for i, l := range d.Locations {
		locations[i] = string(l)
	}
	b.WriteString(" on " + strings.Join(locations, " | "))
	return b.String()
}

func (p *printer) definition(def *ast.Definition) string {
	var b strings.Builder
	b.WriteString(description(def.Description, ""))
	switch def.Kind {
	case ast.InputObject:
		b.WriteString("input ")
	default:
		b.WriteString("type ")
	}
	b.WriteString(def.Name)
	b.WriteString(directives(p.annotations.Type(def)))
	b.WriteString(" {\n")
	for _, f := range SortFields(def.Fields, p.order) {
		b.WriteString(description(f.Description, p.indent))
		b.WriteString(p.indent + f.Name)
		b.WriteString(arguments(f.Arguments))
		b.WriteString(": " + f.Type.String())
		b.WriteString(directives(p.annotations.Field(f)))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

func arguments(args ast.ArgumentDefinitionList) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + ": " + a.Type.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func directives(ds []gen.Directive) string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(" @" + d.Name)
		if len(d.Arguments) == 0 {
			continue
		}
		parts := make([]string, len(d.Arguments))
		for i, a := range d.Arguments {
			parts[i] = a.Name + ": " + quote(a.Value)
		}
		b.WriteString("(" + strings.Join(parts, ", ") + ")")
	}
	return b.String()
}

// description renders a description line, or a block string when the text
// spans several lines.
func description(text, indent string) string {
	if text == "" {
		return ""
	}
	if !strings.Contains(text, "\n") {
		return indent + quote(text) + "\n"
	}
	var b strings.Builder
	b.WriteString(indent + `"""` + "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(line, `"""`, `\"""`)
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(indent + line + "\n")
	}
	b.WriteString(indent + `"""` + "\n")
	return b.String()
}

// quote returns s as a GraphQL string value.
func quote(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\u00`)
				b.WriteByte(hex[r>>4])
				b.WriteByte(hex[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func sortedByName(defs []*ast.Definition) []*ast.Definition {
	sorted := slices.Clone(defs)
	slices.SortStableFunc(sorted, func(a, b *ast.Definition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
