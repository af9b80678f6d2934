package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func fieldNames(def *ast.Definition) []string {
	names := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestBuildQuery(t *testing.T) {
	t.Run("lookup and collection per type", func(t *testing.T) {
		s := build(t, contactShapes)
		require.NotNil(t, s.Query)
		assert.Equal(t, DefaultQueryName, s.Query.Name)
		assert.Equal(t, []string{
			"contact", "contactCollection",
			"address", "addressCollection",
			"organization", "organizationCollection",
		}, fieldNames(s.Query))

		contact := s.Query.Fields.ForName("contact")
		assert.Equal(t, "Contact", contact.Type.String())
		require.Len(t, contact.Arguments, 1)
		assert.Equal(t, "id", contact.Arguments[0].Name)
		assert.Equal(t, "String", contact.Arguments[0].Type.String())

		collection := s.Query.Fields.ForName("contactCollection")
		assert.Equal(t, "[Contact]", collection.Type.String())
		assert.Empty(t, collection.Arguments)
	})

	t.Run("plural collections", func(t *testing.T) {
		s := build(t, contactShapes, WithPluralCollections())
		assert.NotNil(t, s.Query.Fields.ForName("contacts"))
		assert.NotNil(t, s.Query.Fields.ForName("addresses"))
		assert.Nil(t, s.Query.Fields.ForName("contactCollection"))
	})

	t.Run("root names", func(t *testing.T) {
		s := build(t, contactShapes, WithRootNames("RootQuery", "RootMutation"))
		assert.Equal(t, "RootQuery", s.Query.Name)
		assert.Equal(t, "RootMutation", s.Mutation.Name)
		assert.Same(t, s.Query, s.AST.Query)
		assert.Same(t, s.Mutation, s.AST.Mutation)
	})
}

func TestBuildMutation(t *testing.T) {
	s := build(t, contactShapes)

	t.Run("create and mutate per type", func(t *testing.T) {
		assert.Equal(t, []string{
			"createContact", "mutateContact",
			"createAddress", "mutateAddress",
			"createOrganization", "mutateOrganization",
		}, fieldNames(s.Mutation))

		create := s.Mutation.Fields.ForName("createContact")
		assert.Equal(t, "Contact!", create.Type.String())
		require.Len(t, create.Arguments, 1)
		assert.Equal(t, "input", create.Arguments[0].Name)
		assert.Equal(t, "CreateContactInput!", create.Arguments[0].Type.String())

		mutate := s.Mutation.Fields.ForName("mutateContact")
		assert.Equal(t, "ContactMutation", mutate.Type.String())
		require.Len(t, mutate.Arguments, 1)
		assert.Equal(t, "ID!", mutate.Arguments[0].Type.String())
	})

	t.Run("relationship operations", func(t *testing.T) {
		mut := s.Type("ContactMutation")
		require.NotNil(t, mut)
		assert.Equal(t, []string{
			"delete", "update",
			"setAddress", "clearAddress", "linkAddress", "unlinkAddress",
			"addWorksFor", "removeWorksFor", "linkWorksFor", "unlinkWorksFor",
		}, fieldNames(mut))
		for _, f := range mut.Fields {
			assert.Equal(t, "Contact!", f.Type.String(), f.Name)
		}

		args := func(name string) []string {
			var out []string
			for _, a := range mut.Fields.ForName(name).Arguments {
				out = append(out, a.Name+": "+a.Type.String())
			}
			return out
		}
		assert.Empty(t, args("delete"))
		assert.Equal(t, []string{"input: UpdateContactInput!"}, args("update"))
		assert.Equal(t, []string{"input: CreateAddressInput!"}, args("setAddress"))
		assert.Empty(t, args("clearAddress"))
		assert.Equal(t, []string{"input: CreateOrganizationInput!"}, args("addWorksFor"))
		assert.Equal(t, []string{"id: ID!"}, args("removeWorksFor"))
		assert.Equal(t, []string{"id: ID!"}, args("linkWorksFor"))
		assert.Equal(t, []string{"id: ID!"}, args("unlinkWorksFor"))
	})

	t.Run("update is omitted without scalar fields", func(t *testing.T) {
		mut := s.Type("OrganizationMutation")
		require.NotNil(t, mut)
		assert.Equal(t, []string{"delete", "addMember", "removeMember", "linkMember", "unlinkMember"}, fieldNames(mut))

		assert.Nil(t, s.Type("UpdateOrganizationInput"))
		for _, in := range s.Inputs {
			assert.NotEqual(t, "UpdateOrganizationInput", in.Name)
		}
	})

	t.Run("mutation types inherit @is", func(t *testing.T) {
		is, ok := s.Annotations.TypeDirective(s.Type("ContactMutation"), DirectiveIs)
		require.True(t, ok)
		class, _ := is.Argument("class")
		assert.Equal(t, "http://ex.org/Contact", class)
	})
}

func TestBuildInputs(t *testing.T) {
	s := build(t, contactShapes)

	t.Run("interned once per name", func(t *testing.T) {
		seen := make(map[string]int)
		for _, in := range s.Inputs {
			seen[in.Name]++
			assert.Equal(t, ast.InputObject, in.Kind)
		}
		for name, n := range seen {
			assert.Equal(t, 1, n, name)
		}
		assert.Contains(t, seen, "CreateContactInput")
		assert.Contains(t, seen, "CreateAddressInput")
		assert.Contains(t, seen, "CreateOrganizationInput")
		assert.Contains(t, seen, "UpdateContactInput")
	})

	t.Run("create input", func(t *testing.T) {
		in := s.Type("CreateContactInput")
		require.NotNil(t, in)
		assert.Equal(t, map[string]string{
			"id":        "ID",
			"slug":      "String",
			"givenName": "String!",
			"nickname":  "[String]",
		}, fieldTypes(in))
		assert.Equal(t, CreateIDDescription, in.Fields.ForName("id").Description)
		assert.Equal(t, CreateSlugDescription, in.Fields.ForName("slug").Description)
		assert.Equal(t, "The given name of the contact.", in.Fields.ForName("givenName").Description)

		prop, ok := s.Annotations.FieldDirective(in.Fields.ForName("givenName"), DirectiveProperty)
		require.True(t, ok)
		iri, _ := prop.Argument("iri")
		assert.Equal(t, "http://ex.org/givenName", iri)
		assert.False(t, s.Annotations.IsIdentifier(in.Fields.ForName("id")))
	})

	t.Run("update input strips the outer non-null", func(t *testing.T) {
		in := s.Type("UpdateContactInput")
		require.NotNil(t, in)
		assert.Equal(t, map[string]string{
			"givenName": "String",
			"nickname":  "[String]",
		}, fieldTypes(in))

		obj := s.Type("Contact")
		assert.Equal(t, "String!", obj.Fields.ForName("givenName").Type.String(), "object type is not modified")
	})

	t.Run("inputs inherit @is", func(t *testing.T) {
		for _, name := range []string{"CreateContactInput", "UpdateContactInput"} {
			is, ok := s.Annotations.TypeDirective(s.Type(name), DirectiveIs)
			require.True(t, ok, name)
			class, _ := is.Argument("class")
			assert.Equal(t, "http://ex.org/Contact", class)
		}
	})

	t.Run("slug property does not repeat", func(t *testing.T) {
		s := build(t, `shapes:Page a sh:NodeShape ; sh:property [ sh:name "slug" ; sh:datatype xsd:string ; sh:maxCount 1 ] .`)
		in := s.Type("CreatePageInput")
		assert.Equal(t, []string{"id", "slug"}, fieldNames(in))
		assert.Equal(t, []string{"slug"}, fieldNames(s.Type("UpdatePageInput")))
	})
}

func TestBuildSchema(t *testing.T) {
	t.Run("types and directives", func(t *testing.T) {
		s := build(t, contactShapes)
		for _, name := range []string{"Query", "Mutation", "Contact", "Address", "Organization", "ContactMutation", "CreateContactInput"} {
			assert.NotNil(t, s.AST.Types[name], name)
		}
		require.Len(t, s.Directives, 3)
		assert.Equal(t, DirectiveIs, s.Directives[0].Name)
		assert.Equal(t, DirectiveProperty, s.Directives[1].Name)
		assert.Equal(t, DirectiveIdentifier, s.Directives[2].Name)
		assert.Len(t, s.AST.Directives, 3)
		assert.Len(t, s.Objects, 6)
	})

	t.Run("generated name collides with a shape", func(t *testing.T) {
		c := newContext(t, `
shapes:Contact a sh:NodeShape .
shapes:ContactMutation a sh:NodeShape .
`)
		_, err := Build(c)
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("shape named like a root type", func(t *testing.T) {
		_, err := Build(newContext(t, `shapes:Query a sh:NodeShape .`))
		assert.True(t, IsSchemaError(err))
	})
}
