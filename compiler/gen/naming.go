package gen

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

var nameRe = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// IsValidName reports whether s is a valid GraphQL name.
func IsValidName(s string) bool {
	return nameRe.MatchString(s) && !strings.HasPrefix(s, "__")
}

// IsBuiltinScalar reports whether name is one of the built-in scalars.
func IsBuiltinScalar(name string) bool {
	switch name {
	case ScalarString, ScalarInt, ScalarFloat, ScalarBoolean, ScalarID:
		return true
	}
	return false
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return inflect.Capitalize(s)
}

// Decapitalize lower-cases the first letter of s.
func Decapitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return ""
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// QueryFieldName returns the name of the singular lookup of the type.
func QueryFieldName(typeName string) string {
	return Decapitalize(typeName)
}

// CollectionFieldName returns the name of the collection query of the type.
// With plural set the name is the pluralized lookup name.
func CollectionFieldName(typeName string, plural bool) string {
	name := Decapitalize(typeName)
	if plural {
		return inflect.Pluralize(name)
	}
	return name + "Collection"
}

// Generated type names.
func createInputName(typeName string) string  { return "Create" + typeName + "Input" }
func updateInputName(typeName string) string  { return "Update" + typeName + "Input" }
func mutationTypeName(typeName string) string { return typeName + "Mutation" }
