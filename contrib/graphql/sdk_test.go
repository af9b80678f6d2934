package graphql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDocuments(t *testing.T) {
	t.Run("nested documents", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"b.graphql", "nested/a.graphql", "notes.txt"} {
			path := filepath.Join(dir, filepath.FromSlash(name))
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte("{ __typename }"), 0o644))
		}

		docs, err := FindDocuments(dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "b.graphql"),
			filepath.Join(dir, "nested", "a.graphql"),
		}, docs)
	})

	t.Run("missing directory", func(t *testing.T) {
		docs, err := FindDocuments(filepath.Join(t.TempDir(), "missing"))
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("no directory configured", func(t *testing.T) {
		docs, err := FindDocuments("")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestValidateDocuments(t *testing.T) {
	schema, err := ParseSchema("schema.graphql", Print(buildSchema(t, contactShape)))
	require.NoError(t, err)
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.graphql")
	require.NoError(t, os.WriteFile(valid, []byte(`
query Contact($id: String) {
  contact(id: $id) { id givenName }
}
mutation Create($input: CreateContactInput!) {
  createContact(input: $input) { id }
}
`), 0o644))
	invalid := filepath.Join(dir, "invalid.graphql")
	require.NoError(t, os.WriteFile(invalid, []byte(`{ contact { familyName } }`), 0o644))

	require.NoError(t, ValidateDocuments(schema, []string{valid}))

	err = ValidateDocuments(schema, []string{valid, invalid, filepath.Join(dir, "missing.graphql")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid.graphql")
	assert.Contains(t, err.Error(), "familyName")
	assert.Contains(t, err.Error(), "read document")
}

func TestParseSchemaError(t *testing.T) {
	_, err := ParseSchema("broken.graphql", "type Query { contact: Missing }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.graphql")
}

func TestGenerateSDKMissingSchema(t *testing.T) {
	dir := t.TempDir()
	err := GenerateSDK(SDKOptions{
		ConfigPath: filepath.Join(dir, "gqlgen.yml"),
		SchemaPath: filepath.Join(dir, "schema.graphql"),
	})
	assert.ErrorContains(t, err, "read schema")
	_, statErr := os.Stat(filepath.Join(dir, "gqlgen.yml"))
	assert.True(t, os.IsNotExist(statErr), "config is untouched")
}

func TestGenerateSDKInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(schemaPath, []byte(Print(buildSchema(t, contactShape))), 0o644))
	docs := filepath.Join(dir, "documents")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "q.graphql"), []byte(`{ unknown }`), 0o644))

	err := GenerateSDK(SDKOptions{
		ConfigPath: filepath.Join(dir, "gqlgen.yml"),
		SchemaPath: schemaPath,
		Documents:  docs,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestWriteGQLGenConfig(t *testing.T) {
	t.Run("schema relative to the config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "api", "gqlgen.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
		require.NoError(t, os.WriteFile(configPath, []byte(`
models:
  Time:
    model: github.com/99designs/gqlgen/graphql.Time
`), 0o644))

		path, err := writeGQLGenConfig(SDKOptions{
			ConfigPath: configPath,
			SchemaPath: filepath.Join(dir, "graphql", "schema.graphqls"),
			Autobind:   []string{"github.com/org/app/model", "github.com/org/app/model"},
			Models: map[string][]string{
				"ID": {"github.com/99designs/gqlgen/graphql.ID", "github.com/99designs/gqlgen/graphql.IntID"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, configPath, path)

		cfg, err := LoadGQLGenConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, StringList{"../graphql/schema.graphqls"}, cfg.SchemaFilename)
		assert.Equal(t, []string{"github.com/org/app/model"}, cfg.Autobind)
		assert.Equal(t, StringList{
			"github.com/99designs/gqlgen/graphql.ID",
			"github.com/99designs/gqlgen/graphql.IntID",
		}, cfg.Models["ID"].Model)
		assert.Equal(t, StringList{"github.com/99designs/gqlgen/graphql.Time"}, cfg.Models["Time"].Model)
		assert.True(t, cfg.Directives["is"].SkipRuntime)
	})

	t.Run("relative paths resolve against the working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		path, err := writeGQLGenConfig(SDKOptions{
			ConfigPath: "gqlgen.yml",
			SchemaPath: filepath.Join("src", "schema.graphqls"),
		})
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path))
		assert.Equal(t, "gqlgen.yml", filepath.Base(path))

		cfg, err := LoadGQLGenConfig(path)
		require.NoError(t, err)
		assert.Equal(t, StringList{"src/schema.graphqls"}, cfg.SchemaFilename)
		assert.Equal(t, "generated/generated.go", cfg.Exec.Filename)
	})
}

func TestChdir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()

	restore, err := chdir(dir)
	require.NoError(t, err)
	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), filepath.Base(got))

	restore()
	got, err = os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, got)

	_, err = chdir(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "enter gqlgen config directory")
}
