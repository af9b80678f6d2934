package graphql

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/99designs/gqlgen/api"
	"github.com/99designs/gqlgen/codegen/config"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// DocumentPattern matches query documents below the documents directory.
const DocumentPattern = "**/*.graphql"

// FindDocuments returns the query documents below dir, in lexical order.
// A missing directory yields no documents.
func FindDocuments(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	matches, err := doublestar.Glob(os.DirFS(dir), DocumentPattern)
	if err != nil {
		return nil, fmt.Errorf("find documents in %s: %w", dir, err)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	return paths, nil
}

// ParseSchema parses printed SDL into the gqlparser object model.
func ParseSchema(name, sdl string) (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: name, Input: sdl})
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}
	return schema, nil
}

// ValidateDocuments checks every query document against the schema.
func ValidateDocuments(schema *ast.Schema, paths []string) error {
	var errs []error
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("read document: %w", err))
			continue
		}
		if _, list := gqlparser.LoadQuery(schema, string(data)); len(list) > 0 {
			errs = append(errs, fmt.Errorf("document %s: %w", path, list))
		}
	}
	return errors.Join(errs...)
}

// SDKOptions configures GenerateSDK.
type SDKOptions struct {
	// ConfigPath is the gqlgen.yml to update and generate from.
	ConfigPath string
	// SchemaPath is the printed schema file.
	SchemaPath string
	// Documents is the directory holding query documents.
	Documents string
	// Autobind lists Go packages gqlgen binds models from.
	Autobind []string
	// Models maps GraphQL type names to the Go types bound to them.
	Models map[string][]string
	Logger *slog.Logger
}

// GenerateSDK registers the schema in the gqlgen configuration, validates
// the query documents against it and runs gqlgen from the directory of the
// configuration file.
func GenerateSDK(opts SDKOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sdl, err := os.ReadFile(opts.SchemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	schema, err := ParseSchema(opts.SchemaPath, string(sdl))
	if err != nil {
		return err
	}
	docs, err := FindDocuments(opts.Documents)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		logger.Warn("no query documents found", slog.String("dir", opts.Documents))
	}
	if err := ValidateDocuments(schema, docs); err != nil {
		return err
	}

	path, err := writeGQLGenConfig(opts)
	if err != nil {
		return err
	}
	// gqlgen resolves the paths of gqlgen.yml against the working directory.
	restore, err := chdir(filepath.Dir(path))
	if err != nil {
		return err
	}
	defer restore()
	cfg, err := config.LoadConfig(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("load gqlgen config: %w", err)
	}
	if err := api.Generate(cfg); err != nil {
		return fmt.Errorf("generate sdk: %w", err)
	}
	logger.Info("generated sdk",
		slog.String("config", path),
		slog.Int("documents", len(docs)),
	)
	return nil
}

// writeGQLGenConfig injects the schema bindings into the gqlgen
// configuration and returns its absolute path. The schema is recorded
// relative to the configuration file.
func writeGQLGenConfig(opts SDKOptions) (string, error) {
	path, err := filepath.Abs(opts.ConfigPath)
	if err != nil {
		return "", fmt.Errorf("resolve gqlgen config: %w", err)
	}
	schemaPath, err := filepath.Abs(opts.SchemaPath)
	if err != nil {
		return "", fmt.Errorf("resolve schema: %w", err)
	}
	rel, err := filepath.Rel(filepath.Dir(path), schemaPath)
	if err != nil {
		return "", fmt.Errorf("resolve schema: %w", err)
	}

	gqlcfg, err := LoadGQLGenConfig(path)
	if err != nil {
		return "", err
	}
	gqlcfg.InjectSchemaBindings(filepath.ToSlash(rel))
	for _, pkg := range opts.Autobind {
		gqlcfg.AddAutobind(pkg)
	}
	for _, name := range slices.Sorted(maps.Keys(opts.Models)) {
		for _, model := range opts.Models[name] {
			gqlcfg.SetModel(name, model)
		}
	}
	if err := SaveGQLGenConfig(path, gqlcfg); err != nil {
		return "", err
	}
	return path, nil
}

func chdir(dir string) (func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("enter gqlgen config directory: %w", err)
	}
	return func() { _ = os.Chdir(wd) }, nil
}
