// Package compiler runs the shape to schema pipeline end to end.
//
// A run loads the shape documents below Options.Source, builds the GraphQL
// schema, prints it and writes it to Options.Schema:
//
//	res, err := compiler.Generate(ctx, compiler.Options{
//	    Source: "src/.sdx-gen/shacl",
//	    Schema: "src/.sdx-gen/graphql/schema.graphqls",
//	    Ignore: []string{"index.json"},
//	})
//
// When the source is missing or holds no shapes the previously written
// schema is removed and Generate reports Result.Removed instead of an error.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/syssam/sdx"
	"github.com/syssam/sdx/compiler/gen"
	"github.com/syssam/sdx/compiler/load"
	"github.com/syssam/sdx/contrib/graphql"
	"github.com/syssam/sdx/rdf"
)

// DefaultDebounce is the quiet period Watch waits for before regenerating.
const DefaultDebounce = 200 * time.Millisecond

// Options configures a generate run.
type Options struct {
	// Source is a shape document or a directory of shape documents.
	Source string
	// Schema is the path the printed schema is written to.
	Schema string
	// Ignore lists entry names skipped while walking Source.
	Ignore []string
	// IgnorePatterns lists doublestar patterns, relative to Source, that are
	// skipped while walking it.
	IgnorePatterns []string
	// Gen holds extra options for schema synthesis.
	Gen []gen.Option
	// Print holds options for the SDL printer.
	Print []graphql.PrintOption
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Debounce is used by Watch. Zero means DefaultDebounce.
	Debounce time.Duration
}

// Result describes the outcome of one run.
type Result struct {
	// Schema is nil when the output was removed.
	Schema *gen.Schema
	// SDL is the printed schema text.
	SDL string
	// Path is the schema file that was written or removed.
	Path string
	// Removed is set when the source held no shapes.
	Removed bool
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) validate() error {
	if o.Source == "" {
		return gen.NewConfigError("Source", nil, "source path is required")
	}
	if o.Schema == "" {
		return gen.NewConfigError("Schema", nil, "schema path is required")
	}
	return nil
}

// Generate compiles the shapes below opts.Source and writes the schema.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := opts.logger()
	if _, err := os.Stat(opts.Source); errors.Is(err, os.ErrNotExist) {
		logger.Debug("shape source does not exist", slog.String("path", opts.Source))
		return remove(opts.Schema, logger)
	}

	src, err := load.Load(ctx, opts.Source,
		load.WithIgnore(opts.Ignore...),
		load.WithIgnorePatterns(opts.IgnorePatterns...),
		load.WithLogger(logger),
	)
	if sdx.IsNoShapes(err) {
		return remove(opts.Schema, logger)
	}
	if err != nil {
		return nil, err
	}

	c, err := gen.NewContext(rdf.NewIndex(src.Quads()), append([]gen.Option{gen.WithLogger(logger)}, opts.Gen...)...)
	if sdx.IsNoShapes(err) {
		return remove(opts.Schema, logger)
	}
	if err != nil {
		return nil, err
	}
	schema, err := gen.Build(c)
	if err != nil {
		return nil, err
	}
	sdl := graphql.Print(schema, opts.Print...)

	if err := os.MkdirAll(filepath.Dir(opts.Schema), 0o755); err != nil {
		return nil, fmt.Errorf("create schema directory: %w", err)
	}
	if err := os.WriteFile(opts.Schema, []byte(sdl), 0o644); err != nil {
		return nil, fmt.Errorf("write schema: %w", err)
	}
	logger.Info("generated schema",
		slog.String("path", opts.Schema),
		slog.Int("documents", len(src.Documents)),
		slog.Int("shapes", len(c.Shapes)),
	)
	return &Result{Schema: schema, SDL: sdl, Path: opts.Schema}, nil
}

func remove(path string, logger *slog.Logger) (*Result, error) {
	err := os.Remove(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debug("no shapes and no schema to remove", slog.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("remove schema: %w", err)
	default:
		logger.Info("removed schema", slog.String("path", path))
	}
	return &Result{Path: path, Removed: true}, nil
}
