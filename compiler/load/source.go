// Package load reads SHACL shape documents from a file or a directory tree
// into RDF statements.
package load

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cayleygraph/quad"

	"github.com/syssam/sdx"
	"github.com/syssam/sdx/rdf"
)

// Document is one parsed shape document.
type Document struct {
	// Path of the document as it was visited.
	Path string
	// Format the document was decoded with.
	Format rdf.Format
	// Quads holds the statements of the document, with blank nodes
	// scoped to this document.
	Quads []quad.Quad
}

// Source holds every document that was read for one run, in visit order.
type Source struct {
	Root      string
	Documents []*Document
}

// Quads returns the statements of all documents, in visit order.
func (s *Source) Quads() []quad.Quad {
	var n int
	for _, d := range s.Documents {
		n += len(d.Quads)
	}
	quads := make([]quad.Quad, 0, n)
	for _, d := range s.Documents {
		quads = append(quads, d.Quads...)
	}
	return quads
}

// SourceError is returned when a document cannot be read or decoded.
type SourceError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("sdx: load %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Option configures Load.
type Option func(*loader) error

// WithIgnore skips files and directories whose name equals one of names.
func WithIgnore(names ...string) Option {
	return func(l *loader) error {
		l.ignore = append(l.ignore, names...)
		return nil
	}
}

// WithIgnorePatterns skips files and directories whose slash separated path,
// relative to the root, matches one of the doublestar patterns.
func WithIgnorePatterns(patterns ...string) Option {
	return func(l *loader) error {
		for _, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				return fmt.Errorf("sdx: invalid ignore pattern %q", p)
			}
		}
		l.patterns = append(l.patterns, patterns...)
		return nil
	}
}

// WithLogger sets the logger used to report skipped entries.
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) error {
		if logger == nil {
			return errors.New("sdx: logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

type loader struct {
	root     string
	ignore   []string
	patterns []string
	logger   *slog.Logger
	docs     []*Document
}

// Load reads the document at path, or every document below it when path is
// a directory. Directories are walked depth-first in name order, one entry
// at a time. The context is only consulted between documents.
//
// Load returns an error wrapping sdx.ErrNoShapes if no document was found.
func Load(ctx context.Context, path string, opts ...Option) (*Source, error) {
	l := &loader{root: path, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, &SourceError{Path: path, Cause: err}
	}
	if !l.skip(path) {
		if err := l.visit(ctx, path); err != nil {
			return nil, err
		}
	}
	if len(l.docs) == 0 {
		return nil, fmt.Errorf("load %s: %w", path, sdx.ErrNoShapes)
	}
	return &Source{Root: path, Documents: l.docs}, nil
}

func (l *loader) visit(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &SourceError{Path: path, Cause: err}
	}
	if !info.IsDir() {
		return l.read(ctx, path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return &SourceError{Path: path, Cause: err}
	}
	for _, e := range entries {
		child := filepath.Join(path, e.Name())
		if l.skip(child) {
			l.logger.Debug("skipping ignored entry", slog.String("path", child))
			continue
		}
		if err := l.visit(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) read(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return &SourceError{Path: path, Cause: err}
	}
	defer f.Close()

	format := rdf.FormatFromPath(path)
	scope := fmt.Sprintf("d%d/", len(l.docs))
	quads, err := rdf.Decode(f, format, scope)
	if err != nil {
		return &SourceError{Path: path, Cause: err}
	}
	l.logger.Debug("read shape document",
		slog.String("path", path),
		slog.String("format", format.String()),
		slog.Int("statements", len(quads)),
	)
	l.docs = append(l.docs, &Document{Path: path, Format: format, Quads: quads})
	return nil
}

func (l *loader) skip(path string) bool {
	if slices.Contains(l.ignore, filepath.Base(path)) || slices.Contains(l.ignore, path) {
		return true
	}
	if len(l.patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(l.root, path)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range l.patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
