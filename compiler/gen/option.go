package gen

import (
	"errors"
	"log/slog"

	"github.com/syssam/sdx/rdf"
)

// Built-in GraphQL scalar names.
const (
	ScalarString  = "String"
	ScalarInt     = "Int"
	ScalarFloat   = "Float"
	ScalarBoolean = "Boolean"
	ScalarID      = "ID"
)

// Default root operation type names.
const (
	DefaultQueryName    = "Query"
	DefaultMutationName = "Mutation"
)

// Config holds the settings of one schema generation run.
type Config struct {
	// Logger receives debug output about dropped properties.
	Logger *slog.Logger

	// Datatypes maps a datatype IRI to the scalar it is rendered as.
	// Properties whose datatype is missing from the table are dropped.
	Datatypes map[string]string

	// PluralCollections names collection queries by pluralizing the type
	// name ("contacts") instead of adding the "Collection" suffix.
	PluralCollections bool

	// QueryName and MutationName name the root operation types.
	QueryName    string
	MutationName string

	// Converter turns a shape into its object type. Defaults to ObjectType.
	Converter TypeConverter
}

// DefaultDatatypes returns the datatype table used when no WithDatatype
// option overrides an entry.
func DefaultDatatypes() map[string]string {
	return map[string]string{
		string(rdf.XSDString):  ScalarString,
		string(rdf.LangString): ScalarString,
		string(rdf.XSDInt):     ScalarInt,
		string(rdf.XSDFloat):   ScalarFloat,
		string(rdf.XSDBoolean): ScalarBoolean,
	}
}

// Option configures schema generation.
type Option func(*Config) error

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithDatatype maps the datatype IRI to one of the built-in scalars.
// For example:
//
//	gen.WithDatatype("http://www.w3.org/2001/XMLSchema#integer", gen.ScalarInt)
func WithDatatype(iri, scalar string) Option {
	return func(c *Config) error {
		if iri == "" {
			return NewConfigError("Datatype", nil, "datatype IRI cannot be empty")
		}
		if !IsBuiltinScalar(scalar) {
			return NewConfigError("Datatype", scalar, "unsupported scalar; use String, Int, Float, Boolean, or ID")
		}
		if c.Datatypes == nil {
			c.Datatypes = make(map[string]string)
		}
		c.Datatypes[iri] = scalar
		return nil
	}
}

// WithDatatypes merges the table into the datatype table. Every invalid
// entry is reported.
func WithDatatypes(table map[string]string) Option {
	return func(c *Config) error {
		var errs []error
		for iri, scalar := range table {
			if err := WithDatatype(iri, scalar)(c); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// WithPluralCollections names collection queries with the plural form of
// the type name.
func WithPluralCollections() Option {
	return func(c *Config) error {
		c.PluralCollections = true
		return nil
	}
}

// WithRootNames sets the names of the root query and mutation types.
func WithRootNames(query, mutation string) Option {
	return func(c *Config) error {
		if !IsValidName(query) {
			return NewConfigError("QueryName", query, "invalid type name")
		}
		if !IsValidName(mutation) {
			return NewConfigError("MutationName", mutation, "invalid type name")
		}
		if query == mutation {
			return NewConfigError("MutationName", mutation, "must differ from the query type name")
		}
		c.QueryName, c.MutationName = query, mutation
		return nil
	}
}

// WithTypeConverter sets the function that turns a shape into its object
// type.
func WithTypeConverter(fn TypeConverter) Option {
	return func(c *Config) error {
		if fn == nil {
			return NewConfigError("Converter", nil, "converter cannot be nil")
		}
		c.Converter = fn
		return nil
	}
}

// ApplyAll applies every option and joins the errors of the failing ones.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a Config with the defaults and the given options.
// The returned error reports every option that failed.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Logger:       slog.Default(),
		Datatypes:    DefaultDatatypes(),
		QueryName:    DefaultQueryName,
		MutationName: DefaultMutationName,
		Converter:    ObjectType,
	}
	if err := c.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
