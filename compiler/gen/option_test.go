package gen

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sdx/rdf"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig()
		require.NoError(t, err)
		assert.NotNil(t, c.Logger)
		assert.NotNil(t, c.Converter)
		assert.Equal(t, DefaultQueryName, c.QueryName)
		assert.Equal(t, DefaultMutationName, c.MutationName)
		assert.False(t, c.PluralCollections)
		assert.Equal(t, ScalarBoolean, c.Datatypes[string(rdf.XSDBoolean)])
		assert.Equal(t, ScalarString, c.Datatypes[string(rdf.LangString)])
		assert.NotContains(t, c.Datatypes, string(rdf.XSDInteger))
	})

	t.Run("every failing option is reported", func(t *testing.T) {
		c, err := NewConfig(WithLogger(nil), WithPluralCollections(), WithTypeConverter(nil))
		require.Error(t, err)
		assert.Nil(t, c)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "Logger")
		assert.Contains(t, err.Error(), "Converter")
	})
}

func TestConfigApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(WithLogger(nil), WithPluralCollections(), WithRootNames("Q", "Q"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logger")
	assert.Contains(t, err.Error(), "MutationName")
	assert.True(t, c.PluralCollections)
}

func TestWithLogger(t *testing.T) {
	c := &Config{}
	logger := slog.New(slog.DiscardHandler)
	require.NoError(t, WithLogger(logger)(c))
	assert.Same(t, logger, c.Logger)

	err := WithLogger(nil)(c)
	assert.True(t, IsConfigError(err))
}

func TestWithDatatype(t *testing.T) {
	tests := []struct {
		name    string
		iri     string
		scalar  string
		wantErr bool
	}{
		{"integer", string(rdf.XSDInteger), ScalarInt, false},
		{"double", string(rdf.XSDDouble), ScalarFloat, false},
		{"id", "http://ex.org/uuid", ScalarID, false},
		{"custom scalar", "http://ex.org/dateTime", "DateTime", true},
		{"empty iri", "", ScalarString, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithDatatype(tt.iri, tt.scalar)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scalar, c.Datatypes[tt.iri])
		})
	}

	t.Run("table", func(t *testing.T) {
		c, err := NewConfig(WithDatatypes(map[string]string{string(rdf.XSDInteger): ScalarInt}))
		require.NoError(t, err)
		assert.Equal(t, ScalarInt, c.Datatypes[string(rdf.XSDInteger)])
		assert.Equal(t, ScalarString, c.Datatypes[string(rdf.XSDString)])
	})

	t.Run("table reports every invalid entry", func(t *testing.T) {
		_, err := NewConfig(WithDatatypes(map[string]string{
			"http://ex.org/money": "Money",
			"":                    ScalarInt,
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Money")
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestWithRootNames(t *testing.T) {
	tests := []struct {
		name            string
		query, mutation string
		wantErr         bool
	}{
		{"valid", "RootQuery", "RootMutation", false},
		{"same names", "Root", "Root", true},
		{"invalid query", "root-query", "Mutation", true},
		{"reserved prefix", "Query", "__Mutation", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithRootNames(tt.query, tt.mutation)(c)
			if tt.wantErr {
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.query, c.QueryName)
			assert.Equal(t, tt.mutation, c.MutationName)
		})
	}
}
