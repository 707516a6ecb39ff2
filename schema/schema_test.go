package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndValidate(t *testing.T) {
	s, err := Compile(Object(map[string]*Property{
		"query": String("Search query"),
		"limit": Integer("Max results").Min(1).Max(100),
	}, "query"))
	require.NoError(t, err)

	t.Run("valid params", func(t *testing.T) {
		err := s.Validate(map[string]any{"query": "golang", "limit": float64(10)})
		assert.NoError(t, err)
	})

	t.Run("missing required", func(t *testing.T) {
		err := s.Validate(map[string]any{"limit": float64(10)})
		require.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := s.Validate(map[string]any{"query": float64(42)})
		assert.Error(t, err)
	})

	t.Run("out of range", func(t *testing.T) {
		err := s.Validate(map[string]any{"query": "x", "limit": float64(1000)})
		assert.Error(t, err)
	})
}

func TestCompileNilSchemaAcceptsEverything(t *testing.T) {
	s, err := Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, s.Validate(map[string]any{"anything": true}))
}

func TestValidateNilParams(t *testing.T) {
	s, err := Compile(Object(map[string]*Property{
		"name": String("Optional name"),
	}))
	require.NoError(t, err)

	assert.NoError(t, s.Validate(nil))
}

func TestMustCompilePanicsOnBadSchema(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile(map[string]any{"type": 12345})
	})
}

func TestEnumValidation(t *testing.T) {
	s, err := Compile(Object(map[string]*Property{
		"sort": String("Sort order").Enum("asc", "desc"),
	}))
	require.NoError(t, err)

	assert.NoError(t, s.Validate(map[string]any{"sort": "asc"}))
	assert.Error(t, s.Validate(map[string]any{"sort": "sideways"}))
}

func TestFlattenOrdering(t *testing.T) {
	raw := Object(map[string]*Property{
		"zeta":  String("Optional z"),
		"alpha": String("Optional a"),
		"query": String("The query"),
		"limit": Integer("Max results"),
	}, "query", "limit")

	params := Flatten(raw)
	require.Len(t, params, 4)

	// Required first, alphabetical within each group.
	assert.Equal(t, "limit", params[0].Name)
	assert.True(t, params[0].Required)
	assert.Equal(t, "query", params[1].Name)
	assert.True(t, params[1].Required)
	assert.Equal(t, "alpha", params[2].Name)
	assert.False(t, params[2].Required)
	assert.Equal(t, "zeta", params[3].Name)
	assert.False(t, params[3].Required)

	assert.Equal(t, "integer", params[0].Type)
	assert.Equal(t, "Max results", params[0].Description)
}

func TestFlattenEmptySchema(t *testing.T) {
	assert.Nil(t, Flatten(nil))
	assert.Nil(t, Flatten(map[string]any{"type": "object"}))
}
