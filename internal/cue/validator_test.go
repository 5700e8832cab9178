package cue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator()
	require.NoError(t, v.LoadSchemas())
	return v
}

func TestLoadSchemas(t *testing.T) {
	v := NewValidator()
	err := v.LoadSchemas()
	require.NoError(t, err)
	assert.Contains(t, v.schemas, "weights")
}

func TestValidateWeightsValid(t *testing.T) {
	v := newLoadedValidator(t)

	issues, err := v.ValidateWeights(map[string]any{
		"./package.json": 40,
		"node_modules":   -100,
		"*cache*/":       int64(-50),
	})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateWeightsEmpty(t *testing.T) {
	v := newLoadedValidator(t)

	issues, err := v.ValidateWeights(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateWeightsRejectsNonInteger(t *testing.T) {
	v := newLoadedValidator(t)

	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"string value", map[string]any{"a": "forty"}},
		{"float value", map[string]any{"a": 1.5}},
		{"bool value", map[string]any{"a": true}},
		{"nested object", map[string]any{"a": map[string]any{"b": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := v.ValidateWeights(tt.doc)
			require.NoError(t, err)
			require.NotEmpty(t, issues, "expected a validation issue")
			assert.Equal(t, "error", issues[0].Severity)
		})
	}
}

func TestValidateWeightsWithoutSchemas(t *testing.T) {
	v := NewValidator()
	_, err := v.ValidateWeights(map[string]any{"a": 1})
	assert.Error(t, err)
}
