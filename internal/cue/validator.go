// Package cue validates weight documents against embedded CUE schemas.
package cue

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a schema validation failure
type ValidationError struct {
	Field    string
	Message  string
	Severity string // error, warning
}

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas loads all CUE schema files from the embedded filesystem
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}

		// weights.cue -> weights
		schemaName := strings.TrimSuffix(entry.Name(), ".cue")
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateWeights validates a decoded weights document against the #Weights
// schema: a flat object whose values are all integers.
func (v *Validator) ValidateWeights(data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["weights"]
	if !ok {
		return nil, fmt.Errorf("weights schema not loaded")
	}
	return v.validateAgainstSchema(schema, data, "Weights")
}

// validateAgainstSchema unifies data with the named #Definition in a schema
// and reports any conflicts as validation errors.
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, defName string) ([]ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath("#" + defName))
	if !def.Exists() {
		return nil, fmt.Errorf("schema definition #%s not found", defName)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrorsFromCUE(err), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrorsFromCUE(err), nil
	}

	return nil, nil
}

// extractErrorsFromCUE converts CUE errors into validation errors
func extractErrorsFromCUE(err error) []ValidationError {
	return []ValidationError{{
		Message:  fmt.Sprintf("schema validation failed: %v", err),
		Severity: "error",
	}}
}
