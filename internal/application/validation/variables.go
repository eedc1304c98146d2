// Package validation checks job variables against a JSON Schema derived from the
// configured segment keys before any decoding takes place.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AaronStockburger/job-worker/internal/application/dto"
	"github.com/AaronStockburger/job-worker/internal/domain/model"
)

const schemaURL = "job-variables.schema.json"

var defaultPrinter = message.NewPrinter(language.English)

// VariablesValidator validates the variables map of a risk analysis job.
type VariablesValidator struct {
	schema *jsonschema.Schema
}

// NewVariablesValidator compiles the variables schema for the given segment keys.
func NewVariablesValidator(segmentKeys []string) (*VariablesValidator, error) {
	if len(segmentKeys) == 0 {
		return nil, fmt.Errorf("at least one segment key is required")
	}

	raw, err := json.Marshal(buildSchema(segmentKeys))
	if err != nil {
		return nil, fmt.Errorf("encoding variables schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing variables schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding variables schema: %w", err)
	}
	sch, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling variables schema: %w", err)
	}

	return &VariablesValidator{schema: sch}, nil
}

func buildSchema(segmentKeys []string) map[string]any {
	selector := map[string]any{"type": []string{"string", "null"}}
	properties := map[string]any{
		dto.VarAnalysisMode:     selector,
		dto.VarAnalysisDecision: selector,
	}
	required := make([]string, 0, len(segmentKeys)*4)

	for _, key := range segmentKeys {
		fields := map[string]map[string]any{
			dto.FieldWeather:      {"type": "string", "minLength": 1},
			dto.FieldIncidents:    {"type": "integer", "minimum": 0},
			dto.FieldCurrentLoad:  {"type": "number", "minimum": 0},
			dto.FieldExpectedLoad: {"type": "number", "minimum": 0},
		}
		for field, schema := range fields {
			name := dto.SegmentVariableName(key, field)
			properties[name] = schema
			required = append(required, name)
		}
	}
	slices.Sort(required)

	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// Validate checks vars against the schema. Violations are reported as a single
// ErrInvalidInput listing every offending location in a stable order.
func (v *VariablesValidator) Validate(vars map[string]any) error {
	var instance any = vars
	if vars == nil {
		instance = map[string]any{}
	}

	err := v.schema.Validate(instance)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	var errs []string
	collectSchemaErrors(ve, &errs)
	slices.Sort(errs)
	return fmt.Errorf("%w: %s", model.ErrInvalidInput, strings.Join(errs, "; "))
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}
