package adapter

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

//go:embed schema/answers.schema.json
var answersSchemaBytes []byte

const answersSchemaName = "answers.schema.json"

var (
	answersSchema     *jsonschema.Schema
	answersSchemaOnce sync.Once
	answersSchemaErr  error
	printer           = message.NewPrinter(language.English)
)

// AnswersStore persists prompt answers so a run can be repeated without
// interaction.
type AnswersStore interface {
	// LoadAnswers reads and validates an answers file. Keys absent from the
	// file are absent from the map.
	LoadAnswers(ctx context.Context, path m.Path) (map[string]string, error)

	// SaveAnswers writes vars in the format LoadAnswers reads.
	SaveAnswers(ctx context.Context, path m.Path, vars m.Variables) error
}

// YAMLAnswersStore stores answers as YAML on a SourceFSAdapter.
type YAMLAnswersStore struct {
	fs SourceFSAdapter
}

// NewYAMLAnswersStore constructs a YAMLAnswersStore.
func NewYAMLAnswersStore(fs SourceFSAdapter) *YAMLAnswersStore {
	return &YAMLAnswersStore{fs: fs}
}

// LoadAnswers reads path and checks it against the answers schema.
func (s *YAMLAnswersStore) LoadAnswers(ctx context.Context, path m.Path) (map[string]string, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &serrors.IOError{Op: "read answers", Path: string(path), Cause: err}
	}

	if err := ValidateAnswers(data); err != nil {
		return nil, err
	}

	answers := map[string]string{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, serrors.NewValidationError("", fmt.Sprintf("parsing %s: %v", path, err))
	}

	return answers, nil
}

// SaveAnswers writes vars to path as YAML.
func (s *YAMLAnswersStore) SaveAnswers(ctx context.Context, path m.Path, vars m.Variables) error {
	data, err := yaml.Marshal(vars)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	if err := s.fs.WriteFile(ctx, path, data, 0o644); err != nil {
		return &serrors.IOError{Op: "write answers", Path: string(path), Cause: err}
	}

	return nil
}

func getAnswersSchema() (*jsonschema.Schema, error) {
	answersSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(answersSchemaBytes))
		if err != nil {
			answersSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(answersSchemaName, doc); err != nil {
			answersSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}

		answersSchema, answersSchemaErr = c.Compile(answersSchemaName)
		if answersSchemaErr != nil {
			answersSchemaErr = fmt.Errorf("compiling schema: %w", answersSchemaErr)
		}
	})

	return answersSchema, answersSchemaErr
}

// ValidateAnswers checks raw YAML against the answers schema. The first
// violation is returned as a ValidationError naming the offending key.
func ValidateAnswers(data []byte) error {
	schema, err := getAnswersSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return serrors.NewValidationError("", fmt.Sprintf("parsing YAML: %v", err))
	}

	if raw == nil {
		raw = map[string]any{}
	}

	// Round-trip through JSON so the validator sees JSON-compatible values.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return serrors.NewValidationError("", fmt.Sprintf("converting to JSON: %v", err))
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}

	field, msg := firstLeaf(ve)

	return serrors.NewValidationError(field, msg)
}

func firstLeaf(ve *jsonschema.ValidationError) (string, string) {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	msg := ve.Error()
	if ve.ErrorKind != nil {
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	return strings.Join(ve.InstanceLocation, "."), msg
}
