// Package codec provides textual encodings of the task record list.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure codecs implement domain.TaskCodec.
var (
	_ domain.TaskCodec = JSON{}
	_ domain.TaskCodec = YAML{}
)

// New returns the codec for the given format name.
func New(format string) (domain.TaskCodec, error) {
	switch format {
	case "", domain.FormatJSON:
		return JSON{}, nil
	case domain.FormatYAML:
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrConfigInvalid, format)
	}
}

// JSON encodes records as a JSON array.
// This is the format written by the browser version of the app.
type JSON struct{}

// Encode serializes records as a JSON array.
func (JSON) Encode(records []domain.TaskRecord) (string, error) {
	if records == nil {
		records = []domain.TaskRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON array. A literal null decodes to an empty list.
// Records with mistyped fields are rejected before decoding.
func (JSON) Decode(data string) ([]domain.TaskRecord, error) {
	if err := validateJSON(data); err != nil {
		return nil, err
	}
	var records []domain.TaskRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return records, nil
}

// YAML encodes records as a YAML sequence.
// Decoding also accepts JSON arrays, so switching an existing store
// from json to yaml keeps its data readable.
type YAML struct{}

// Encode serializes records as a YAML sequence.
func (YAML) Encode(records []domain.TaskRecord) (string, error) {
	if records == nil {
		records = []domain.TaskRecord{}
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a YAML sequence.
func (YAML) Decode(data string) ([]domain.TaskRecord, error) {
	var records []domain.TaskRecord
	if err := yaml.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return records, nil
}
