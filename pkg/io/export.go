package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/framefit/pkg/pipeline"
)

// FormatVersion identifies the current plan document layout. Readers
// reject documents with a different version rather than guessing.
const FormatVersion = 1

// Document is the serialized form of a layout plan: the options that
// produced it and the result the engine computed.
type Document struct {
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"created_at"`
	Options   *pipeline.Options `json:"options"`
	Result    *pipeline.Result  `json:"result"`
}

// WritePlan encodes a plan document as JSON and writes it to w.
// The output can be re-imported with [ReadPlan] for round-trip processing.
func WritePlan(opts *pipeline.Options, result *pipeline.Result, w io.Writer) error {
	doc := Document{
		Version:   FormatVersion,
		CreatedAt: time.Now().UTC(),
		Options:   opts,
		Result:    result,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportPlan writes a plan document to a JSON file at path.
// This is a convenience wrapper around [WritePlan] for file-based output.
func ExportPlan(opts *pipeline.Options, result *pipeline.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(opts, result, f)
}
