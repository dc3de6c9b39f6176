package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadPlan decodes a plan document from r.
//
// ReadPlan returns an error if:
//   - The JSON is malformed
//   - The version marker does not match [FormatVersion]
//   - The options object is missing or fails validation
//
// Option validation is re-run on import so a hand-edited document is held
// to the same rules as options built in code. The result object may be nil
// for documents that only carry options (for example, a request template).
//
// The returned document is independent of r and can be modified safely
// after ReadPlan returns. ReadPlan does not close r.
func ReadPlan(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported plan version %d (want %d)", doc.Version, FormatVersion)
	}
	if doc.Options == nil {
		return nil, fmt.Errorf("plan document has no options")
	}
	if err := doc.Options.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	return &doc, nil
}

// ImportPlan reads a JSON file at path and returns the decoded document.
//
// ImportPlan opens the file, decodes it using [ReadPlan], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportPlan(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}
