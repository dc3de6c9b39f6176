// Package io provides JSON import and export for layout plans.
//
// # Overview
//
// A plan document bundles the options that produced a layout together with
// the computed result. The format is designed for:
//
//   - Piping plans between commands (fit, validate, render)
//   - Archiving layouts alongside the thumbnails they describe
//   - Re-validating a stored plan against updated zone definitions
//
// # JSON Format
//
// The document has a version marker and two required objects:
//
//	{
//	  "version": 1,
//	  "created_at": "2025-06-01T12:00:00Z",
//	  "options": { "text": "NEW SEASON", "width": 1280, ... },
//	  "result":  { "text": { "font_size": 96, ... }, "logos": [...] }
//	}
//
// The options object carries only the wire fields of
// [github.com/matzehuels/framefit/pkg/pipeline.Options]; runtime fields
// such as loggers and decoded images are never serialized.
//
// # Import
//
// Use [ImportPlan] to read a document from a file path, or [ReadPlan] to
// read from any io.Reader. Both validate the version marker and re-run
// option validation so a hand-edited document cannot smuggle in values
// the engine would have rejected.
//
// # Export
//
// Use [ExportPlan] to write a document to a file, or [WritePlan] to write
// to any io.Writer. Output is indented for diff-friendly storage.
package io
