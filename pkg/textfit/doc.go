// Package textfit measures headline text and fits it into a bounding box.
//
// The package works entirely from static per-family character-ratio tables
// rather than real font rasterization: thumbnail headlines use a small set of
// well-known display fonts, and ratio-based estimation is accurate enough for
// layout while keeping the engine free of font-file I/O.
//
// The three layers build on each other:
//
//   - Metrics / MeasureWidth / MeasureBlock: character-class width estimation.
//   - SmartWordWrap: word wrapping into a bounded number of lines, with
//     long-word splitting and ellipsis truncation of overflow.
//   - AutoFit: a descending font-size search that returns the largest size
//     whose wrapped block fits the box, or a best-effort minimum-size block
//     with warnings when nothing fits.
//
// Nothing here fails because text is too long: AutoFit always returns a
// usable layout and reports shortfalls through the Warnings field.
package textfit
