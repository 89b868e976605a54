// Package series defines the data containers shared by every single-series
// pipeline in serin: the raw input variants a caller may supply, and the
// canonical containers estimators operate on internally.
//
// Containers:
//
//   - Dense — the canonical (nTimepoints × nChannels) numeric container.
//     Row-major flat storage; rows are timepoints, columns are channels.
//     This is the only shape downstream algorithms ever see.
//   - Frame — a labeled tabular container: named channels over the same
//     Dense storage, with an optional timestamp index.
//   - Input — a tagged variant of everything a caller may pass in:
//     a 1-D vector, a 2-D table of rows, or a Frame. Dispatch over Input
//     is an exhaustive switch on Input.Kind, so adding a new variant is a
//     compile-visible change, not a runtime surprise.
//
// Orientation is declared per call with Axis:
//
//	TimeFirst  — rows are timepoints, columns are channels.
//	TimeSecond — rows are channels, columns are timepoints.
//
// One-dimensional data has no orientation ambiguity; Axis only matters for
// two-dimensional input.
//
// Errors:
//
//	ErrBadShape       - requested container dimensions are not >= 1.
//	ErrOutOfRange     - row or column index outside valid bounds.
//	ErrEmptyInput     - input holds no values.
//	ErrRaggedTable    - 2-D table rows differ in length.
//	ErrLengthMismatch - channel names or index do not match the data shape.
//	ErrUnknownChannel - named channel not present in a Frame.
package series
