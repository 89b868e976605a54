// Package series: axis and container-kind enumerations, the Container
// interface, and the sentinel error set.
package series

import "errors"

// Sentinel errors for container construction and access.
var (
	// ErrBadShape indicates that requested container dimensions are not >= 1.
	ErrBadShape = errors.New("series: rows and cols must be >= 1")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("series: index out of range")

	// ErrEmptyInput indicates that a supplied input holds no values.
	ErrEmptyInput = errors.New("series: empty input")

	// ErrRaggedTable indicates that the rows of a 2-D table differ in length.
	ErrRaggedTable = errors.New("series: ragged table rows")

	// ErrLengthMismatch indicates that channel names or a timestamp index
	// disagree with the shape of the underlying data.
	ErrLengthMismatch = errors.New("series: length mismatch")

	// ErrUnknownChannel indicates a Frame lookup by a name that is not present.
	ErrUnknownChannel = errors.New("series: unknown channel name")
)

// Axis declares which physical dimension of a two-dimensional input
// represents time.
//
//   - TimeFirst  — rows are timepoints, columns are channels; a (rows × cols)
//     input is already in canonical orientation.
//   - TimeSecond — rows are channels, columns are timepoints; a (rows × cols)
//     input is transposed into (cols × rows) canonical form.
//
// Axis is irrelevant for one-dimensional input: a vector of length n always
// normalizes to shape (n, 1) regardless of the declared axis.
type Axis int

const (
	// TimeFirst: rows are timepoints, columns are channels.
	TimeFirst Axis = iota

	// TimeSecond: rows are channels, columns are timepoints.
	TimeSecond
)

// String returns the axis name for diagnostics.
func (a Axis) String() string {
	switch a {
	case TimeFirst:
		return "TimeFirst"
	case TimeSecond:
		return "TimeSecond"
	default:
		return "Axis(?)"
	}
}

// Valid reports whether a is one of the declared axis values.
func (a Axis) Valid() bool {
	return a == TimeFirst || a == TimeSecond
}

// Kind identifies a concrete container shape, both for raw caller input
// (KindVector, KindTable, KindFrame) and for the inner representation an
// estimator is configured to operate on (KindDense, KindFrame).
//
// The zero value KindInvalid never describes real data; classification
// rejects it.
type Kind int

const (
	// KindInvalid is the zero value; it never describes usable data.
	KindInvalid Kind = iota

	// KindVector is a plain 1-D numeric sequence ([]float64).
	KindVector

	// KindTable is a plain 2-D numeric table ([][]float64, equal-length rows).
	KindTable

	// KindFrame is a labeled tabular container (*Frame).
	KindFrame

	// KindDense is the plain canonical numeric container (*Dense).
	// It appears only as an inner-representation kind, never as raw input.
	KindDense
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindVector:
		return "Vector"
	case KindTable:
		return "Table"
	case KindFrame:
		return "Frame"
	case KindDense:
		return "Dense"
	default:
		return "Invalid"
	}
}

// Container is the read surface shared by the canonical containers.
// Both *Dense and *Frame implement it; downstream code that only needs
// shape and values accepts a Container and stays agnostic of labeling.
type Container interface {
	// Rows returns the number of timepoints.
	Rows() int

	// Cols returns the number of channels.
	Cols() int

	// At returns the value at (row, col), or ErrOutOfRange.
	At(row, col int) (float64, error)

	// Kind reports the concrete container kind.
	Kind() Kind
}
