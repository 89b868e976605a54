package series

import (
	"fmt"
	"strings"
)

// Dense is the canonical two-dimensional numeric container.
// Rows are timepoints, columns are channels, and data holds rows*cols
// elements in row-major order for cache friendliness.
type Dense struct {
	rows, cols int       // canonical shape, both >= 1
	data       []float64 // flat backing storage, length == rows*cols
}

// NewDense creates a rows×cols Dense initialized to zeros.
// Returns ErrBadShape unless rows and cols are both >= 1.
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromVector builds an (n × 1) Dense from a 1-D sequence, copying values.
// Returns ErrEmptyInput when v holds no values.
func FromVector(v []float64) (*Dense, error) {
	if len(v) == 0 {
		return nil, ErrEmptyInput
	}
	data := make([]float64, len(v))
	copy(data, v)

	return &Dense{rows: len(v), cols: 1, data: data}, nil
}

// FromRows builds a Dense from a 2-D table, copying values row by row.
// Every row must have the same non-zero length; returns ErrEmptyInput for
// zero rows or zero-width rows, ErrRaggedTable when row lengths differ.
func FromRows(table [][]float64) (*Dense, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(table[0])
	data := make([]float64, 0, len(table)*cols)
	for _, row := range table {
		if len(row) != cols {
			return nil, ErrRaggedTable
		}
		data = append(data, row...)
	}

	return &Dense{rows: len(table), cols: cols, data: data}, nil
}

// Rows returns the number of timepoints.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of channels.
func (d *Dense) Cols() int { return d.cols }

// Kind reports KindDense.
func (d *Dense) Kind() Kind { return KindDense }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*d.cols + col, nil
}

// At returns the value at (row, col), or ErrOutOfRange.
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Row returns a copy of timepoint row across all channels.
func (d *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= d.rows {
		return nil, fmt.Errorf("Dense.Row(%d): %w", row, ErrOutOfRange)
	}
	out := make([]float64, d.cols)
	copy(out, d.data[row*d.cols:(row+1)*d.cols])

	return out, nil
}

// Col returns a copy of channel col across all timepoints.
func (d *Dense) Col(col int) ([]float64, error) {
	if col < 0 || col >= d.cols {
		return nil, fmt.Errorf("Dense.Col(%d): %w", col, ErrOutOfRange)
	}
	out := make([]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		out[i] = d.data[i*d.cols+col]
	}

	return out, nil
}

// Values returns the contents as a fresh [][]float64, one slice per timepoint.
func (d *Dense) Values() [][]float64 {
	out := make([][]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		row := make([]float64, d.cols)
		copy(row, d.data[i*d.cols:(i+1)*d.cols])
		out[i] = row
	}

	return out
}

// Transpose returns a new Dense with rows and columns swapped.
// The receiver is left untouched.
func (d *Dense) Transpose() *Dense {
	out := &Dense{rows: d.cols, cols: d.rows, data: make([]float64, len(d.data))}
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			out.data[j*out.cols+i] = d.data[i*d.cols+j]
		}
	}

	return out
}

// Clone returns a deep copy of the Dense.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)

	return &Dense{rows: d.rows, cols: d.cols, data: data}
}

// Equal reports whether d and other have identical shape and values.
func (d *Dense) Equal(other *Dense) bool {
	if other == nil || d.rows != other.rows || d.cols != other.cols {
		return false
	}
	for i, v := range d.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < d.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", d.data[i*d.cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
