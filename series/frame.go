package series

import (
	"fmt"
	"time"
)

// Frame is a labeled tabular container: the same canonical (timepoints ×
// channels) storage as Dense, plus a name per channel and an optional
// timestamp index. A one-column Frame is the labeled single-series input
// variant; a multi-column Frame is a labeled 2-D table.
//
// A Frame must be built through one of the constructors below; the zero
// value has no backing storage and its methods are not usable.
type Frame struct {
	names []string    // one per channel, len == data.Cols()
	index []time.Time // optional, len == data.Rows() when present
	data  *Dense
}

// NewFrame wraps data with channel names. The Frame takes ownership of
// data; callers that keep using the Dense should pass data.Clone().
// Returns ErrLengthMismatch unless len(names) == data.Cols().
func NewFrame(names []string, data *Dense) (*Frame, error) {
	if data == nil {
		return nil, ErrBadShape
	}
	if len(names) != data.Cols() {
		return nil, fmt.Errorf("NewFrame: %d names for %d channels: %w",
			len(names), data.Cols(), ErrLengthMismatch)
	}
	held := make([]string, len(names))
	copy(held, names)

	return &Frame{names: held, data: data}, nil
}

// NewIndexedFrame wraps data with channel names and a timestamp index.
// Returns ErrLengthMismatch unless len(index) == data.Rows() in addition
// to the NewFrame name constraint.
func NewIndexedFrame(names []string, index []time.Time, data *Dense) (*Frame, error) {
	f, err := NewFrame(names, data)
	if err != nil {
		return nil, err
	}
	if len(index) != data.Rows() {
		return nil, fmt.Errorf("NewIndexedFrame: %d timestamps for %d timepoints: %w",
			len(index), data.Rows(), ErrLengthMismatch)
	}
	f.index = make([]time.Time, len(index))
	copy(f.index, index)

	return f, nil
}

// FromColumn builds a single-channel Frame from one named sequence,
// copying values. Returns ErrEmptyInput when values is empty.
func FromColumn(name string, values []float64) (*Frame, error) {
	d, err := FromVector(values)
	if err != nil {
		return nil, err
	}

	return &Frame{names: []string{name}, data: d}, nil
}

// Rows returns the number of timepoints.
func (f *Frame) Rows() int { return f.data.Rows() }

// Cols returns the number of channels.
func (f *Frame) Cols() int { return f.data.Cols() }

// Kind reports KindFrame.
func (f *Frame) Kind() Kind { return KindFrame }

// At returns the value at (row, col), or ErrOutOfRange.
func (f *Frame) At(row, col int) (float64, error) {
	return f.data.At(row, col)
}

// Names returns a copy of the channel names in column order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)

	return out
}

// Index returns a copy of the timestamp index, or nil when none was set.
func (f *Frame) Index() []time.Time {
	if f.index == nil {
		return nil
	}
	out := make([]time.Time, len(f.index))
	copy(out, f.index)

	return out
}

// Column returns a copy of the named channel, or ErrUnknownChannel.
func (f *Frame) Column(name string) ([]float64, error) {
	for j, n := range f.names {
		if n == name {
			return f.data.Col(j)
		}
	}

	return nil, fmt.Errorf("Frame.Column(%q): %w", name, ErrUnknownChannel)
}

// Data returns the backing Dense. The Dense is shared with the Frame;
// use Clone when an independent copy is needed.
func (f *Frame) Data() *Dense { return f.data }

// Clone returns a deep copy of the Frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{names: f.Names(), data: f.data.Clone()}
	out.index = f.Index()

	return out
}
