package normalize

import "github.com/kalvessen/serin/series"

// Result is the output of one normalization call.
type Result struct {
	// Data is the canonical series converted to the configured inner
	// kind. Shape is always (nTimepoints × nChannels).
	Data series.Container

	// Meta is the derived shape record, nil unless WithMetadata was
	// given. It belongs to the caller; the pipeline keeps no copy.
	Meta *Metadata
}

// Normalize validates, reorients, and converts one raw series input into
// the canonical internal representation.
//
// Stages, in order:
//  1. Classify — dimensionality and container kind; rejects anything that
//     is not 1- or 2-D (ErrInvalidDimension) or structurally broken
//     (series.ErrEmptyInput, series.ErrRaggedTable).
//  2. reorient — 1-D becomes (n, 1) regardless of axis; 2-D is kept under
//     TimeFirst or transposed under TimeSecond. Values are never altered.
//  3. checkArity — the canonical channel count against the configured
//     capabilities (ErrUnsupportedArity and its specific causes).
//  4. toInner — container conversion to the configured inner kind
//     (ErrInnerType on unsupported targets).
//  5. captureMeta — only when WithMetadata was given.
//
// The call is pure and single-pass; concurrent calls on different inputs
// share no state. On error no output is produced.
//
// Complexity: O(rows*cols) time and memory (one copy of the data).
func Normalize(in series.Input, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	p, err := Classify(in)
	if err != nil {
		return nil, err
	}

	d, err := reorient(in, p, o.axis)
	if err != nil {
		return nil, err
	}

	if err = checkArity(d.Cols(), o.caps); err != nil {
		return nil, err
	}

	transposed := p.Dims == 2 && o.axis == series.TimeSecond
	out, err := toInner(d, in, transposed, o.inner)
	if err != nil {
		return nil, err
	}

	res := &Result{Data: out}
	if o.capture {
		res.Meta = captureMeta(d, p, o.axis)
	}

	return res, nil
}
