package normalize

import "github.com/kalvessen/serin/series"

// Profile is the classification result for one raw input: its
// dimensionality, container kind, and raw shape exactly as supplied
// (before any reorientation).
type Profile struct {
	// Dims is 1 or 2; classification fails on anything else.
	Dims int

	// Kind is the raw container kind (Vector, Table, or Frame).
	Kind series.Kind

	// Rows and Cols are the raw shape. For 1-D input Rows is the length
	// and Cols is 1.
	Rows, Cols int
}

// Classify determines dimensionality, container kind, and raw shape of
// one input. The switch over input kinds is exhaustive: a new Input
// variant must be handled here or it is rejected as ErrInvalidDimension.
//
// Errors: ErrInvalidDimension for anything that is not 1- or 2-D data;
// series.ErrEmptyInput and series.ErrRaggedTable for structurally broken
// variants. Pure; no side effects.
func Classify(in series.Input) (Profile, error) {
	switch in.Kind() {
	case series.KindVector:
		v, _ := in.AsVector()
		if len(v) == 0 {
			return Profile{}, series.ErrEmptyInput
		}

		return Profile{Dims: 1, Kind: series.KindVector, Rows: len(v), Cols: 1}, nil

	case series.KindTable:
		rows, _ := in.AsTable()
		if len(rows) == 0 || len(rows[0]) == 0 {
			return Profile{}, series.ErrEmptyInput
		}
		cols := len(rows[0])
		for _, r := range rows {
			if len(r) != cols {
				return Profile{}, series.ErrRaggedTable
			}
		}

		return Profile{Dims: 2, Kind: series.KindTable, Rows: len(rows), Cols: cols}, nil

	case series.KindFrame:
		f, _ := in.AsFrame()
		if f == nil {
			return Profile{}, series.ErrEmptyInput
		}
		p := Profile{Kind: series.KindFrame, Rows: f.Rows(), Cols: f.Cols()}
		// A one-column labeled table is semantically one-dimensional;
		// wider frames are labeled 2-D tables.
		if p.Cols == 1 {
			p.Dims = 1
		} else {
			p.Dims = 2
		}

		return p, nil

	default:
		return Profile{}, ErrInvalidDimension
	}
}
