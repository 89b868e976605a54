package normalize

import "github.com/kalvessen/serin/series"

// reorient builds the canonical (nTimepoints × nChannels) Dense from a
// classified input. Values are copied, never aliased, and never altered:
//
//   - 1-D input of length n becomes (n, 1); the declared axis is ignored,
//     one-dimensional data has no orientation ambiguity.
//   - 2-D input under TimeFirst keeps its shape (rows, cols).
//   - 2-D input under TimeSecond is transposed to (cols, rows).
//
// Classification has already rejected empty and ragged inputs, so the
// only errors here are defensive: re-checks from the series constructors
// and the unknown-kind guard in the default arm.
func reorient(in series.Input, p Profile, axis series.Axis) (*series.Dense, error) {
	var d *series.Dense
	var err error

	switch p.Kind {
	case series.KindVector:
		v, _ := in.AsVector()
		d, err = series.FromVector(v)

	case series.KindTable:
		rows, _ := in.AsTable()
		d, err = series.FromRows(rows)

	case series.KindFrame:
		f, _ := in.AsFrame()
		d = f.Data().Clone()

	default:
		return nil, ErrInvalidDimension
	}
	if err != nil {
		return nil, err
	}

	if p.Dims == 2 && axis == series.TimeSecond {
		d = d.Transpose()
	}

	return d, nil
}
