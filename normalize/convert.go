package normalize

import (
	"fmt"

	"github.com/kalvessen/serin/series"
)

// toInner converts the canonical Dense into the configured inner
// container kind. The conversion is purely a container change: shape and
// values are untouched.
//
//   - series.KindDense: the canonical container is returned as-is.
//   - series.KindFrame: the canonical container is wrapped with channel
//     names. When the original input was a Frame and no transpose was
//     applied, its names (and timestamp index, if any) are carried
//     through; otherwise names are generated as ch0..chN-1. A TimeSecond
//     transpose always drops the labels, even when the shape is square:
//     the old channel names describe what are now timepoints.
//
// Any other target kind fails with ErrInnerType.
func toInner(d *series.Dense, in series.Input, transposed bool, kind series.Kind) (series.Container, error) {
	switch kind {
	case series.KindDense:
		return d, nil

	case series.KindFrame:
		if f, ok := in.AsFrame(); ok && f != nil && !transposed && len(f.Names()) == d.Cols() {
			if idx := f.Index(); len(idx) == d.Rows() {
				return series.NewIndexedFrame(f.Names(), idx, d)
			}

			return series.NewFrame(f.Names(), d)
		}
		names := make([]string, d.Cols())
		for j := range names {
			names[j] = fmt.Sprintf("ch%d", j)
		}

		return series.NewFrame(names, d)

	default:
		return nil, fmt.Errorf("convert to %s: %w", kind, ErrInnerType)
	}
}
