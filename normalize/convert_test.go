package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalvessen/serin/normalize"
	"github.com/kalvessen/serin/series"
)

// TestNormalize_InnerFrame_GeneratedNames verifies Frame conversion of a
// plain table: channel names are generated in column order.
func TestNormalize_InnerFrame_GeneratedNames(t *testing.T) {
	res, err := normalize.Normalize(series.Table(table(4, 3)),
		normalize.WithMultivariate(),
		normalize.WithInnerKind(series.KindFrame),
	)
	require.NoError(t, err)

	f, ok := res.Data.(*series.Frame)
	require.True(t, ok, "inner kind Frame must yield a *series.Frame")
	assert.Equal(t, []string{"ch0", "ch1", "ch2"}, f.Names())
	assert.Equal(t, 4, f.Rows())
}

// TestNormalize_InnerFrame_CarriesLabels verifies that frame input under
// TimeFirst keeps its channel names and timestamp index.
func TestNormalize_InnerFrame_CarriesLabels(t *testing.T) {
	d, err := series.FromRows(table(3, 2))
	require.NoError(t, err)
	idx := []time.Time{
		time.Unix(0, 0), time.Unix(60, 0), time.Unix(120, 0),
	}
	in, err := series.NewIndexedFrame([]string{"temp", "load"}, idx, d)
	require.NoError(t, err)

	res, err := normalize.Normalize(series.FromFrame(in),
		normalize.WithMultivariate(),
		normalize.WithInnerKind(series.KindFrame),
	)
	require.NoError(t, err)

	f, ok := res.Data.(*series.Frame)
	require.True(t, ok)
	assert.Equal(t, []string{"temp", "load"}, f.Names())
	assert.Equal(t, idx, f.Index())
}

// TestNormalize_InnerFrame_TransposeDropsLabels verifies that a
// TimeSecond transpose falls back to generated names: the old channel
// names no longer describe the new channels.
func TestNormalize_InnerFrame_TransposeDropsLabels(t *testing.T) {
	d, err := series.FromRows(table(3, 2))
	require.NoError(t, err)
	in, err := series.NewFrame([]string{"a", "b"}, d)
	require.NoError(t, err)

	res, err := normalize.Normalize(series.FromFrame(in),
		normalize.WithAxis(series.TimeSecond),
		normalize.WithMultivariate(),
		normalize.WithInnerKind(series.KindFrame),
	)
	require.NoError(t, err)

	f, ok := res.Data.(*series.Frame)
	require.True(t, ok)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, 3, f.Cols())
	assert.Equal(t, []string{"ch0", "ch1", "ch2"}, f.Names())
}

// TestNormalize_InnerFrame_SquareTransposeDropsLabels verifies that a
// square frame under TimeSecond cannot sneak its labels through on a
// shape coincidence: after the transpose the old channel names describe
// timepoints, so names regenerate and the index is dropped.
func TestNormalize_InnerFrame_SquareTransposeDropsLabels(t *testing.T) {
	d, err := series.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	idx := []time.Time{time.Unix(0, 0), time.Unix(60, 0)}
	in, err := series.NewIndexedFrame([]string{"a", "b"}, idx, d)
	require.NoError(t, err)

	res, err := normalize.Normalize(series.FromFrame(in),
		normalize.WithAxis(series.TimeSecond),
		normalize.WithMultivariate(),
		normalize.WithInnerKind(series.KindFrame),
	)
	require.NoError(t, err)

	f, ok := res.Data.(*series.Frame)
	require.True(t, ok)

	v, err := f.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "data must be transposed")
	assert.Equal(t, []string{"ch0", "ch1"}, f.Names(), "square shape must not carry stale names")
	assert.Nil(t, f.Index(), "a transposed frame keeps no timestamp index")
}

// TestNormalize_RoundTrip verifies that converting to Frame and back to
// Dense preserves shape and values exactly.
func TestNormalize_RoundTrip(t *testing.T) {
	rows := table(5, 2)

	asFrame, err := normalize.Normalize(series.Table(rows),
		normalize.WithMultivariate(),
		normalize.WithInnerKind(series.KindFrame),
	)
	require.NoError(t, err)

	back, err := normalize.Normalize(
		series.FromFrame(asFrame.Data.(*series.Frame)),
		normalize.WithMultivariate(),
	)
	require.NoError(t, err)

	d, ok := back.Data.(*series.Dense)
	require.True(t, ok)
	assert.Equal(t, rows, d.Values())
}

// TestNormalize_UnsupportedInnerKind verifies the conversion sentinel.
func TestNormalize_UnsupportedInnerKind(t *testing.T) {
	_, err := normalize.Normalize(series.Vector(seq(3)),
		normalize.WithInnerKind(series.KindVector),
	)
	assert.ErrorIs(t, err, normalize.ErrInnerType)

	_, err = normalize.Normalize(series.Vector(seq(3)),
		normalize.WithInnerKind(series.KindInvalid),
	)
	assert.ErrorIs(t, err, normalize.ErrInnerType)
}
