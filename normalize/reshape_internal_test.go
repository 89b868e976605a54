package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalvessen/serin/series"
)

// TestReorient_UnknownKindRejected verifies the defensive default arm: a
// profile carrying a kind reorient does not know how to read fails
// cleanly instead of dereferencing nil.
func TestReorient_UnknownKindRejected(t *testing.T) {
	p := Profile{Dims: 2, Kind: series.KindDense, Rows: 2, Cols: 2}

	d, err := reorient(series.Input{}, p, series.TimeSecond)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
