package normalize

import "github.com/kalvessen/serin/series"

// Metadata is the shape record derived from one normalization call.
// It describes the canonical output and the call that produced it; it
// never owns or aliases the underlying data.
type Metadata struct {
	// NumTimepoints is the canonical first dimension.
	NumTimepoints int

	// NumChannels is the canonical second dimension.
	NumChannels int

	// InputKind is the container kind the caller originally supplied.
	InputKind series.Kind

	// Axis is the axis declaration the call was normalized under.
	Axis series.Axis
}

// captureMeta derives Metadata from the canonical container and the
// classification profile. Called only when capture was requested; no
// metadata work happens otherwise.
func captureMeta(d *series.Dense, p Profile, axis series.Axis) *Metadata {
	return &Metadata{
		NumTimepoints: d.Rows(),
		NumChannels:   d.Cols(),
		InputKind:     p.Kind,
		Axis:          axis,
	}
}
