// Package normalize: functional configuration for the pipeline.
// This file defines Option / Options, the documented defaults (constants,
// single source of truth), the WithX constructors, and the internal
// gatherOptions resolver. Option constructors panic only on nonsensical
// values (programmer error); data-dependent failures surface as errors
// from Normalize itself.
package normalize

import "github.com/kalvessen/serin/series"

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultAxis treats rows as timepoints (canonical orientation).
	DefaultAxis = series.TimeFirst

	// DefaultUnivariate admits single-channel data.
	DefaultUnivariate = true

	// DefaultMultivariate rejects multi-channel data. Estimators that can
	// handle several channels opt in via WithMultivariate.
	DefaultMultivariate = false

	// DefaultInnerKind converts to the plain canonical container.
	DefaultInnerKind = series.KindDense

	// DefaultCaptureMetadata leaves Result.Meta nil.
	DefaultCaptureMetadata = false
)

const panicAxisInvalid = "normalize: WithAxis: axis must be TimeFirst or TimeSecond"

// Caps is the fixed capability configuration: two independent booleans,
// both of which may be true. A Caps with both fields false is a valid but
// degenerate configuration that rejects every input.
type Caps struct {
	// Univariate admits canonical data with exactly one channel.
	Univariate bool

	// Multivariate admits canonical data with more than one channel.
	Multivariate bool
}

// Option mutates internal options. Safe to apply repeatedly; last writer
// wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	axis    series.Axis
	caps    Caps
	inner   series.Kind
	capture bool
}

// WithAxis declares which dimension of 2-D input represents time.
// Irrelevant for 1-D input. Panics on an undeclared axis value.
func WithAxis(a series.Axis) Option {
	if !a.Valid() {
		panic(panicAxisInvalid)
	}

	return func(o *Options) { o.axis = a }
}

// WithCaps sets the full capability configuration in one call.
func WithCaps(c Caps) Option {
	return func(o *Options) { o.caps = c }
}

// WithUnivariate admits single-channel data (the default).
func WithUnivariate() Option {
	return func(o *Options) { o.caps.Univariate = true }
}

// WithoutUnivariate rejects single-channel data.
func WithoutUnivariate() Option {
	return func(o *Options) { o.caps.Univariate = false }
}

// WithMultivariate admits multi-channel data.
func WithMultivariate() Option {
	return func(o *Options) { o.caps.Multivariate = true }
}

// WithoutMultivariate rejects multi-channel data (the default).
func WithoutMultivariate() Option {
	return func(o *Options) { o.caps.Multivariate = false }
}

// WithInnerKind selects the inner container kind the caller receives.
// Supported kinds are series.KindDense and series.KindFrame; anything
// else surfaces as ErrInnerType from Normalize, not as a panic here,
// since estimator configurations are data to this package.
func WithInnerKind(k series.Kind) Option {
	return func(o *Options) { o.inner = k }
}

// WithMetadata requests shape metadata on the Result.
func WithMetadata() Option {
	return func(o *Options) { o.capture = true }
}

// WithoutMetadata disables metadata capture (the default).
func WithoutMetadata() Option {
	return func(o *Options) { o.capture = false }
}

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins. The canonical internal entry point; callers never
// build Options directly.
func gatherOptions(user ...Option) Options {
	o := Options{
		axis: DefaultAxis,
		caps: Caps{
			Univariate:   DefaultUnivariate,
			Multivariate: DefaultMultivariate,
		},
		inner:   DefaultInnerKind,
		capture: DefaultCaptureMetadata,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
