package estimator

import (
	"sync"

	"github.com/kalvessen/serin/normalize"
	"github.com/kalvessen/serin/series"
)

// DEFAULTS for Base construction.
const (
	// DefaultAxis treats rows of 2-D input as timepoints.
	DefaultAxis = series.TimeFirst
)

const panicAxisInvalid = "estimator: WithAxis: axis must be TimeFirst or TimeSecond"

// Option configures Base construction.
type Option func(*options)

type options struct {
	axis       series.Axis
	innerKinds []series.Kind
}

// WithAxis declares the orientation this estimator expects for 2-D input.
// Callers must match their data to this value; for 2-D input a mismatch
// is silently misinterpreted, which is exactly why the default is fixed
// and explicit. Panics on an undeclared axis value.
func WithAxis(a series.Axis) Option {
	if !a.Valid() {
		panic(panicAxisInvalid)
	}

	return func(o *options) { o.axis = a }
}

// WithInnerKinds declares the inner container kinds this estimator can
// operate on, resolved to one concrete kind at construction via
// normalize.ResolveInnerKind. Unknown-only candidate lists fail New with
// normalize.ErrNoInnerKind rather than being silently ignored.
func WithInnerKinds(kinds ...series.Kind) Option {
	return func(o *options) { o.innerKinds = kinds }
}

// Base is the embeddable per-estimator state: immutable configuration
// fixed at construction, plus the metadata record of the most recent
// Preprocess call.
//
// The configuration fields are read-only after New, so Base is safe for
// concurrent Preprocess calls; only the metadata record is shared and
// mutable, and it is guarded by mu. Under concurrent use the stored
// record is last-writer-wins.
type Base struct {
	axis  series.Axis
	caps  normalize.Caps
	inner series.Kind

	mu   sync.RWMutex
	meta *normalize.Metadata
}

// New builds a Base for an estimator with the given capability tags.
// Defaults: axis TimeFirst, inner kind resolved from {KindDense}.
//
// A caps value with both fields false is accepted: it is a valid but
// degenerate configuration under which Preprocess rejects every input.
func New(caps normalize.Caps, opts ...Option) (*Base, error) {
	o := options{
		axis:       DefaultAxis,
		innerKinds: []series.Kind{series.KindDense},
	}
	for _, set := range opts {
		set(&o)
	}

	inner, err := normalize.ResolveInnerKind(o.innerKinds)
	if err != nil {
		return nil, err
	}

	return &Base{axis: o.axis, caps: caps, inner: inner}, nil
}

// Axis returns the configured orientation for 2-D input.
func (b *Base) Axis() series.Axis { return b.axis }

// Caps returns the configured capability tags.
func (b *Base) Caps() normalize.Caps { return b.caps }

// InnerKind returns the resolved inner container kind.
func (b *Base) InnerKind() series.Kind { return b.inner }

// Preprocess normalizes in under this estimator's configuration, stores
// the derived metadata as the estimator's current record (overwriting,
// not merging, any previous one), and returns the canonical container.
func (b *Base) Preprocess(in series.Input) (series.Container, error) {
	out, meta, err := b.PreprocessMeta(in)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.meta = &meta
	b.mu.Unlock()

	return out, nil
}

// PreprocessMeta normalizes in under this estimator's configuration and
// returns the canonical container together with its metadata, without
// touching the shared record. Use this when concurrent callers need
// per-call metadata isolation.
func (b *Base) PreprocessMeta(in series.Input) (series.Container, normalize.Metadata, error) {
	res, err := normalize.Normalize(in,
		normalize.WithAxis(b.axis),
		normalize.WithCaps(b.caps),
		normalize.WithInnerKind(b.inner),
		normalize.WithMetadata(),
	)
	if err != nil {
		return nil, normalize.Metadata{}, err
	}

	return res.Data, *res.Meta, nil
}

// Metadata returns a copy of the current metadata record, and whether one
// has been captured since construction or the last Reset. Under
// concurrent Preprocess calls the record reflects the last writer.
func (b *Base) Metadata() (normalize.Metadata, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.meta == nil {
		return normalize.Metadata{}, false
	}

	return *b.meta, true
}

// Reset clears the stored metadata record.
func (b *Base) Reset() {
	b.mu.Lock()
	b.meta = nil
	b.mu.Unlock()
}
