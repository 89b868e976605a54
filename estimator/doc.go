// Package estimator provides Base, the embeddable per-estimator state for
// single-series estimators: the configured axis, capability tags, and
// inner container kind, plus the shape metadata of the most recent
// preprocessing call.
//
// A concrete estimator embeds *Base and funnels every fit/predict input
// through Preprocess, which runs the normalization pipeline under the
// estimator's configuration and records the resulting metadata.
//
// The metadata record is the one piece of shared mutable state in serin.
// It is guarded by a lock scoped to the write, and semantics under
// concurrent Preprocess calls on one Base are last-writer-wins. Callers
// that need per-call metadata isolation should use PreprocessMeta, which
// returns the record explicitly, or call normalize.Normalize directly.
package estimator
