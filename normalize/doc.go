// Package normalize is the input-normalization contract shared by every
// single-series estimator: it validates, reorients, and converts caller
// input into one canonical internal representation, enforces the
// estimator's univariate/multivariate capability, and derives shape
// metadata for later use.
//
// 🚀 What does it do?
//
//	A caller passes a series as a vector, a table of rows, or a labeled
//	Frame, and declares via Axis which physical dimension represents
//	time. Normalize turns that into the one shape downstream algorithms
//	ever see — (nTimepoints × nChannels) — or fails loudly. A silent
//	axis mixup corrupts every subsequent computation, so orientation and
//	capability enforcement live here and nowhere else.
//
// Pipeline stages (single pass, no session state):
//
//	classify → reorient → capability gate → inner-type convert → metadata
//
//   - classify: dimensionality (1 or 2) and container kind; anything else
//     is ErrInvalidDimension.
//   - reorient: 1-D input becomes (n, 1) regardless of Axis; 2-D input is
//     kept as-is under TimeFirst or transposed under TimeSecond. Values
//     are never altered, only orientation.
//   - gate: the canonical channel count — and nothing else — decides
//     whether the configured capabilities admit the data.
//   - convert: the canonical container is re-wrapped as the estimator's
//     configured inner kind (plain Dense or labeled Frame).
//   - metadata: computed only when requested, returned on the Result.
//
// ⚙️ Usage:
//
//	res, err := normalize.Normalize(series.Table(rows),
//	    normalize.WithAxis(series.TimeSecond),
//	    normalize.WithMultivariate(),
//	    normalize.WithMetadata(),
//	)
//	if err != nil {
//	    // errors.Is against ErrInvalidDimension / ErrUnsupportedArity / ErrInnerType
//	}
//	_ = res.Data // series.Container in canonical orientation
//	_ = res.Meta // *Metadata, nil unless WithMetadata was given
//
// Every call is independent and pure; calls on different inputs may run
// in parallel with no shared state. Metadata is an explicit return value,
// never a hidden side effect of this package.
package normalize
