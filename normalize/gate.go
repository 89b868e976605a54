package normalize

// checkArity enforces the configured capabilities against the canonical
// channel count. The channel count is the sole arbiter: a labeled
// container is inherently single-channel only insofar as its derived
// count says so, the kind itself is never consulted.
//
// With both capabilities false every input is rejected — a valid but
// degenerate configuration; the two checks below cover it without a
// special case. Pure validation, no side effects.
func checkArity(channels int, caps Caps) error {
	if channels > 1 && !caps.Multivariate {
		return ErrMultivariateNotSupported
	}
	if channels == 1 && !caps.Univariate {
		return ErrUnivariateNotSupported
	}

	return nil
}
