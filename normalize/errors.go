// Package normalize: sentinel error set.
// All pipeline stages return these sentinels (or the structural sentinels
// from package series) and tests match them via errors.Is. None of these
// conditions is transient; every error is terminal for the call.
package normalize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates input dimensionality other than 1 or 2.
	ErrInvalidDimension = errors.New("normalize: input dimensionality must be 1 or 2")

	// ErrUnsupportedArity is the base sentinel for capability violations:
	// the canonical channel count conflicts with the configured capability
	// tags. Match it to catch either specific cause below.
	ErrUnsupportedArity = errors.New("normalize: unsupported arity")

	// ErrMultivariateNotSupported: channel count > 1 but the configuration
	// does not admit multivariate data. errors.Is also matches
	// ErrUnsupportedArity.
	ErrMultivariateNotSupported = fmt.Errorf("%w: multivariate data not supported", ErrUnsupportedArity)

	// ErrUnivariateNotSupported: channel count == 1 but the configuration
	// does not admit univariate data. errors.Is also matches
	// ErrUnsupportedArity.
	ErrUnivariateNotSupported = fmt.Errorf("%w: univariate data not supported", ErrUnsupportedArity)

	// ErrInnerType indicates that the configured inner container kind
	// cannot be produced from the canonical series.
	ErrInnerType = errors.New("normalize: unsupported inner container kind")

	// ErrNoInnerKind indicates that inner-kind resolution was given no
	// usable candidates.
	ErrNoInnerKind = errors.New("normalize: no usable inner kind candidate")
)
