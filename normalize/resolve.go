package normalize

import "github.com/kalvessen/serin/series"

// innerKindPriority is the fixed preference order for inner-kind
// resolution: the plain canonical container beats the labeled one, since
// every downstream algorithm reads it without indirection.
var innerKindPriority = []series.Kind{series.KindDense, series.KindFrame}

// ResolveInnerKind picks the inner container kind for an estimator that
// declares several acceptable kinds. Candidates are matched against the
// fixed priority order; unknown entries are ignored. Returns
// ErrNoInnerKind when candidates is empty or contains no supported kind.
//
// Deterministic: the result depends only on which supported kinds appear,
// not on candidate order.
func ResolveInnerKind(candidates []series.Kind) (series.Kind, error) {
	for _, want := range innerKindPriority {
		for _, k := range candidates {
			if k == want {
				return k, nil
			}
		}
	}

	return series.KindInvalid, ErrNoInnerKind
}
