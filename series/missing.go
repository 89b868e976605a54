package series

import "math"

// HasMissing reports whether c contains any NaN value. NaN is the only
// missing-value marker the containers recognize; ±Inf values are ordinary
// (if suspect) data and are not flagged here.
// Complexity: O(rows*cols).
func HasMissing(c Container) bool {
	if c == nil {
		return false
	}
	// Fast path over the flat storage for the concrete containers.
	switch v := c.(type) {
	case *Dense:
		return hasNaN(v.data)
	case *Frame:
		// A zero-value Frame has no backing Dense.
		return v.data != nil && hasNaN(v.data.data)
	}
	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < c.Cols(); j++ {
			val, err := c.At(i, j)
			if err == nil && math.IsNaN(val) {
				return true
			}
		}
	}

	return false
}

func hasNaN(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
