package series

// Input is the tagged variant of everything a caller may hand to the
// normalization pipeline: a plain 1-D vector, a plain 2-D table of rows,
// or a labeled Frame. The zero Input carries KindInvalid and is rejected
// by classification.
//
// Input holds references to the caller's data; it never copies. The
// pipeline copies when it builds the canonical container, so normalized
// output never aliases caller storage.
type Input struct {
	kind  Kind
	vec   []float64
	table [][]float64
	frame *Frame
}

// Vector wraps a 1-D numeric sequence as pipeline input.
func Vector(v []float64) Input {
	return Input{kind: KindVector, vec: v}
}

// Table wraps a 2-D numeric table as pipeline input. Orientation of the
// rows is declared separately via Axis at normalization time.
func Table(rows [][]float64) Input {
	return Input{kind: KindTable, table: rows}
}

// FromFrame wraps a labeled Frame as pipeline input.
func FromFrame(f *Frame) Input {
	return Input{kind: KindFrame, frame: f}
}

// Kind reports which variant this Input holds.
func (in Input) Kind() Kind { return in.kind }

// AsVector returns the wrapped vector when the Input holds one.
func (in Input) AsVector() ([]float64, bool) {
	return in.vec, in.kind == KindVector
}

// AsTable returns the wrapped table when the Input holds one.
func (in Input) AsTable() ([][]float64, bool) {
	return in.table, in.kind == KindTable
}

// AsFrame returns the wrapped Frame when the Input holds one.
func (in Input) AsFrame() (*Frame, bool) {
	return in.frame, in.kind == KindFrame
}
