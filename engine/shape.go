package engine

// Kind identifies one of the canonical tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindZ
	KindS
)

// KindCount is the number of canonical shapes.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "L", "J", "Z", "S"}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Shape is a matrix of occupied cells relative to the piece origin.
// Rows are indexed first.
type Shape [][]bool

var canonicalShapes = [KindCount]Shape{
	KindI: {
		{true, true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{true, true, true},
		{false, true, false},
	},
	KindL: {
		{true, true, true},
		{true, false, false},
	},
	KindJ: {
		{true, true, true},
		{false, false, true},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
}

// ShapeOf returns a fresh copy of the canonical shape for kind.
func ShapeOf(kind Kind) Shape {
	return canonicalShapes[kind].Clone()
}

// Rows returns the matrix height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the matrix width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Rotate returns the shape turned 90 degrees clockwise. The receiver is not modified.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
		for j := range rows {
			rotated[i][j] = s[rows-1-j][i]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}
