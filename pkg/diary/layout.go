package diary

// ConstraintMode says how a parent limits a child's size along one axis.
type ConstraintMode int

const (
	Unspecified ConstraintMode = iota // Child may be any size
	Exactly                           // Child must be exactly Size
	AtMost                            // Child may be up to Size
)

// Constraint is one axis of a measure request.
type Constraint struct {
	Mode ConstraintMode
	Size float32
}

// Unbounded lets the child pick its own size.
func Unbounded() Constraint {
	return Constraint{Mode: Unspecified}
}

// ResolveSize reconciles a desired size with a constraint.
func ResolveSize(desired float32, c Constraint) float32 {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		if desired > c.Size {
			return c.Size
		}
		return desired
	default:
		return desired
	}
}
