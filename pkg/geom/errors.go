package geom

import "github.com/pkg/errors"

// Structural failures surfaced by the kernel. Callers should treat them as
// programming errors; none of them is transient.
var (
	// ErrDegenerateFrame is returned when a transform must be inverted but
	// its determinant is zero within tolerance.
	ErrDegenerateFrame = errors.New("degenerate frame")

	// ErrNonConformalFrame is returned when plane equations are requested
	// from a frame with shear or non-uniform scale.
	ErrNonConformalFrame = errors.New("non-conformal frame")

	// ErrUnsupportedGeometryKind is returned by equality and hashing for a
	// primitive outside the supported closed set.
	ErrUnsupportedGeometryKind = errors.New("unsupported geometry kind")

	// ErrInvalidInterval marks an interval whose orientation does not match
	// what the operation expects.
	ErrInvalidInterval = errors.New("invalid interval")
)
