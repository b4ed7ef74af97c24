package cubestrip

import "errors"

// Sentinel errors for precondition failures. Callers branch with
// errors.Is; call sites wrap them with face and dimension context.
var (
	// ErrNilFace reports a missing face image in the builder input.
	ErrNilFace = errors.New("cubestrip: face image is nil")

	// ErrEmptyFace reports a face with zero width or height.
	ErrEmptyFace = errors.New("cubestrip: face image is empty")

	// ErrSizeMismatch reports the core invariant violation:
	// all faces must be the same size.
	ErrSizeMismatch = errors.New("cubestrip: all faces must be the same size")

	// ErrStripHeight reports a strip whose height is not an even
	// multiple of the face count, so it cannot be split.
	ErrStripHeight = errors.New("cubestrip: strip height is not divisible by the face count")
)
