package grove

import "github.com/cockroachdb/errors"

// Errors returned by the tree operations. They mark contract violations by the
// caller and are never retried internally; match them with errors.Is.
var (
	// ErrCycle is returned when an insertion would make a node its own ancestor.
	ErrCycle = errors.New("grove: node cannot become a child of itself or its descendant")

	// ErrAlreadyHasParent is returned when attaching a node that belongs to
	// another parent. Detach it first, or use SetParent.
	ErrAlreadyHasParent = errors.New("grove: node already has a parent")

	// ErrAlreadyChild is returned when attaching a node to the parent it
	// already belongs to.
	ErrAlreadyChild = errors.New("grove: node is already a child of this parent")

	// ErrNotAChild is returned when a node is referenced as a child of a parent
	// it does not belong to.
	ErrNotAChild = errors.New("grove: node is not a child of this parent")

	// ErrCorrupt is returned by Validate when the link structure breaks one of
	// the tree invariants.
	ErrCorrupt = errors.New("grove: corrupt tree links")
)
