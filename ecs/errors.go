package ecs

import "github.com/cockroachdb/errors"

var (
	// ErrAlreadyRegistered is returned by System.AddTo when the entity already
	// has a component in that system.
	ErrAlreadyRegistered = errors.New("ecs: entity is already registered")

	// ErrDuplicateHandler is returned when the same handler is added twice for
	// one event kind.
	ErrDuplicateHandler = errors.New("ecs: handler is already registered")
)
