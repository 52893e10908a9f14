package ecs

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity is the default entity identity: an opaque key issued by a KeyFactory.
type Entity struct {
	Key uint64
}

// String returns a short label such as "entity#3".
func (e Entity) String() string {
	return fmt.Sprintf("entity#%d", e.Key)
}

// EntityFactory creates fresh entity identities for a Manager.
type EntityFactory[E comparable] interface {
	Create() E
}

// EntityFactoryFunc adapts a plain function to an EntityFactory.
type EntityFactoryFunc[E comparable] func() E

// Create calls f.
func (f EntityFactoryFunc[E]) Create() E {
	return f()
}

// KeyFactory issues Entity values with increasing keys, starting at 1. Each
// factory counts on its own, so separate managers never share state.
type KeyFactory struct {
	last uint64
}

// Create returns the next entity.
func (f *KeyFactory) Create() Entity {
	f.last++
	return Entity{Key: f.last}
}

// UUIDFactory issues random UUID identities, for entities that must stay
// unique across independently created managers.
type UUIDFactory struct{}

// Create returns a new random UUID.
func (UUIDFactory) Create() uuid.UUID {
	return uuid.New()
}
