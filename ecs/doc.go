// Package ecs provides the entity registry that sits next to a grove tree:
// entity managers with lifecycle events, component systems keyed by entity,
// and a tree-aware manager whose destroy cascades through descendants.
//
// The primary types are [Manager], which creates and destroys entities and
// fires [EventDestroy] to registered handlers, and [System], which attaches one
// component per entity. [World] ties them together so destroying an entity
// also drops its components from every system.
//
// Usage:
//
//	tree := ecs.NewTree[string](ecs.EntityFactoryFunc[string](nextName))
//	world := ecs.NewWorld[*grove.Node[string]](tree)
//	sprites := ecs.NewSystem[*Sprite, *grove.Node[string]](spriteFactory{})
//	world.AddSystem(sprites)
//
//	panel := tree.CreateEntity()
//	sprites.AddTo(panel)
//	world.DestroyEntity(panel) // panel and its subtree lose their sprites
//
// Destroy events can also be forwarded into a [Donburi] world with
// [NewDonburiBridge].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
