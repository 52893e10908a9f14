package ecs

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/phanxgames/grove"
)

// --- SystemManager ---

func TestSystemManagerAddRemove(t *testing.T) {
	var m SystemManager[Entity]
	if len(m.Systems()) != 0 {
		t.Error("should start empty")
	}
	s1 := NewSystem[int, Entity](plainFactory{})
	s2 := NewSystem[*health, Entity](&healthFactory{})

	m.AddSystem(s1)
	m.AddSystem(s2)
	m.AddSystem(s1)
	if !slices.Equal(m.Systems(), []Registry[Entity]{s1, s2}) {
		t.Errorf("Systems = %v, want [s1 s2]", m.Systems())
	}

	m.RemoveSystem(s1)
	if !slices.Equal(m.Systems(), []Registry[Entity]{s2}) {
		t.Errorf("Systems = %v, want [s2]", m.Systems())
	}
	m.RemoveSystem(s1) // never-added is a no-op
	m.AddSystem(nil)
	if len(m.Systems()) != 1 {
		t.Errorf("Systems len = %d, want 1", len(m.Systems()))
	}
}

// --- World ---

func TestWorldDestroyRemovesComponents(t *testing.T) {
	w := NewWorld[Entity](NewEntityManager())
	f := &healthFactory{}
	hp := NewSystem[*health, Entity](f)
	tags := NewSystem[int, Entity](plainFactory{})
	w.AddSystem(hp)
	w.AddSystem(tags)

	a := w.CreateEntity()
	b := w.CreateEntity()
	_, _ = hp.AddTo(a)
	_, _ = hp.AddTo(b)
	_, _ = tags.AddTo(a)

	w.DestroyEntity(a)
	if hp.Has(a) || tags.Has(a) {
		t.Error("a should lose all components")
	}
	if !hp.Has(b) {
		t.Error("b should keep its component")
	}
	if len(f.destroyed) != 1 {
		t.Errorf("destroyed %d components, want 1", len(f.destroyed))
	}
	if w.Entities().Has(a) {
		t.Error("a should be gone from the manager")
	}
}

func TestWorldOverTreeCascades(t *testing.T) {
	tree := newTestTree()
	w := NewWorld[*grove.Node[string]](tree)
	sprites := NewSystem[int, *grove.Node[string]](plainFactory{})
	w.AddSystem(sprites)

	root := w.CreateEntity()
	child := w.CreateEntity()
	grandchild := w.CreateEntity()
	mustAttach(t, root, child)
	mustAttach(t, child, grandchild)
	for _, n := range []*grove.Node[string]{root, child, grandchild} {
		if _, err := sprites.AddTo(n); err != nil {
			t.Fatalf("AddTo: %v", err)
		}
	}

	w.DestroyEntity(child)
	if sprites.Has(child) || sprites.Has(grandchild) {
		t.Error("child and grandchild should lose their sprites")
	}
	if !sprites.Has(root) {
		t.Error("root keeps its sprite")
	}
	if tree.Has(child) || tree.Has(grandchild) {
		t.Error("child and grandchild should be destroyed")
	}
}

// refusingManager rejects every handler.
type refusingManager struct {
	*Manager[Entity]
}

func (refusingManager) AddEventHandler(EventKind, Handler[Entity]) error {
	return errors.New("refused")
}

func TestNewWorldPanicsWhenHandlerRejected(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when the manager rejects the reaper")
		}
	}()
	NewWorld[Entity](refusingManager{NewEntityManager()})
}

func TestWorldClose(t *testing.T) {
	em := NewEntityManager()
	w := NewWorld[Entity](em)
	s := NewSystem[int, Entity](plainFactory{})
	w.AddSystem(s)
	e := w.CreateEntity()
	_, _ = s.AddTo(e)

	w.Close()
	w.DestroyEntity(e)
	if !s.Has(e) {
		t.Error("closed world should not clean systems")
	}
}
