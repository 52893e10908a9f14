package grove

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestValidateNil(t *testing.T) {
	if err := Validate[string](nil); err != nil {
		t.Errorf("Validate(nil) = %v", err)
	}
}

func TestValidateAfterMutations(t *testing.T) {
	f := newFixture(t)
	steps := []func() error{
		func() error { return f.root.RemoveChild(f.p1) },
		func() error { return f.p1.SetParent(f.nodes["p2_c2_g1"]) },
		func() error { return f.p2.InsertBefore(NewNode("x"), f.nodes["p2_c2"]) },
		func() error { return f.nodes["p2_c1"].SetParent(nil) },
		func() error { return f.root.InsertBefore(f.nodes["p2_c1"], f.p2) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if err := Validate(f.root); err != nil {
			t.Fatalf("step %d: Validate: %v", i, err)
		}
	}
	assertValues(t, f.root.Children(), "p2_c1", "p2")
	if !f.p1.IsDescendantOf(f.p2) {
		t.Error("p1 should now live under p2")
	}
}

func TestValidateDetectsBrokenLinks(t *testing.T) {
	for _, tc := range []struct {
		name    string
		corrupt func(parent, c1, c2 *Node[string])
	}{
		{"parent pointer", func(_, c1, _ *Node[string]) { c1.parent = nil }},
		{"prev sibling", func(_, _, c2 *Node[string]) { c2.prevSibling = nil }},
		{"last child", func(parent, c1, _ *Node[string]) { parent.lastChild = c1 }},
		{"first without last", func(parent, _, _ *Node[string]) { parent.lastChild = nil }},
		{"first has prev", func(parent, c1, c2 *Node[string]) { c1.prevSibling = c2 }},
		{"self parent", func(parent, _, _ *Node[string]) { parent.parent = parent }},
		{"sibling loop", func(_, c1, c2 *Node[string]) { c2.nextSibling = c1 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			parent := NewNode("parent")
			c1, c2 := NewNode("c1"), NewNode("c2")
			mustAdd(t, parent, c1, c2)
			tc.corrupt(parent, c1, c2)
			if err := Validate(parent); !errors.Is(err, ErrCorrupt) {
				t.Errorf("err = %v, want ErrCorrupt", err)
			}
		})
	}
}
