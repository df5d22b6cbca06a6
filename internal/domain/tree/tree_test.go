package tree

import (
	"errors"
	"testing"
)

func TestNewLeaf(t *testing.T) {
	n := NewLeaf("a")
	if n.IsComposite() {
		t.Error("leaf must not be composite")
	}
	if n.Value() != "a" {
		t.Errorf("expected value a, got %q", n.Value())
	}
	if n.Parent() != nil {
		t.Error("new leaf must be detached")
	}
	if n.Len() != 0 {
		t.Errorf("expected no children, got %d", n.Len())
	}
}

func TestComposite_AddSetsParentAndKeepsOrder(t *testing.T) {
	root := NewComposite[string]("How To")
	a, b, c := NewLeaf("a"), NewLeaf("b"), NewLeaf("c")
	for _, n := range []*Node[string]{a, b, c} {
		if err := root.Add(n); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if !root.IsComposite() {
		t.Error("composite must report IsComposite")
	}
	if root.Key() != "How To" {
		t.Errorf("unexpected key %q", root.Key())
	}
	got := root.Children()
	if len(got) != 3 {
		t.Fatalf("expected 3 children, got %d", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Value() != want {
			t.Errorf("child %d: expected %q, got %q", i, want, got[i].Value())
		}
		if got[i].Parent() != root {
			t.Errorf("child %d: parent not set", i)
		}
	}
}

func TestComposite_ChildrenIsCopy(t *testing.T) {
	root := NewComposite[int]("k")
	_ = root.Add(NewLeaf(1))

	ch := root.Children()
	ch[0] = nil

	if root.Children()[0] == nil {
		t.Error("mutating returned slice must not affect the node")
	}
}

func TestComposite_Remove(t *testing.T) {
	root := NewComposite[string]("k")
	a, b := NewLeaf("a"), NewLeaf("b")
	_ = root.Add(a)
	_ = root.Add(b)

	if err := root.Remove(a); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if a.Parent() != nil {
		t.Error("removed child must be detached")
	}
	if root.Len() != 1 || root.Children()[0] != b {
		t.Error("expected only b to remain")
	}
	if err := root.Remove(a); !errors.Is(err, ErrNotChild) {
		t.Errorf("expected ErrNotChild, got %v", err)
	}
}

func TestLeaf_AddAndRemoveRejected(t *testing.T) {
	leaf := NewLeaf("a")
	if err := leaf.Add(NewLeaf("b")); !errors.Is(err, ErrLeaf) {
		t.Errorf("expected ErrLeaf on Add, got %v", err)
	}
	if err := leaf.Remove(NewLeaf("b")); !errors.Is(err, ErrLeaf) {
		t.Errorf("expected ErrLeaf on Remove, got %v", err)
	}
}

func TestComposite_AddAttachedChild(t *testing.T) {
	r1 := NewComposite[string]("r1")
	r2 := NewComposite[string]("r2")
	a := NewLeaf("a")
	_ = r1.Add(a)

	if err := r2.Add(a); !errors.Is(err, ErrAttached) {
		t.Errorf("expected ErrAttached, got %v", err)
	}
	if a.Parent() != r1 {
		t.Error("failed Add must not move the child")
	}
}

func TestComposite_AddCycle(t *testing.T) {
	outer := NewComposite[string]("outer")
	inner := NewComposite[string]("inner")
	if err := outer.Add(inner); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := outer.Add(outer); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle for self, got %v", err)
	}

	// Re-attaching the root under its own descendant must fail.
	if err := inner.Add(outer); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle for ancestor, got %v", err)
	}
}
