// Package tree implements the composite node that result hierarchies are built from.
//
// A Node is either a leaf, which carries a value and never has children, or a
// composite, which carries a key and owns an ordered list of children. Parent
// links are non-owning back-pointers set only by the composite's Add.
package tree

import (
	"errors"
	"slices"
)

var (
	// ErrLeaf is returned when a child is attached to or detached from a leaf.
	ErrLeaf = errors.New("tree: leaf node has no children")
	// ErrAttached is returned when the child already belongs to a composite.
	ErrAttached = errors.New("tree: node already has a parent")
	// ErrCycle is returned when attaching would make a node its own ancestor.
	ErrCycle = errors.New("tree: node cannot be its own ancestor")
	// ErrNotChild is returned by Remove for a node that is not a direct child.
	ErrNotChild = errors.New("tree: node is not a child")
)

// Node is a leaf or a composite member of a result tree.
type Node[T any] struct {
	key       string
	value     T
	parent    *Node[T]
	children  []*Node[T]
	composite bool
}

// NewLeaf creates a leaf carrying value.
func NewLeaf[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// NewComposite creates an empty composite identified by key.
func NewComposite[T any](key string) *Node[T] {
	return &Node[T]{key: key, composite: true}
}

// Key returns the composite key. Leaves return "".
func (n *Node[T]) Key() string { return n.key }

// Value returns the leaf value. Composites return the zero value.
func (n *Node[T]) Value() T { return n.value }

// Parent returns the owning composite, or nil for a detached node.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsComposite reports whether the node can own children.
func (n *Node[T]) IsComposite() bool { return n.composite }

// Len returns the number of direct children.
func (n *Node[T]) Len() int { return len(n.children) }

// Children returns the direct children in insertion order.
// The returned slice is a copy; the nodes are shared.
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// Add appends child and sets its parent to n.
func (n *Node[T]) Add(child *Node[T]) error {
	if !n.composite {
		return ErrLeaf
	}
	if child.parent != nil {
		return ErrAttached
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
	}
	n.children = append(n.children, child)
	child.parent = n
	return nil
}

// Remove detaches child from n and clears its parent.
func (n *Node[T]) Remove(child *Node[T]) error {
	if !n.composite {
		return ErrLeaf
	}
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return ErrNotChild
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
	return nil
}
