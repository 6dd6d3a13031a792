package Trees

// Node of a BST. A Node exclusively owns its children; there's no parent
// pointer, so every walk goes top down.
// A nil *Node is the empty subtree; Height, Depth and Balanced are defined on it.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

func (n *Node[T]) Value() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Height of the subtree rooting at n: -1 if n is nil, 0 for a leaf. Recursive.
// Time: O(n)
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return max(n.l.Height(), n.r.Height()) + 1
}

// Depth of target below n counted in edges: 0 if target is n itself, -1 if
// target isn't in the subtree. Nodes are matched by identity, not by value. Recursive.
// Time: O(n)
func (n *Node[T]) Depth(target *Node[T]) int {
	if n == nil || target == nil {
		return -1
	} else if n == target {
		return 0
	}
	if d := n.l.Depth(target); d != -1 {
		return d + 1
	}
	if d := n.r.Depth(target); d != -1 {
		return d + 1
	}
	return -1
}

// Balanced checks that at every node of the subtree the heights of the two
// children differ by at most 1. Heights aren't cached. Recursive.
// Time: O(n log n) on balanced trees, O(n^2) worst case.
func (n *Node[T]) Balanced() bool {
	if n == nil {
		return true
	}
	if d := n.l.Height() - n.r.Height(); d > 1 || d < -1 {
		return false
	}
	return n.l.Balanced() && n.r.Balanced()
}

// successor of n is the leftmost node of the subtree rooting at n.
func successor[T any](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}
