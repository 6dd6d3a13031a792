package Trees

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree with no repeated values. Insert and
// Remove never restructure the tree beyond the path they touch, so a skewed
// sequence of insertions can degrade the height D towards n; Rebalance
// restores the minimal height ceil(log2(n+1))-1.
// The tree also remembers the sorted values it was last built from (see
// Input), which isn't kept in sync by Insert and Remove.
// BST isn't safe for concurrent use.
type BST[T any] struct {
	root  *Node[T]
	cmp   func(a, b T) int
	input []T
	sz    int
}

// New builds a tree of minimal height holding keys. keys may be unsorted and
// may have duplicates; it isn't modified or retained.
// Time: O(n log n)
func New[T constraints.Ordered](keys []T) *BST[T] {
	return NewFunc(keys, cmp.Compare[T])
}

// NewFunc is New for any T ordered by compare, which returns a negative number
// when a<b, a positive number when a>b and 0 when a==b. compare must be a
// total order; this isn't checked.
func NewFunc[T any](keys []T, compare func(a, b T) int) *BST[T] {
	u := &BST[T]{cmp: compare}
	u.input = slices.Clone(keys)
	slices.SortStableFunc(u.input, compare)
	u.input = slices.CompactFunc(u.input, func(a, b T) bool { return compare(a, b) == 0 })
	u.root = build(u.input, 0, len(u.input)-1)
	u.sz = len(u.input)
	return u
}

// build a tree of minimal height from s[first..last] recursively. s must be
// sorted in ascending order and mustn't contain duplicates. The lower middle
// is picked as the root of even length ranges.
// Time: O(n)
func build[T any](s []T, first, last int) *Node[T] {
	if first > last {
		return nil
	}
	mid := first + (last-first)/2
	return &Node[T]{s[mid], build(s, first, mid-1), build(s, mid+1, last)}
}

func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// Input returns a copy of the sorted values the tree was last built or rebalanced from.
func (u *BST[T]) Input() []T {
	return slices.Clone(u.input)
}

// Size [Tree.Size]
// Time: O(1)
func (u *BST[T]) Size() int {
	return u.sz
}

// Clear the tree.
func (u *BST[T]) Clear() {
	u.root, u.input, u.sz = nil, nil, 0
}

func (u *BST[T]) find(cur *Node[T], v T) *Node[T] {
	if cur == nil {
		return nil
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.find(cur.l, v)
	} else if c > 0 {
		return u.find(cur.r, v)
	}
	return cur
}

// Find [Tree.Find]. Recursive.
// Time: O(D)
func (u *BST[T]) Find(v T) *Node[T] {
	return u.find(u.root, v)
}

// Has [Tree.Has]. Recursive.
// Time: O(D)
func (u *BST[T]) Has(v T) bool {
	return u.find(u.root, v) != nil
}

// insert v to the subtree rooting at cur recursively and return the new
// root of the subtree, which is a new leaf if cur is nil and cur otherwise.
// The bool is false when v is already in the subtree.
func (u *BST[T]) insert(cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return &Node[T]{v: v}, true
	}
	inserted := false
	if c := u.cmp(v, cur.v); c < 0 {
		cur.l, inserted = u.insert(cur.l, v)
	} else if c > 0 {
		cur.r, inserted = u.insert(cur.r, v)
	}
	return cur, inserted
}

// Insert [Tree.Insert]. Recursive. It doesn't rebalance.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	var inserted bool
	if u.root, inserted = u.insert(u.root, v); inserted {
		u.sz++
	}
	return inserted
}

// remove v from the subtree rooting at cur recursively and return the new
// root of the subtree. Every child on the search path is re-linked to the
// result of the recursive call. A node with 2 children isn't unlinked;
// it takes the value of its in-order successor, which is removed from the
// right subtree instead.
func (u *BST[T]) remove(cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if c := u.cmp(v, cur.v); c < 0 {
		cur.l, removed = u.remove(cur.l, v)
	} else if c > 0 {
		cur.r, removed = u.remove(cur.r, v)
	} else if cur.l == nil {
		return cur.r, true
	} else if cur.r == nil {
		return cur.l, true
	} else {
		cur.v = successor(cur.r).v
		cur.r, removed = u.remove(cur.r, cur.v)
	}
	return cur, removed
}

// Remove [Tree.Remove]. Recursive. It doesn't rebalance.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	var removed bool
	if u.root, removed = u.remove(u.root, v); removed {
		u.sz--
	}
	return removed
}

// Minimum [Tree.Minimum]
// Time: O(D)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return successor(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BST[T]) Height() int {
	return u.root.Height()
}

// Depth of the node target from the root, -1 if target isn't in the tree.
// See Node.Depth. Recursive.
// Time: O(n)
func (u *BST[T]) Depth(target *Node[T]) int {
	return u.root.Depth(target)
}

// DepthOf finds the depth of the node holding v by searching for v, -1 if v
// isn't in the tree. For any node n in the tree, DepthOf(n.Value())==Depth(n).
// Time: O(D)
func (u *BST[T]) DepthOf(v T) int {
	for cur, d := u.root, 0; cur != nil; d++ {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return d
		}
	}
	return -1
}

// Balanced [Tree.Balanced]. Recursive.
// Time: O(n log n) on balanced trees, O(n^2) worst case.
func (u *BST[T]) Balanced() bool {
	return u.root.Balanced()
}

// Rebalance [Tree.Rebalance]. The in-order values become the new Input.
// Time: O(n)
func (u *BST[T]) Rebalance() {
	u.input = u.InOrder()
	u.root = build(u.input, 0, len(u.input)-1)
}

// Corrupt [Tree.Corrupt]. Also reports a tree whose node count disagrees with Size.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	var prev *Node[T]
	n, corrupt := 0, false
	u.VisitInOrder(func(cur *Node[T]) bool {
		if prev != nil && u.cmp(prev.v, cur.v) >= 0 {
			corrupt = true
			return false
		}
		prev = cur
		n++
		return true
	})
	return corrupt || n != u.sz
}
