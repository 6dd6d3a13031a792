package Trees

// Tree represents an ordered set of unique values held in a binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x should
// not be used.
// None of the operations report errors: looking up or removing an absent value
// and inserting a present value are defined no-ops.
// Methods implemented recursively are noted, so the stack depth is the height
// of the tree.
type Tree[T any] interface {
	//Insert v to the Tree. Returns false if v is already present, in which case the Tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returns false if v isn't present, in which case the Tree is unchanged.
	Remove(v T) bool
	//Find the node holding v, nil if there's none.
	Find(v T) *Node[T]
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() int
	//Height of the tree in edges, -1 when empty.
	Height() int
	//Balanced returns whether the heights of the two subtrees of every node differ by at most 1.
	Balanced() bool
	//Rebalance rebuilds the tree into its minimal height from the current values.
	Rebalance()
	//LevelOrder, PreOrder, InOrder and PostOrder collect the values in the
	//corresponding traversal order. The result is never nil.
	LevelOrder() []T
	PreOrder() []T
	InOrder() []T
	PostOrder() []T
	//VisitLevelOrder, VisitPreOrder, VisitInOrder and VisitPostOrder call f on
	//each node in the corresponding order until f returns false.
	//f mustn't modify the tree.
	VisitLevelOrder(f func(*Node[T]) bool)
	VisitPreOrder(f func(*Node[T]) bool)
	VisitInOrder(f func(*Node[T]) bool)
	VisitPostOrder(f func(*Node[T]) bool)
	//Corrupt returns whether the tree has corrupt structures, when the values
	//aren't strictly ascending in in-order. This is to be distinguished from
	//whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*BST[int])(nil)
