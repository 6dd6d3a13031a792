package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// collect the values of the nodes given by visit.
func collect[T any](visit func(func(*Node[T]) bool), hint int) []T {
	out := make([]T, 0, hint)
	visit(func(n *Node[T]) bool {
		out = append(out, n.v)
		return true
	})
	return out
}

// VisitLevelOrder [Tree.VisitLevelOrder]. Breadth first using a FIFO queue.
// Time: O(n); Space: O(width)
func (u *BST[T]) VisitLevelOrder(f func(*Node[T]) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](uint(u.sz/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur) {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// preOrder returns false once f does.
func preOrder[T any](cur *Node[T], f func(*Node[T]) bool) bool {
	if cur == nil {
		return true
	}
	return f(cur) && preOrder(cur.l, f) && preOrder(cur.r, f)
}

func inOrder[T any](cur *Node[T], f func(*Node[T]) bool) bool {
	if cur == nil {
		return true
	}
	return inOrder(cur.l, f) && f(cur) && inOrder(cur.r, f)
}

func postOrder[T any](cur *Node[T], f func(*Node[T]) bool) bool {
	if cur == nil {
		return true
	}
	return postOrder(cur.l, f) && postOrder(cur.r, f) && f(cur)
}

// VisitPreOrder [Tree.VisitPreOrder]. Recursive.
func (u *BST[T]) VisitPreOrder(f func(*Node[T]) bool) {
	preOrder(u.root, f)
}

// VisitInOrder [Tree.VisitInOrder]. Values are given in ascending order. Recursive.
func (u *BST[T]) VisitInOrder(f func(*Node[T]) bool) {
	inOrder(u.root, f)
}

// VisitPostOrder [Tree.VisitPostOrder]. Recursive.
func (u *BST[T]) VisitPostOrder(f func(*Node[T]) bool) {
	postOrder(u.root, f)
}

func (u *BST[T]) LevelOrder() []T {
	return collect(u.VisitLevelOrder, u.sz)
}

func (u *BST[T]) PreOrder() []T {
	return collect(u.VisitPreOrder, u.sz)
}

// InOrder values are sorted in ascending order.
func (u *BST[T]) InOrder() []T {
	return collect(u.VisitInOrder, u.sz)
}

func (u *BST[T]) PostOrder() []T {
	return collect(u.VisitPostOrder, u.sz)
}
