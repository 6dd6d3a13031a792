package Trees

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Render draws the subtree rooting at n, left child listed above the right
// one. The missing child of a node with exactly one child is drawn as <nil> so
// that sides can be told apart.
func Render[T any](n *Node[T]) string {
	if n == nil {
		return treeprint.NewWithRoot("<nil>").String()
	}
	tree := treeprint.NewWithRoot(fmt.Sprint(n.v))
	addChildren(tree, n)
	return tree.String()
}

func addChildren[T any](tree treeprint.Tree, n *Node[T]) {
	if n.l == nil && n.r == nil {
		return
	}
	for _, c := range [2]*Node[T]{n.l, n.r} {
		if c == nil {
			tree.AddNode("<nil>")
		} else if c.l == nil && c.r == nil {
			tree.AddNode(fmt.Sprint(c.v))
		} else {
			addChildren(tree.AddBranch(fmt.Sprint(c.v)), c)
		}
	}
}

// String draws the tree using Render.
func (u *BST[T]) String() string {
	return Render(u.root)
}
