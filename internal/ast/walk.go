package ast

// Walk traverses the tree starting from node, calling fn for each node
// in preorder. If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Grouping:
		if n.Expression != nil {
			Walk(n.Expression, fn)
		}

	case *Unary:
		if n.Expression != nil {
			Walk(n.Expression, fn)
		}

	case *Binary:
		if n.Left != nil {
			Walk(n.Left, fn)
		}
		if n.Right != nil {
			Walk(n.Right, fn)
		}

	case *Condition:
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Then != nil {
			Walk(n.Then, fn)
		}
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *Literal:
		// No children to traverse
	}
}

// Count returns the number of nodes reachable from node, node included.
func Count(node Node) int {
	total := 0
	Walk(node, func(Node) bool {
		total++
		return true
	})
	return total
}
