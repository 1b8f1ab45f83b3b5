package ast

// Walk visits e and its subtrees in depth-first pre-order. If visit returns
// false the children of that node are skipped.
func Walk(e Expression, visit func(Expression) bool) {
	if e == nil || !visit(e) {
		return
	}
	if b, ok := e.(*Binary); ok {
		Walk(b.Left, visit)
		Walk(b.Right, visit)
	}
}

// Depth returns the height of the tree rooted at e. A constant has depth 1.
func Depth(e Expression) int {
	b, ok := e.(*Binary)
	if !ok {
		return 1
	}
	return 1 + max(Depth(b.Left), Depth(b.Right))
}
