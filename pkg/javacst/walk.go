package javacst

// WalkFunc is the function signature for Walk callbacks.
// Return false to prune the node's subtree from the traversal.
type WalkFunc func(n Node) bool

// Walk performs a pre-order traversal starting at root: each node is
// visited before its children, and children are visited in source order.
// Anonymous token nodes are included.
func Walk(root Node, walkFunc WalkFunc) {
	if !walkFunc(root) {
		return
	}
	for i := 0; i < root.ChildCount(); i++ {
		child, ok := root.Child(i)
		if !ok {
			continue
		}
		Walk(child, walkFunc)
	}
}

// FindAll returns all nodes under root matching the predicate, in
// pre-order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node
	Walk(root, func(n Node) bool {
		if predicate(n) {
			result = append(result, n)
		}
		return true
	})
	return result
}

// FindFirst returns the first node matching the predicate in pre-order.
func FindFirst(root Node, predicate func(n Node) bool) (Node, bool) {
	var found Node
	ok := false
	Walk(root, func(n Node) bool {
		if ok {
			return false
		}
		if predicate(n) {
			found = n
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// FindByKind returns all nodes of the given kind name under root.
func FindByKind(root Node, kind string) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Kind() == kind
	})
}
