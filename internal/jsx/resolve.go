package jsx

// Inspect traverses the tree rooted at n in pre-order, calling fn for each
// node. When fn returns false the node's children are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Inspect(child, fn)
	}
}

// Elements returns every element in the tree in pre-order.
func Elements(root Node) []*Element {
	var out []*Element
	Inspect(root, func(n Node) bool {
		if el, ok := n.(*Element); ok {
			out = append(out, el)
		}
		return true
	})
	return out
}

// NodeAt returns the smallest node whose span contains offset. When two
// candidates have the same length the one visited later wins, so the
// innermost node is preferred. Subtrees that do not contain offset are
// skipped; a child's span never exceeds its parent's.
func NodeAt(root Node, offset int) Node {
	var best Node
	Inspect(root, func(n Node) bool {
		sp := n.Span()
		if !sp.Contains(offset) {
			return false
		}
		if best == nil || sp.Len() <= best.Span().Len() {
			best = n
		}
		return true
	})
	return best
}

// FindStyledElementAt returns the innermost element around offset whose
// `style` attribute is an object literal, or nil.
func FindStyledElementAt(root Node, offset int) *Element {
	return ancestorElement(NodeAt(root, offset), func(el *Element) bool {
		_, obj := el.StyleObject()
		return obj != nil
	})
}

// FindAnyElementAt returns the innermost named element around offset,
// regardless of its attributes.
func FindAnyElementAt(root Node, offset int) *Element {
	return ancestorElement(NodeAt(root, offset), func(el *Element) bool {
		return el.Name != ""
	})
}

func ancestorElement(n Node, match func(*Element) bool) *Element {
	for ; n != nil; n = n.Parent() {
		if el, ok := n.(*Element); ok && match(el) {
			return el
		}
	}
	return nil
}
