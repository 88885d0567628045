// Package rbtree implements a mutable red-black tree over caller-supplied
// comparison and free functions.
package rbtree

// CompareFunc compares two payloads, returning a number less than zero if
// a < b, zero if they are equal and a number greater than zero if a > b.
type CompareFunc func(a, b interface{}) int

// FreeFunc releases a payload's resources. It is called exactly once per
// stored payload when the tree is destroyed.
type FreeFunc func(data interface{})

// VisitFunc is called for every payload during ForEach, smallest first.
// Returning false aborts the traversal.
type VisitFunc func(data, arg interface{}) bool

const (
	black = true
	red   = false
)

type side int

const (
	sideNone  side = 0
	sideLeft  side = -1
	sideRight side = 1
)

// Node holds one payload. left and right are the owned children, parent is
// a back-reference used during rebalancing only.
type Node struct {
	data   interface{}
	color  bool
	left   *Node
	right  *Node
	parent *Node
}

// Tree is a red-black tree. Elements are unique and ordered by the
// comparison function given to New.
type Tree struct {
	root    *Node
	compare CompareFunc
	free    FreeFunc
	size    int
}

// New creates an empty tree ordered by compare. free may be nil if payloads
// hold no resources. A nil compare yields a nil tree.
func New(compare CompareFunc, free FreeFunc) *Tree {
	if compare == nil {
		return nil
	}
	return &Tree{compare: compare, free: free}
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert adds data to the tree. It returns false and leaves the tree
// unchanged if an equal payload is already present, or if the tree or the
// payload is nil.
func (t *Tree) Insert(data interface{}) bool {
	if t == nil || data == nil {
		return false
	}

	n := &Node{data: data, color: red}
	if t.root == nil {
		t.root = n
	} else if !t.root.add(n, t.compare) {
		return false
	}
	t.rebalance(n)
	t.size += 1
	return true
}

// add descends from n and attaches newNode as a red leaf, returning false
// if a node comparing equal to newNode's payload is already present.
func (n *Node) add(newNode *Node, compare CompareFunc) bool {
	c := compare(newNode.data, n.data)
	if c == 0 {
		return false
	}

	if c < 0 {
		if n.left == nil {
			n.left = newNode
			newNode.parent = n
			return true
		}
		return n.left.add(newNode, compare)
	}

	if n.right == nil {
		n.right = newNode
		newNode.parent = n
		return true
	}
	return n.right.add(newNode, compare)
}

// rebalance restores the red-black invariants after n was inserted. The
// red-uncle case recolors and re-runs at the grandparent; the black-uncle
// case is fixed by a single rotation sequence.
func (t *Tree) rebalance(n *Node) {
	if n == t.root {
		n.color = black
		return
	}

	parent := n.parent
	if parent.color == black {
		return
	}

	// parent is red, so it is not the root and the grandparent exists
	grandparent := parent.parent
	uncle := t.uncle(n)
	if uncle != nil && uncle.color == red {
		parent.color = black
		uncle.color = black
		grandparent.color = red
		t.rebalance(grandparent)
		return
	}

	t.rotate(n, parent, grandparent)
}

// uncle returns the sibling of n's parent, which may be nil. n must have a
// grandparent.
func (t *Tree) uncle(n *Node) *Node {
	if t.childSide(n.parent) == sideRight {
		return n.parent.parent.left
	}
	return n.parent.parent.right
}

// childSide reports whether n is a left or a right child of its parent,
// checked through the comparator rather than pointer identity. The root is
// on no side.
func (t *Tree) childSide(n *Node) side {
	parent := n.parent
	if parent == nil {
		return sideNone
	}
	if parent.right != nil && t.compare(parent.right.data, n.data) == 0 {
		return sideRight
	}
	return sideLeft
}

// rotate fixes the red-parent, black-uncle violation at n. The inner LR and
// RL shapes are first rotated into the outer ones, then a single rotation
// at the grandparent finishes; no further propagation is needed.
func (t *Tree) rotate(n, parent, grandparent *Node) {
	nSide := t.childSide(n)
	switch t.childSide(parent) {
	case sideLeft:
		if nSide == sideRight {
			rotateLR(n, parent, grandparent)
			parent = n
		}
		t.rotateLL(parent, grandparent)
	case sideRight:
		if nSide == sideLeft {
			rotateRL(n, parent, grandparent)
			parent = n
		}
		t.rotateRR(parent, grandparent)
	}
	parent.color = black
	grandparent.color = red
}

// rotateLR rotates n left into its parent's position, turning the inner
// left-right shape into a left-left one.
func rotateLR(n, parent, grandparent *Node) {
	parent.right = n.left
	if n.left != nil {
		n.left.parent = parent
	}
	n.left = parent
	parent.parent = n
	n.parent = grandparent
	grandparent.left = n
}

// rotateLL rotates right at the grandparent, lifting parent into its place.
func (t *Tree) rotateLL(parent, grandparent *Node) {
	parent.parent = grandparent.parent
	if parent.parent == nil {
		t.root = parent
	} else if t.childSide(grandparent) == sideRight {
		grandparent.parent.right = parent
	} else {
		grandparent.parent.left = parent
	}
	grandparent.left = parent.right
	if parent.right != nil {
		parent.right.parent = grandparent
	}
	parent.right = grandparent
	grandparent.parent = parent
}

// rotateRL is the mirror of rotateLR.
func rotateRL(n, parent, grandparent *Node) {
	parent.left = n.right
	if n.right != nil {
		n.right.parent = parent
	}
	n.right = parent
	parent.parent = n
	n.parent = grandparent
	grandparent.right = n
}

// rotateRR is the mirror of rotateLL.
func (t *Tree) rotateRR(parent, grandparent *Node) {
	parent.parent = grandparent.parent
	if parent.parent == nil {
		t.root = parent
	} else if t.childSide(grandparent) == sideRight {
		grandparent.parent.right = parent
	} else {
		grandparent.parent.left = parent
	}
	grandparent.right = parent.left
	if parent.left != nil {
		parent.left.parent = grandparent
	}
	parent.left = grandparent
	grandparent.parent = parent
}

// Contains reports whether a payload comparing equal to data is in the
// tree. It never mutates the tree.
func (t *Tree) Contains(data interface{}) bool {
	if t == nil || data == nil {
		return false
	}

	n := t.root
	for n != nil && n.data != nil {
		c := t.compare(n.data, data)
		if c == 0 {
			return true
		}
		if c > 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// ForEach calls visit on every payload in ascending order, passing arg
// through unchanged. It stops at the first visit returning false and
// returns true iff every payload was visited.
func (t *Tree) ForEach(visit VisitFunc, arg interface{}) bool {
	if t == nil || visit == nil {
		return false
	}
	if t.root == nil {
		return true
	}
	return t.root.each(visit, arg)
}

func (n *Node) each(visit VisitFunc, arg interface{}) bool {
	if n.left != nil && !n.left.each(visit, arg) {
		return false
	}
	if !visit(n.data, arg) {
		return false
	}
	if n.right != nil && !n.right.each(visit, arg) {
		return false
	}
	return true
}

// Destroy releases every node post-order, calling the free function exactly
// once per payload. The tree must not be used afterwards.
func (t *Tree) Destroy() {
	if t == nil {
		return
	}
	if t.root != nil {
		t.root.freeNodes(t.free)
		t.root = nil
	}
	t.size = 0
}

func (n *Node) freeNodes(free FreeFunc) {
	if n.left != nil {
		n.left.freeNodes(free)
	}
	if n.right != nil {
		n.right.freeNodes(free)
	}
	if n.data != nil && free != nil {
		free(n.data)
	}
	n.data = nil
	n.left = nil
	n.right = nil
	n.parent = nil
}
