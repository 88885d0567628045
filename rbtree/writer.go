package rbtree

import (
	"fmt"
	"io"

	"github.com/heyLu/fressian"
)

// WriteHandler serializes trees whose payloads fressian already knows how
// to write. Payload packages wrap it with a case for their own type.
var WriteHandler fressian.WriteHandler = func(w *fressian.Writer, val interface{}) error {
	switch val := val.(type) {
	case *Tree:
		var root interface{}
		if val.root != nil {
			root = val.root
		}
		return w.WriteExt("rbtree.Tree", val.size, root)
	case *Node:
		var left, right interface{}
		if val.left != nil {
			left = val.left
		}
		if val.right != nil {
			right = val.right
		}
		return w.WriteExt("rbtree.Node", val.data, val.color, left, right)
	default:
		return fressian.DefaultHandler(w, val)
	}
}

// ReadHandlers reconstructs trees written with WriteHandler. Parent links
// are rebuilt from the child links; the comparison and free functions are
// not serialized, Read attaches new ones.
var ReadHandlers = map[string]fressian.ReadHandler{
	"rbtree.Tree": func(r *fressian.Reader, tag string, fieldCount int) interface{} {
		size, _ := r.ReadValue()
		root, _ := r.ReadValue()
		t := &Tree{size: size.(int)}
		if root != nil {
			t.root = root.(*Node)
		}
		return t
	},
	"rbtree.Node": func(r *fressian.Reader, tag string, fieldCount int) interface{} {
		data, _ := r.ReadValue()
		color, _ := r.ReadValue()
		left, _ := r.ReadValue()
		right, _ := r.ReadValue()
		n := &Node{data: data, color: color.(bool)}
		if left != nil {
			n.left = left.(*Node)
			n.left.parent = n
		}
		if right != nil {
			n.right = right.(*Node)
			n.right.parent = n
		}
		return n
	},
}

// Write serializes t using handler, which defaults to WriteHandler.
func Write(w io.Writer, t *Tree, handler fressian.WriteHandler) error {
	if handler == nil {
		handler = WriteHandler
	}
	fw := fressian.NewWriter(w, handler)
	if err := fw.WriteValue(t); err != nil {
		return err
	}
	return fw.Flush()
}

// Read deserializes a tree using handlers (defaulting to ReadHandlers) and
// attaches compare and free to it.
func Read(r io.Reader, handlers map[string]fressian.ReadHandler, compare CompareFunc, free FreeFunc) (*Tree, error) {
	if handlers == nil {
		handlers = ReadHandlers
	}
	fr := fressian.NewReader(r, handlers)
	val, err := fr.ReadValue()
	if err != nil {
		return nil, err
	}
	t, ok := val.(*Tree)
	if !ok {
		return nil, fmt.Errorf("not a serialized tree: %v", val)
	}
	t.compare = compare
	t.free = free
	return t, nil
}
