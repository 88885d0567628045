package vector

import (
	"github.com/heyLu/fressian"

	"github.com/heyLu/treeanalyzer/rbtree"
)

// WriteHandler extends the tree handler with vector payloads.
var WriteHandler fressian.WriteHandler = func(w *fressian.Writer, val interface{}) error {
	switch val := val.(type) {
	case *Vector:
		coeffs := make([]interface{}, len(val.Coeffs))
		for i, c := range val.Coeffs {
			coeffs[i] = c
		}
		return w.WriteExt("vector.Vector", coeffs)
	default:
		return rbtree.WriteHandler(w, val)
	}
}

var ReadHandlers = map[string]fressian.ReadHandler{
	"vector.Vector": func(r *fressian.Reader, tag string, fieldCount int) interface{} {
		coeffsRaw, _ := r.ReadValue()
		coeffs := make([]float64, len(coeffsRaw.([]interface{})))
		for i, c := range coeffsRaw.([]interface{}) {
			switch c := c.(type) {
			case int:
				coeffs[i] = float64(c)
			case float64:
				coeffs[i] = c
			}
		}
		return &Vector{coeffs}
	},
	"rbtree.Tree": rbtree.ReadHandlers["rbtree.Tree"],
	"rbtree.Node": rbtree.ReadHandlers["rbtree.Node"],
}
