// Package vector implements fixed-size numeric vectors as rbtree payloads.
package vector

import (
	"fmt"
	"strings"

	"github.com/heyLu/edn"

	"github.com/heyLu/treeanalyzer/rbtree"
)

// Vector is a fixed-size numeric vector.
type Vector struct {
	Coeffs []float64
}

func (v *Vector) String() string {
	parts := make([]string, len(v.Coeffs))
	for i, c := range v.Coeffs {
		parts[i] = fmt.Sprintf("%g", c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Norm returns the squared L2 norm of v.
func (v *Vector) Norm() float64 {
	norm := 0.0
	for _, c := range v.Coeffs {
		norm += c * c
	}
	return norm
}

// Compare orders vectors element by element; the vector with the first
// larger element is larger. If one vector is a prefix of the other, the
// shorter one is smaller. Nil vectors or buffers yield zero, a defensive
// non-answer.
func Compare(a, b interface{}) int {
	va, aOk := a.(*Vector)
	vb, bOk := b.(*Vector)
	if !aOk || !bOk || va == nil || vb == nil {
		return 0
	}
	if va.Coeffs == nil || vb.Coeffs == nil {
		return 0
	}

	for i := 0; i < len(va.Coeffs) && i < len(vb.Coeffs); i++ {
		if va.Coeffs[i] < vb.Coeffs[i] {
			return -1
		}
		if va.Coeffs[i] > vb.Coeffs[i] {
			return 1
		}
	}
	return len(va.Coeffs) - len(vb.Coeffs)
}

// Free releases a vector payload's coefficient buffer.
func Free(data interface{}) {
	if v, ok := data.(*Vector); ok && v != nil {
		v.Coeffs = nil
	}
}

// CopyIfLarger is a traversal visitor that copies the visited vector's
// coefficients into the accumulator vector passed as the traversal
// argument if the accumulator is still empty or the visited vector has the
// larger norm.
func CopyIfLarger(data, arg interface{}) bool {
	cur, curOk := data.(*Vector)
	max, maxOk := arg.(*Vector)
	if !curOk || !maxOk || cur == nil || max == nil {
		return false
	}

	if max.Coeffs == nil || cur.Norm() > max.Norm() {
		max.Coeffs = append([]float64{}, cur.Coeffs...)
	}
	return true
}

// FindMaxNorm returns a copy of the vector with the largest norm in the
// tree, or nil if the tree is nil or the traversal was aborted. For an
// empty tree the returned vector has no coefficients.
func FindMaxNorm(t *rbtree.Tree) *Vector {
	if t == nil {
		return nil
	}

	max := &Vector{}
	if !t.ForEach(CopyIfLarger, max) {
		return nil
	}
	return max
}

// FromEDN parses an EDN vector of numbers, e.g. "[1.0 2 3.5]".
func FromEDN(s string) (*Vector, error) {
	val, err := edn.DecodeString(s)
	if err != nil {
		return nil, err
	}

	vals, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("vector must be a list of numbers, but was %v", val)
	}

	coeffs := make([]float64, len(vals))
	for i, v := range vals {
		switch v := v.(type) {
		case int:
			coeffs[i] = float64(v)
		case int64:
			coeffs[i] = float64(v)
		case float32:
			coeffs[i] = float64(v)
		case float64:
			coeffs[i] = v
		default:
			return nil, fmt.Errorf("vector elements must be numbers, but got %v", v)
		}
	}
	return &Vector{coeffs}, nil
}
