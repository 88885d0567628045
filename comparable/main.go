package Comparable

import (
	"strings"
)

type Comparable interface {
	Compare(Comparable) int
}

func Lt(a, b Comparable) bool  { return a.Compare(b) < 0 }
func Lte(a, b Comparable) bool { return a.Compare(b) <= 0 }
func Gt(a, b Comparable) bool  { return a.Compare(b) > 0 }
func Gte(a, b Comparable) bool { return a.Compare(b) >= 0 }
func Eq(a, b Comparable) bool  { return a.Compare(b) == 0 }
func Neq(a, b Comparable) bool { return a.Compare(b) != 0 }

// Cmp compares two Comparable payloads, matching the shape of
// rbtree.CompareFunc.
func Cmp(a, b interface{}) int {
	return a.(Comparable).Compare(b.(Comparable))
}

type Int int

func (i Int) Compare(c Comparable) int {
	return int(i - c.(Int))
}

type String string

func (s String) Compare(c Comparable) int {
	return strings.Compare(string(s), string(c.(String)))
}
