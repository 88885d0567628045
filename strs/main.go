// Package strs provides string payload policies for rbtree.
package strs

import (
	"bytes"
	"strings"
)

// Compare orders string payloads lexicographically, byte-wise.
func Compare(a, b interface{}) int {
	return strings.Compare(a.(string), b.(string))
}

// Free releases a string payload. Strings hold no resources beyond their
// bytes, so this only exists to satisfy the tree's free function slot.
func Free(data interface{}) {}

// Concat is a traversal visitor that appends the visited word and a
// newline to the *bytes.Buffer passed as the traversal argument.
func Concat(word, arg interface{}) bool {
	buf, ok := arg.(*bytes.Buffer)
	if !ok || word == nil {
		return false
	}
	buf.WriteString(word.(string))
	buf.WriteByte('\n')
	return true
}
