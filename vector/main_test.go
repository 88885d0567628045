package vector

import (
	"bytes"
	"testing"

	tu "github.com/klingtnet/gol/util/testing"

	"github.com/heyLu/treeanalyzer/rbtree"
)

func v(coeffs ...float64) *Vector {
	return &Vector{coeffs}
}

func TestCompare(t *testing.T) {
	tu.ExpectEqual(t, Compare(v(1, 2), v(1, 3)) < 0, true)
	tu.ExpectEqual(t, Compare(v(2), v(1, 9)) > 0, true)
	tu.ExpectEqual(t, Compare(v(1, 2), v(1, 2)), 0)

	// a shared prefix ties, the shorter vector is smaller
	tu.ExpectEqual(t, Compare(v(1, 2), v(1, 2, 3)) < 0, true)
	tu.ExpectEqual(t, Compare(v(1, 2, 3), v(1, 2)) > 0, true)

	tu.ExpectEqual(t, Compare(nil, v(1)), 0)
	tu.ExpectEqual(t, Compare(&Vector{}, v(1)), 0)
}

func TestNorm(t *testing.T) {
	tu.ExpectEqual(t, v(3, 0).Norm(), 9.0)
	tu.ExpectEqual(t, v(0, 4).Norm(), 16.0)
	tu.ExpectEqual(t, v().Norm(), 0.0)
}

func TestFindMaxNorm(t *testing.T) {
	tree := rbtree.New(Compare, Free)
	for _, vec := range []*Vector{v(3, 0), v(0, 4), v(1, 1)} {
		tu.ExpectEqual(t, tree.Insert(vec), true)
	}

	max := FindMaxNorm(tree)
	tu.RequireNotNil(t, max)
	tu.ExpectEqual(t, max.String(), "[0 4]")
	tu.ExpectEqual(t, max.Norm(), 16.0)

	// the result is a copy, the stored vectors stay untouched
	max.Coeffs[0] = 99
	tu.ExpectEqual(t, tree.Contains(v(0, 4)), true)
}

func TestFindMaxNormEmpty(t *testing.T) {
	max := FindMaxNorm(rbtree.New(Compare, Free))
	tu.RequireNotNil(t, max)
	tu.ExpectEqual(t, len(max.Coeffs), 0)

	tu.ExpectNil(t, FindMaxNorm(nil))
}

func TestCopyIfLargerBadArg(t *testing.T) {
	tree := rbtree.New(Compare, Free)
	tree.Insert(v(1))
	tu.ExpectEqual(t, tree.ForEach(CopyIfLarger, "not a vector"), false)
}

func TestFromEDN(t *testing.T) {
	vec, err := FromEDN("[1 2.5 3]")
	tu.RequireNil(t, err)
	tu.ExpectEqual(t, vec.String(), "[1 2.5 3]")

	vec, err = FromEDN("[]")
	tu.RequireNil(t, err)
	tu.ExpectEqual(t, len(vec.Coeffs), 0)

	_, err = FromEDN("[:a :b]")
	tu.ExpectNotNil(t, err)

	_, err = FromEDN("3")
	tu.ExpectNotNil(t, err)
}

func TestWriting(t *testing.T) {
	tree := rbtree.New(Compare, Free)
	for _, vec := range []*Vector{v(3, 0), v(0, 4), v(1, 1), v(1, 2, 3)} {
		tree.Insert(vec)
	}

	buf := new(bytes.Buffer)
	err := rbtree.Write(buf, tree, WriteHandler)
	tu.RequireNil(t, err)

	tree2, err := rbtree.Read(buf, ReadHandlers, Compare, Free)
	tu.RequireNil(t, err)
	tu.ExpectEqual(t, tree.Len(), tree2.Len())
	tu.ExpectEqual(t, tree2.Contains(v(1, 2, 3)), true)

	max := FindMaxNorm(tree2)
	tu.RequireNotNil(t, max)
	tu.ExpectEqual(t, max.String(), "[0 4]")
}
