package poly

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
)

func int32Comparator(a, b interface{}) int {
	x, y := a.(int32), b.(int32)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// xRow is the per-scanline collection of distinct integer x coordinates
// requiring a snap point, backed by a gods red-black-tree-based set so that
// adding a duplicate is a no-op and values come out pre-sorted.
type xRow struct {
	set *treeset.Set
}

func newXRow() *xRow {
	return &xRow{set: treeset.NewWith(int32Comparator)}
}

func (r *xRow) add(x int32) {
	r.set.Add(x)
}

// sorted returns the distinct x values in ascending order.
func (r *xRow) sorted() []int32 {
	vals := r.set.Values()
	out := make([]int32, len(vals))
	for i, v := range vals {
		out[i] = v.(int32)
	}
	// treeset.Values() already returns in-order; sort defensively since the
	// comparator contract is all that's guaranteed across gods versions.
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *xRow) clear() {
	r.set.Clear()
}

func (r *xRow) empty() bool {
	return r.set.Empty()
}

// boxAt builds the snap box for x-row value x at scanline y.
func (r *xRow) boxAt(x, y int32) box {
	return newBox(x, y)
}
