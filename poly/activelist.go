package poly

// activeList is the ordered sequence of non-horizontal segments currently
// crossing the sweep line, sorted by x-intercept at the current y. It is an
// intrusive doubly-linked list threaded through Segment.Left/Right: the
// sort key (x-intercept) is a function of the current scanline, so a
// balanced tree's stored keys would go stale between scanlines. Order is
// invariant except at explicit, handled crossing swaps (see exchangeTwo in
// crossing.go), which is exactly what the linked-list approach is good at.
type activeList struct {
	head, tail *Segment
	last       *Segment // cache for find(): most recently touched node
	y          int32    // current sweep-line y, for intercept comparisons
}

func newActiveList() *activeList {
	return &activeList{}
}

func (al *activeList) setY(y int32) {
	al.y = y
}

// intercept returns s's x-intercept at the active list's current y.
func (al *activeList) intercept(s *Segment) float64 {
	return s.xpos(al.y)
}

// less orders two segments by x-intercept at the current y, breaking ties
// by slope so that segments about to diverge to the right compare greater.
func (al *activeList) less(s1, s2 *Segment) bool {
	x1, x2 := al.intercept(s1), al.intercept(s2)
	if x1 != x2 {
		return x1 < x2
	}
	// Tie at the current scanline: compare by slope via LineEq against s2.
	return LineEq(s1.B, s2.A, s2.B) > 0
}

// find returns the rightmost segment whose x-intercept at the current y is
// <= x. A nil result means every active segment lies to the right (or the
// list is empty).
func (al *activeList) find(x int32) *Segment {
	probeX := float64(x)
	var result *Segment
	start := al.last
	if start == nil {
		start = al.head
	}
	// Walk from the cached position toward the correct side; this is a
	// plain O(n) fallback but the working set in one scanline's snap pass
	// is visited in x-order already, so it amortizes to near-O(1) per call.
	if start != nil && al.intercept(start) > probeX {
		for s := start; s != nil; s = s.Left {
			if al.intercept(s) <= probeX {
				result = s
				break
			}
		}
	} else {
		for s := start; s != nil; s = s.Right {
			if al.intercept(s) > probeX {
				break
			}
			result = s
		}
	}
	if result != nil {
		al.last = result
	}
	return result
}

func (al *activeList) leftmost() *Segment  { return al.head }
func (al *activeList) rightmost() *Segment { return al.tail }

// insert places s into the list in sorted order relative to its current
// x-intercept.
func (al *activeList) insert(s *Segment) {
	if al.head == nil {
		al.head, al.tail = s, s
		al.last = s
		return
	}
	var after *Segment
	for n := al.head; n != nil; n = n.Right {
		if al.less(s, n) {
			break
		}
		after = n
	}
	if after == nil {
		s.Right = al.head
		al.head.Left = s
		al.head = s
	} else if after.Right == nil {
		after.Right = s
		s.Left = after
		al.tail = s
	} else {
		s.Right = after.Right
		s.Left = after
		after.Right.Left = s
		after.Right = s
	}
	al.last = s
}

// delete removes s from the list, leaving its own Left/Right untouched for
// callers that still need the former neighbors.
func (al *activeList) delete(s *Segment) {
	if s.Left != nil {
		s.Left.Right = s.Right
	} else {
		al.head = s.Right
	}
	if s.Right != nil {
		s.Right.Left = s.Left
	} else {
		al.tail = s.Left
	}
	if al.last == s {
		al.last = s.Left
		if al.last == nil {
			al.last = s.Right
		}
	}
}

// swap exchanges two adjacent segments s1 (left), s2 (right) in place.
func (al *activeList) swap(s1, s2 *Segment) {
	left, right := s1.Left, s2.Right
	if left != nil {
		left.Right = s2
	} else {
		al.head = s2
	}
	if right != nil {
		right.Left = s1
	} else {
		al.tail = s1
	}
	s2.Left = left
	s1.Right = right
	s2.Right = s1
	s1.Left = s2
	al.last = s1
}
