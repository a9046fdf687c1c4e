package poly

// scheduleCrossing checks adjacent active-list segments s1 (left), s2
// (right) for a future crossing and, if found, enqueues a CROSS event and
// records the partnership so it isn't scheduled twice.
func (e *engine) scheduleCrossing(s1, s2 *Segment) {
	if s1 == nil || s2 == nil {
		return
	}
	if s1.maxx <= s2.minx {
		return
	}
	if s1.hasScheduledCrossing(s2) {
		return
	}

	det := s1.deltaX*s2.deltaY - s1.deltaY*s2.deltaX
	if det == 0 {
		// Either collinear overlap (s1.k == s2.k) or parallel; neither
		// schedules a crossing.
		return
	}

	asign2 := LineEq(s1.A, s2.A, s2.B)
	bsign2 := LineEq(s1.B, s2.A, s2.B)
	if (asign2 < 0 && bsign2 < 0) || (asign2 > 0 && bsign2 > 0) {
		return
	}
	if asign2 == 0 || bsign2 == 0 {
		return // touch only
	}

	asign1 := LineEq(s2.A, s1.A, s1.B)
	bsign1 := LineEq(s2.B, s1.A, s1.B)
	if (asign1 < 0 && bsign1 < 0) || (asign1 > 0 && bsign1 > 0) {
		return
	}
	if asign1 == 0 || bsign1 == 0 {
		return
	}

	la := int64(s1.A.X)*int64(s1.B.Y) - int64(s1.A.Y)*int64(s1.B.X)
	lb := int64(s2.A.X)*int64(s2.B.Y) - int64(s2.A.Y)*int64(s2.B.X)
	px := ceilDivInt64(-la*s2.deltaX+lb*s1.deltaX, det)
	py := ceilDivInt64(lb*s1.deltaY-la*s2.deltaY, det)
	p := Point{X: int32(px), Y: int32(py)}

	if e.opts.Paranoid && p.Y < e.active.y {
		e.fatalf("crossing of segments %d/%d scheduled above the current scanline", s1.serial, s2.serial)
	}

	s1.scheduleCrossingWith(s2)
	e.queue.put(Event{Type: eventCross, P: p, S1: s1, S2: s2})
}

// exchangeTwo swaps adjacent s1 (left), s2 (right) in the active list and
// reschedules crossings against their new outer neighbors.
func (e *engine) exchangeTwo(s1, s2 *Segment) {
	e.active.swap(s1, s2)
	if left := s2.Left; left != nil {
		e.scheduleCrossing(left, s2)
	}
	if right := s1.Right; right != nil {
		e.scheduleCrossing(s1, right)
	}
}

// ceilDivInt64 returns ceil(num/den) for int64 operands of either sign.
func ceilDivInt64(num, den int64) int64 {
	q := num / den
	r := num % den
	if r != 0 && (r > 0) == (den > 0) {
		q++
	}
	return q
}
