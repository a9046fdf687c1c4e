package poly

// segRange conservatively brackets the active-list range that might need a
// winding recompute after one scanline's snap passes.
type segRange struct {
	min, max *Segment
	has      bool
}

func (r *segRange) touch(s *Segment, al *activeList) {
	if !r.has {
		r.min, r.max, r.has = s, s, true
		return
	}
	if al.intercept(s) < al.intercept(r.min) {
		r.min = s
	}
	if al.intercept(s) > al.intercept(r.max) {
		r.max = s
	}
}

// adjustEndpoints extends the range across any segments tied in x-intercept
// with its current boundary, since windings for tied segments at this
// scanline can only be resolved together.
func (r *segRange) adjustEndpoints(al *activeList) {
	if !r.has {
		return
	}
	for r.min.Left != nil && al.intercept(r.min.Left) == al.intercept(r.min) {
		r.min = r.min.Left
	}
	for r.max.Right != nil && al.intercept(r.max.Right) == al.intercept(r.max) {
		r.max = r.max.Right
	}
}

// addPointsToPositivelySlopedSegments walks each xrow value left to right,
// locating the active segment whose intercept brackets the snap box from
// the left and then visiting every subsequent segment in x-order, ignoring
// (but not stopping at) segments whose slope isn't positive. The walk can't
// stop early at the first segment outside the box: the active list is
// ordered by intercept at the bottom of the current scanline, so segments
// further along can still reach into the box even after one doesn't.
func (e *engine) addPointsToPositivelySlopedSegments(xs []int32, y int32, sr *segRange) {
	for _, x := range xs {
		b := newBox(x, y)
		anchor := e.active.find(b.left2.X)
		var s *Segment
		if anchor == nil {
			s = e.active.leftmost()
		} else {
			s = anchor.Right
		}
		for ; s != nil; s = s.Right {
			if !s.slopePositive() {
				continue
			}
			if s.A.Y == y {
				s.changed = true
				sr.touch(s, e.active)
				continue
			}
			d1 := LineEq(b.right1, s.A, s.B)
			d2 := LineEq(b.right2, s.A, s.B)
			if d1 > 0 || d2 >= 0 {
				e.insertPointIntoSegment(s, b.right2)
				s.changed = true
				sr.touch(s, e.active)
			}
		}
	}
}

// addPointsToNegativelySlopedSegments is the mirror pass, scanning xrow
// values right to left and walking leftward, ignoring (but not stopping at)
// segments whose slope isn't negative-or-vertical, for the same reason the
// positive pass can't stop early.
func (e *engine) addPointsToNegativelySlopedSegments(xs []int32, y int32, sr *segRange) {
	for i := len(xs) - 1; i >= 0; i-- {
		x := xs[i]
		b := newBox(x, y)
		anchor := e.active.find(b.right2.X)
		var s *Segment
		if anchor == nil {
			s = e.active.rightmost()
		} else {
			s = anchor
		}
		for ; s != nil; s = s.Left {
			if !s.slopeNegativeOrVertical() {
				continue
			}
			if s.A.Y == y {
				s.changed = true
				sr.touch(s, e.active)
				continue
			}
			d1 := LineEq(b.left1, s.A, s.B)
			d2 := LineEq(b.left2, s.A, s.B)
			if d1 < 0 || d2 < 0 {
				e.insertPointIntoSegment(s, b.left2)
				s.changed = true
				sr.touch(s, e.active)
			}
		}
	}
}

// addPointsToEndingSegments snaps segments that already left the active
// list this scanline. They're no longer reachable via Left/Right, so each
// is tested directly against every xrow snap box.
func (e *engine) addPointsToEndingSegments(xs []int32, y int32) {
	for _, s := range e.endingSegments {
		for _, x := range xs {
			b := newBox(x, y)
			if s.slopeNegativeOrVertical() {
				d1 := LineEq(b.left1, s.A, s.B)
				d2 := LineEq(b.left2, s.A, s.B)
				if d1 < 0 || d2 < 0 {
					e.insertPointIntoSegment(s, b.left2)
				}
				continue
			}
			d1 := LineEq(b.right1, s.A, s.B)
			d2 := LineEq(b.right2, s.A, s.B)
			if d1 > 0 || d2 >= 0 {
				e.insertPointIntoSegment(s, b.right2)
			}
		}
	}
}

// recalculateWindings recomputes wind state and fillstyle-out for every
// changed segment in [sr.min, sr.max], extended across x-intercept ties,
// propagating left to right so each segment sees its true left neighbor's
// up-to-date wind state.
func (e *engine) recalculateWindings(sr *segRange) {
	if !sr.has {
		return
	}
	sr.adjustEndpoints(e.active)

	leftWind := e.rule.Start(e.ctx)
	if sr.min.Left != nil {
		leftWind = sr.min.Left.Wind
	}

	for s := sr.min; ; s = s.Right {
		if s.changed {
			newWind := e.rule.Add(e.ctx, leftWind, s.Fill(), s.Dir, s.PolygonNr())
			s.FSOut = e.rule.Diff(leftWind, newWind)
			s.Wind = newWind
			s.changed = false
		}
		leftWind = s.Wind
		if s == sr.max {
			break
		}
	}
}

// insertPointIntoSegment appends an output edge from s.pos to p if s
// currently contributes to the output and the edge isn't horizontal
// (horizontals are reconstructed in the separate horizontal pass), then
// advances s.pos to p.
func (e *engine) insertPointIntoSegment(s *Segment, p Point) {
	if e.opts.Paranoid && LineEq(p, s.A, s.B) != 0 {
		e.fatalf("snap point %v does not lie on segment %d", p, s.serial)
	}
	if s.FSOut != nil && s.pos.Y != p.Y {
		e.writer.SetFillStyle(s.FSOut)
		e.writer.SetDirection(s.Dir)
		e.writer.MoveTo(s.pos)
		e.writer.LineTo(p)
	}
	s.pos = p
}
