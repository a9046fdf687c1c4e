package poly

// Options controls runtime behavior that was a compile-time flag in the
// original C engine.
type Options struct {
	// Paranoid enables the heavier geometric integrity assertions.
	// Kept cheap enough to leave on in debug builds.
	Paranoid bool
	// Debug is carried on the engine but not read by it: Process emits no
	// sweep tracing whatever its value.
	Debug bool
	// DumpDir is where fatal PostScript dumps are written; defaults to the
	// working directory.
	DumpDir string
}

// engine is the per-call workspace: event heap, active list, x-row,
// ending-segments chain, writer sink, and winding context. No state crosses
// a Process call boundary.
type engine struct {
	opts Options

	queue          *eventQueue
	active         *activeList
	xrow           *xRow
	endingSegments []*Segment
	writer         Writer
	rule           WindRule
	ctx            WindContext

	currentPolygon *Polygon // for the fatal dumper only
}

// Process runs the sweep-line engine over the given input polygons under
// rule, with ctx passed through to every rule call, writing output through
// writer. Each element of polygons is treated as a distinct input polygon;
// its strokes' Fill.PolygonNr must match its index for the set-boolean
// rules to see the right bit.
func Process(polygons []*Polygon, rule WindRule, ctx WindContext, writer Writer, opts Options) (result *Polygon, err error) {
	if _, isBitmap := rule.(bitmapRule); isBitmap && len(polygons) > 64 {
		return nil, ErrTooManyPolygons
	}
	if writer == nil {
		writer = NewWriter()
	}

	e := &engine{
		opts:   opts,
		queue:  newEventQueue(),
		active: newActiveList(),
		xrow:   newXRow(),
		writer: writer,
		rule:   rule,
		ctx:    ctx,
	}

	defer func() {
		if r := recover(); r != nil {
			if fp, ok := r.(fatalPanic); ok {
				err = fp.err
				return
			}
			panic(r)
		}
	}()

	var gridSize float64 = 1
	for _, p := range polygons {
		if p == nil {
			continue
		}
		gridSize = p.GridSize
		e.currentPolygon = p
		for _, st := range p.StrokeSlice() {
			e.enqueueStroke(st)
		}
	}
	writer.SetGridSize(gridSize)

	e.run()

	mainResult, err := writer.Finish()
	if err != nil {
		return nil, err
	}

	horiz, err := addHorizontals(mainResult)
	if err != nil {
		return nil, err
	}

	return mergePolygons(mainResult, horiz), nil
}

// enqueueStroke schedules the first segment of a stroke.
func (e *engine) enqueueStroke(st *Stroke) {
	if len(st.Points) < 2 {
		return
	}
	e.enqueueSegment(newSegment(st, 0, st.Points[0], st.Points[1], st.Fill))
}

func (e *engine) enqueueSegment(s *Segment) {
	if s.horizontal {
		e.queue.put(Event{Type: eventHorizontal, P: s.A, S1: s})
	} else {
		e.queue.put(Event{Type: eventStart, P: s.A, S1: s})
	}
}

// advanceStroke enqueues the next segment of s's originating stroke, if
// any segments remain.
func (e *engine) advanceStroke(s *Segment) {
	nextA := s.pointIndex + 1
	nextB := nextA + 1
	if nextB >= len(s.stroke.Points) {
		return
	}
	e.enqueueSegment(newSegment(s.stroke, nextA, s.stroke.Points[nextA], s.stroke.Points[nextB], s.stroke.Fill))
}

// run drives the main sweep loop: pop events in y-batches, apply them,
// snap, recompute windings.
func (e *engine) run() {
	for {
		ev, ok := e.queue.peek()
		if !ok {
			break
		}
		y := ev.P.Y
		e.active.setY(y)
		e.endingSegments = e.endingSegments[:0]

		var sr segRange
		for {
			ev, ok := e.queue.peek()
			if !ok || ev.P.Y != y {
				break
			}
			e.queue.chopMin()
			e.xrow.add(ev.P.X)
			e.applyEvent(ev)
		}

		xs := e.xrow.sorted()
		e.addPointsToPositivelySlopedSegments(xs, y, &sr)
		e.addPointsToNegativelySlopedSegments(xs, y, &sr)
		e.addPointsToEndingSegments(xs, y)
		e.recalculateWindings(&sr)
		if e.opts.Paranoid {
			for _, s := range e.endingSegments {
				if s.pos != s.B {
					e.fatalf("ending segment %d missed its final snap point", s.serial)
				}
			}
		}
		e.xrow.clear()
	}
}

func (e *engine) applyEvent(ev Event) {
	switch ev.Type {
	case eventStart:
		e.applyStart(ev.S1)
	case eventEnd:
		e.applyEnd(ev.S1)
	case eventCross:
		e.applyCross(ev.S1, ev.S2)
	case eventHorizontal:
		e.applyHorizontal(ev.S1)
	}
}

func (e *engine) applyStart(s *Segment) {
	e.active.insert(s)
	if s.Left != nil {
		e.scheduleCrossing(s.Left, s)
	}
	if s.Right != nil {
		e.scheduleCrossing(s, s.Right)
	}
	e.queue.put(Event{Type: eventEnd, P: s.B, S1: s})
}

func (e *engine) applyEnd(s *Segment) {
	left, right := s.Left, s.Right
	e.active.delete(s)
	if left != nil && right != nil {
		e.scheduleCrossing(left, right)
	}
	e.endingSegments = append(e.endingSegments, s)
	e.advanceStroke(s)
}

func (e *engine) applyCross(s1, s2 *Segment) {
	// s1 was the left neighbor and s2 the right when this crossing was
	// scheduled. If an intervening swap has separated them, the crossing is
	// stale: drop it rather than act on out-of-date adjacency.
	if s1.Right != s2 {
		s1.clearCrossingWith(s2)
		return
	}
	e.exchangeTwo(s1, s2)
}

func (e *engine) applyHorizontal(s *Segment) {
	e.intersectWithHorizontal(s)
	e.advanceStroke(s)
}

// intersectWithHorizontal forces every active segment spanning h's x-range
// to receive a snap point at this scanline, so the later horizontal pass
// can reconstruct the chord correctly.
func (e *engine) intersectWithHorizontal(h *Segment) {
	e.xrow.add(h.A.X)
	e.xrow.add(h.B.X)
	lo, hi := minI32(h.A.X, h.B.X), maxI32(h.A.X, h.B.X)
	left := e.active.find(lo)
	right := e.active.find(hi)
	if right == nil || right == left {
		return
	}

	var start *Segment
	if left == nil {
		start = e.active.leftmost()
	} else {
		start = left.Right
	}
	for s := start; s != nil; s = s.Right {
		e.xrow.add(s.xposInt(e.active.y))
		if s == right {
			break
		}
	}
}
