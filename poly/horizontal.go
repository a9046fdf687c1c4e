package poly

import "sort"

// addHorizontals reconstructs the horizontal boundary edges the main sweep
// suppresses. It runs a second, simpler sweep, with endpoints ordered by y
// and then by x, over the main pass's output, tracking an even/odd fill toggle
// regardless of the caller's original rule — the intermediate output is
// already a canonical planar subdivision, so even/odd is sufficient to
// recover exactly the missing horizontal chords.
func addHorizontals(p *Polygon) (*Polygon, error) {
	type vEdge struct {
		a, b Point
		fill *Fill
		dir  Direction
	}
	var edges []vEdge
	for _, st := range p.StrokeSlice() {
		for i := 0; i+1 < len(st.Points); i++ {
			a, b := st.Points[i], st.Points[i+1]
			if a.Y == b.Y {
				continue
			}
			edges = append(edges, vEdge{a: a, b: b, fill: st.Fill, dir: st.Dir})
		}
	}

	type hEvent struct {
		x, y    int32
		edgeIdx int
	}
	events := make([]hEvent, 0, 2*len(edges))
	for idx, ed := range edges {
		events = append(events, hEvent{x: ed.a.X, y: ed.a.Y, edgeIdx: idx})
		events = append(events, hEvent{x: ed.b.X, y: ed.b.Y, edgeIdx: idx})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].y != events[j].y {
			return events[i].y < events[j].y
		}
		return events[i].x < events[j].x
	})

	out := NewWriter()
	out.SetGridSize(p.GridSize)

	i := 0
	for i < len(events) {
		y := events[i].y
		j := i
		fill := false
		var prevX int32
		havePrev := false
		var lastFill *Fill
		var lastDir Direction
		for j < len(events) && events[j].y == y {
			x := events[j].x
			if fill && havePrev && x != prevX {
				out.SetFillStyle(lastFill)
				out.SetDirection(lastDir)
				out.MoveTo(Point{X: prevX, Y: y})
				out.LineTo(Point{X: x, Y: y})
			}
			ed := edges[events[j].edgeIdx]
			lastFill = ed.fill
			lastDir = ed.dir
			fill = !fill
			prevX = x
			havePrev = true
			j++
		}
		i = j
	}

	return out.Finish()
}

// mergePolygons concatenates the strokes of two polygons into one,
// preferring a's GridSize (the two are always identical in practice since
// the horizontal pass is seeded from a's own output).
func mergePolygons(a, b *Polygon) *Polygon {
	strokes := append(a.StrokeSlice(), b.StrokeSlice()...)
	for i := 0; i+1 < len(strokes); i++ {
		strokes[i].Next = strokes[i+1]
	}
	if len(strokes) > 0 {
		strokes[len(strokes)-1].Next = nil
	}
	var head *Stroke
	if len(strokes) > 0 {
		head = strokes[0]
	}
	return &Polygon{Strokes: head, GridSize: a.GridSize}
}
