package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gfxpoly/sweep/poly"
)

// pointDoc is the JSON wire shape of a poly.Point.
type pointDoc struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// strokeDoc is the JSON wire shape of a poly.Stroke. Dir is inferred from
// point order by toPolygons, not read from the document.
type strokeDoc struct {
	Points []pointDoc `json:"points"`
}

// polygonDoc is one input polygon: its strokes plus the polygon index used
// to set the corresponding winding-bitmap bit for set-boolean rules.
type polygonDoc struct {
	PolygonNr int         `json:"polygonNr"`
	Strokes   []strokeDoc `json:"strokes"`
}

// document is the full JSON input accepted by the process/check/dump
// subcommands.
type document struct {
	GridSize float64      `json:"gridSize"`
	Polygons []polygonDoc `json:"polygons"`
}

func readDocument(r io.Reader) (*document, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.GridSize <= 0 {
		doc.GridSize = 1
	}
	return &doc, nil
}

// toPolygons converts the document into the per-polygon poly.Polygon slice
// Process expects, splitting each stroke's points into y-monotone runs so
// NewStroke's invariant always holds regardless of the document's point
// order.
func (doc *document) toPolygons() ([]*poly.Polygon, error) {
	polygons := make([]*poly.Polygon, 0, len(doc.Polygons))
	for _, pd := range doc.Polygons {
		fill := &poly.Fill{PolygonNr: pd.PolygonNr}
		var strokes []*poly.Stroke
		for _, sd := range pd.Strokes {
			pts := make([]poly.Point, len(sd.Points))
			for i, p := range sd.Points {
				pts[i] = poly.Point{X: p.X, Y: p.Y}
			}
			for _, run := range splitMonotone(pts) {
				st, err := poly.NewStroke(run.points, run.dir, fill)
				if err != nil {
					return nil, err
				}
				strokes = append(strokes, st)
			}
		}
		p, err := poly.NewPolygon(doc.GridSize, strokes...)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, p)
	}
	return polygons, nil
}

type monotoneRun struct {
	points []poly.Point
	dir    poly.Direction
}

// splitMonotone breaks a chain at every direction reversal in y, since
// NewStroke requires consecutive points to satisfy points[i].Y <= points[i+1].Y.
func splitMonotone(pts []poly.Point) []monotoneRun {
	if len(pts) < 2 {
		return nil
	}
	var runs []monotoneRun
	start := 0
	dir := directionOf(pts[0], pts[1])
	for i := 1; i+1 < len(pts); i++ {
		next := directionOf(pts[i], pts[i+1])
		if next != dir {
			runs = append(runs, newRun(pts[start:i+1], dir))
			start = i
			dir = next
		}
	}
	runs = append(runs, newRun(pts[start:], dir))
	return runs
}

func directionOf(a, b poly.Point) poly.Direction {
	if b.Y < a.Y {
		return poly.Down
	}
	return poly.Up
}

// newRun reorders pts so they satisfy the monotone-increasing-y invariant
// regardless of the chain's original direction.
func newRun(pts []poly.Point, dir poly.Direction) monotoneRun {
	if dir == poly.Up {
		cp := make([]poly.Point, len(pts))
		copy(cp, pts)
		return monotoneRun{points: cp, dir: dir}
	}
	cp := make([]poly.Point, len(pts))
	for i, p := range pts {
		cp[len(pts)-1-i] = p
	}
	return monotoneRun{points: cp, dir: dir}
}

// fromPolygon converts an engine result back into the wire document shape.
func fromPolygon(p *poly.Polygon) *document {
	doc := &document{GridSize: p.GridSize}
	byPolygon := map[int]*polygonDoc{}
	for _, st := range p.StrokeSlice() {
		nr := 0
		if st.Fill != nil {
			nr = st.Fill.PolygonNr
		}
		pd, ok := byPolygon[nr]
		if !ok {
			pd = &polygonDoc{PolygonNr: nr}
			byPolygon[nr] = pd
		}
		sd := strokeDoc{Points: make([]pointDoc, len(st.Points))}
		for i, p := range st.Points {
			sd.Points[i] = pointDoc{X: p.X, Y: p.Y}
		}
		pd.Strokes = append(pd.Strokes, sd)
	}
	for _, pd := range byPolygon {
		doc.Polygons = append(doc.Polygons, *pd)
	}
	return doc
}

func writeDocument(w io.Writer, doc *document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
