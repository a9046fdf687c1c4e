package poly

import "testing"

func TestCoalescingWriterMergesContinuousEdges(t *testing.T) {
	w := NewWriter()
	w.SetGridSize(2)
	fs := &Fill{PolygonNr: 0}
	w.SetFillStyle(fs)
	w.SetDirection(Up)

	w.MoveTo(Point{0, 0})
	w.LineTo(Point{0, 5})
	w.MoveTo(Point{0, 5}) // continues the same chain
	w.LineTo(Point{5, 5})

	p, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	strokes := p.StrokeSlice()
	if len(strokes) != 1 {
		t.Fatalf("expected edges with a shared endpoint, fill, and direction to coalesce into one stroke, got %d", len(strokes))
	}
	want := []Point{{0, 0}, {0, 5}, {5, 5}}
	got := strokes[0].Points
	if len(got) != len(want) {
		t.Fatalf("stroke points = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stroke points = %v, want %v", got, want)
		}
	}
}

func TestCoalescingWriterBreaksOnFillChange(t *testing.T) {
	w := NewWriter()
	fsA := &Fill{PolygonNr: 0}
	fsB := &Fill{PolygonNr: 1}

	w.SetFillStyle(fsA)
	w.SetDirection(Up)
	w.MoveTo(Point{0, 0})
	w.LineTo(Point{0, 5})

	w.SetFillStyle(fsB)
	w.MoveTo(Point{0, 5})
	w.LineTo(Point{5, 5})

	p, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(p.StrokeSlice()) != 2 {
		t.Fatalf("a fillstyle change must start a new stroke even at a shared endpoint")
	}
}
