package poly

import "testing"

func TestCheckClosedSquare(t *testing.T) {
	fill := &Fill{PolygonNr: 0}
	strokes := monotoneStrokesForCheck(t, fill, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	p, err := NewPolygon(1, strokes...)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	ok, err := Check(p)
	if !ok || err != nil {
		t.Fatalf("closed square should check out: ok=%v err=%v", ok, err)
	}
}

func TestCheckOpenChainFails(t *testing.T) {
	fill := &Fill{PolygonNr: 0}
	st, err := NewStroke([]Point{{0, 0}, {10, 10}}, Up, fill)
	if err != nil {
		t.Fatalf("NewStroke: %v", err)
	}
	p, err := NewPolygon(1, st)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	ok, err := Check(p)
	if ok || err == nil {
		t.Fatalf("a single open chain must fail Check")
	}
	var uc *UnclosedPointError
	if !asUnclosedPointError(err, &uc) {
		t.Fatalf("expected *UnclosedPointError, got %T", err)
	}
}

// monotoneStrokesForCheck delegates to monotoneStrokes, the sweep test
// helper in sweep_test.go.
func monotoneStrokesForCheck(t *testing.T, fill *Fill, loop []Point) []*Stroke {
	t.Helper()
	return monotoneStrokes(t, fill, loop)
}

func asUnclosedPointError(err error, target **UnclosedPointError) bool {
	uc, ok := err.(*UnclosedPointError)
	if ok {
		*target = uc
	}
	return ok
}
