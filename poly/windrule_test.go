package poly

import "testing"

func TestEvenOddRule(t *testing.T) {
	rule := EvenOddRule
	fsA := &Fill{PolygonNr: 0, Tag: "A"}

	outside := rule.Start(nil)
	if outside.IsFilled {
		t.Fatalf("start state should be unfilled")
	}
	inside := rule.Add(nil, outside, fsA, Up, 0)
	if !inside.IsFilled {
		t.Fatalf("even/odd should toggle to filled after one edge")
	}
	if got := rule.Diff(outside, inside); got != fsA {
		t.Fatalf("Diff should return the fillstyle that just became filled")
	}

	outsideAgain := rule.Add(nil, inside, fsA, Up, 0)
	if outsideAgain.IsFilled {
		t.Fatalf("even/odd should toggle back to unfilled after a second edge")
	}
	if got := rule.Diff(inside, outsideAgain); got != fsA {
		t.Fatalf("Diff should return the fillstyle of the region that stopped being filled")
	}
}

func TestNonZeroRule(t *testing.T) {
	rule := NonZeroRule
	fs := &Fill{PolygonNr: 0}

	w := rule.Start(nil)
	w = rule.Add(nil, w, fs, Up, 0)
	if w.WindNr != 1 || !w.IsFilled {
		t.Fatalf("one up edge should give WindNr=1, filled")
	}
	w = rule.Add(nil, w, fs, Up, 0)
	if w.WindNr != 2 || !w.IsFilled {
		t.Fatalf("two up edges should give WindNr=2, filled")
	}
	w = rule.Add(nil, w, fs, Down, 0)
	w = rule.Add(nil, w, fs, Down, 0)
	if w.WindNr != 0 || w.IsFilled {
		t.Fatalf("canceling down edges should return to WindNr=0, unfilled")
	}
}

func TestBitmapRules(t *testing.T) {
	ctx := PolygonCountContext(2)
	fsA := &Fill{PolygonNr: 0}
	fsB := &Fill{PolygonNr: 1}

	onlyA := UnionRule.Add(ctx, UnionRule.Start(ctx), fsA, Up, 0)
	if !onlyA.IsFilled {
		t.Fatalf("union should be filled with only polygon A present")
	}
	if IntersectRule.Add(ctx, IntersectRule.Start(ctx), fsA, Up, 0).IsFilled {
		t.Fatalf("intersect should not be filled with only polygon A present")
	}

	both := onlyA
	both = UnionRule.Add(ctx, both, fsB, Up, 1)
	if !both.IsFilled {
		t.Fatalf("union should stay filled with both polygons present")
	}

	bothI := IntersectRule.Add(ctx, IntersectRule.Start(ctx), fsA, Up, 0)
	bothI = IntersectRule.Add(ctx, bothI, fsB, Up, 1)
	if !bothI.IsFilled {
		t.Fatalf("intersect should be filled once every polygon bit is set")
	}

	diffA := DifferenceRule.Add(ctx, DifferenceRule.Start(ctx), fsA, Up, 0)
	if !diffA.IsFilled {
		t.Fatalf("difference should be filled with only polygon 0 present")
	}
	diffAB := DifferenceRule.Add(ctx, diffA, fsB, Up, 1)
	if diffAB.IsFilled {
		t.Fatalf("difference should not be filled once polygon 1 is also present")
	}
}
