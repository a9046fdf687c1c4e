package poly

// LineEq evaluates the oriented line-side predicate of point p against the
// line through segment s: (p.Y - s.a.Y)*s.delta.X - (p.X - s.a.X)*s.delta.Y.
// Both of s's own endpoints evaluate to zero. The sign gives the side of p
// relative to the line, oriented from a (lower y) to b (higher y).
func LineEq(p Point, a, b Point) int64 {
	dx := int64(b.X) - int64(a.X)
	dy := int64(b.Y) - int64(a.Y)
	return (int64(p.Y)-int64(a.Y))*dx - (int64(p.X)-int64(a.X))*dy
}

// XPos returns the x-coordinate of the line through a,b at scanline y, as a
// real number. Callers must ensure a.Y != b.Y.
func XPos(a, b Point, y int32) float64 {
	dx := float64(b.X) - float64(a.X)
	dy := float64(b.Y) - float64(a.Y)
	return float64(a.X) + dx*(float64(y)-float64(a.Y))/dy
}

// XPosInt returns the ceiling of XPos, matching the ceiling rule used for
// crossing points so that snapping never moves a point above the scanline
// it is being snapped onto.
func XPosInt(a, b Point, y int32) int32 {
	x := XPos(a, b, y)
	cx := int32(x)
	if float64(cx) < x {
		cx++
	}
	return cx
}

// box is the 1x1 grid-aligned snap cell surrounding x at scanline y.
type box struct {
	left1, left2, right1, right2 Point
}

// newBox builds the snap box for x-row value x at scanline y, matching the
// gfxpoly box_new geometry: right1=(x,y-1), right2=(x,y), left1=(x-1,y-1),
// left2=(x-1,y).
func newBox(x, y int32) box {
	return box{
		left1:  Point{X: x - 1, Y: y - 1},
		left2:  Point{X: x - 1, Y: y},
		right1: Point{X: x, Y: y - 1},
		right2: Point{X: x, Y: y},
	}
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
