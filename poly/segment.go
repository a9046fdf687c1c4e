package poly

import "sync/atomic"

var segmentSerial uint64

func nextSegmentSerial() uint64 {
	return atomic.AddUint64(&segmentSerial, 1)
}

// Segment is a sweep-line record constructed lazily from two consecutive
// stroke points.
type Segment struct {
	serial uint64

	A, B Point // A has the lower y, B the higher
	Dir  Direction

	deltaX, deltaY int64
	k              int64 // a.x*b.y - a.y*b.x, the LineEq constant
	minx, maxx     int32

	pos Point // current sweep-line emission position

	Left, Right *Segment // active-list neighbors

	stroke     *Stroke
	pointIndex int // index of A within stroke.Points

	scheduledCrossings map[uint64]*Segment

	Wind    WindState
	FSOut   *Fill
	changed bool

	horizontal bool
}

// newSegment builds a Segment from two consecutive, already y-ordered
// stroke points a (lower y) and b (higher y).
func newSegment(stroke *Stroke, pointIndex int, a, b Point, fill *Fill) *Segment {
	s := &Segment{
		serial:             nextSegmentSerial(),
		A:                  a,
		B:                  b,
		deltaX:             int64(b.X) - int64(a.X),
		deltaY:             int64(b.Y) - int64(a.Y),
		k:                  int64(a.X)*int64(b.Y) - int64(a.Y)*int64(b.X),
		minx:               minI32(a.X, b.X),
		maxx:               maxI32(a.X, b.X),
		pos:                a,
		stroke:             stroke,
		pointIndex:         pointIndex,
		scheduledCrossings: make(map[uint64]*Segment),
	}
	if a.Y == b.Y {
		s.horizontal = true
		if a.X < b.X {
			s.Dir = Up
		} else {
			s.Dir = Down
		}
	} else {
		s.Dir = stroke.Dir
	}
	if fill != nil {
		s.Wind.FS = fill
	}
	return s
}

// Fill returns the stroke's fillstyle tag for this segment.
func (s *Segment) Fill() *Fill {
	return s.stroke.Fill
}

// PolygonNr returns the input polygon index carried by this segment's fill.
func (s *Segment) PolygonNr() int {
	if s.stroke.Fill == nil {
		return 0
	}
	return s.stroke.Fill.PolygonNr
}

func (s *Segment) hasScheduledCrossing(partner *Segment) bool {
	_, ok := s.scheduledCrossings[partner.serial]
	return ok
}

func (s *Segment) scheduleCrossingWith(partner *Segment) {
	s.scheduledCrossings[partner.serial] = partner
	partner.scheduledCrossings[s.serial] = s
}

func (s *Segment) clearCrossingWith(partner *Segment) {
	delete(s.scheduledCrossings, partner.serial)
	delete(partner.scheduledCrossings, s.serial)
}

// lineEq evaluates LineEq(p) against this segment's own line.
func (s *Segment) lineEq(p Point) int64 {
	return LineEq(p, s.A, s.B)
}

// xposInt returns XPosInt(s.A, s.B, y).
func (s *Segment) xposInt(y int32) int32 {
	return XPosInt(s.A, s.B, y)
}

func (s *Segment) xpos(y int32) float64 {
	return XPos(s.A, s.B, y)
}

// slopePositive reports whether s rises to the right (deltaX > 0); vertical
// segments (deltaX == 0) belong to the negative/vertical pass instead.
func (s *Segment) slopePositive() bool {
	return s.deltaX > 0
}

// slopeNegativeOrVertical reports whether s does not rise to the right
// (deltaX <= 0), matching poly.c's classification of the negatively-sloped
// pass: it processes everything the positive pass ignores, verticals
// included.
func (s *Segment) slopeNegativeOrVertical() bool {
	return s.deltaX <= 0
}
