package poly

// Union returns the set-union of the given polygons, evaluated under the
// bitmap set-boolean rule. Each element of polygons becomes one bit of the
// winding bitmap; ErrTooManyPolygons is returned for more than 64 operands.
func Union(polygons []*Polygon, opts Options) (*Polygon, error) {
	return Process(polygons, UnionRule, PolygonCountContext(len(polygons)), NewWriter(), opts)
}

// Intersect returns the set-intersection of the given polygons: the region
// covered by every operand.
func Intersect(polygons []*Polygon, opts Options) (*Polygon, error) {
	return Process(polygons, IntersectRule, PolygonCountContext(len(polygons)), NewWriter(), opts)
}

// Difference returns polygons[0] minus the union of every other operand.
func Difference(polygons []*Polygon, opts Options) (*Polygon, error) {
	return Process(polygons, DifferenceRule, PolygonCountContext(len(polygons)), NewWriter(), opts)
}

// EvenOdd resolves a single (possibly self-intersecting) polygon set under
// the even/odd fill rule.
func EvenOdd(polygons []*Polygon, opts Options) (*Polygon, error) {
	return Process(polygons, EvenOddRule, nil, NewWriter(), opts)
}

// NonZero resolves a single (possibly self-intersecting) polygon set under
// the non-zero fill rule.
func NonZero(polygons []*Polygon, opts Options) (*Polygon, error) {
	return Process(polygons, NonZeroRule, nil, NewWriter(), opts)
}
