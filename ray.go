package closest

// Distance queries with a ray as the first argument.

// RayPoint returns the distance from r to p. The projection of p is clamped
// to the ray's origin when it falls behind it.
func RayPoint(r Ray, p Point) (Result, error) {
	lr, err := r.linear()
	if err != nil {
		return Result{}, err
	}
	return linearPoint(lr, p.Vec()), nil
}

// RayRay returns the distance between rays a and b.
func RayRay(a, b Ray) (Result, error) {
	la, err := a.linear()
	if err != nil {
		return Result{}, err
	}
	lb, err := b.linear()
	if err != nil {
		return Result{}, err
	}
	return linearLinear(la, lb), nil
}

// RaySegment returns the distance between ray r and segment s.
func RaySegment(r Ray, s Segment) (Result, error) {
	lr, err := r.linear()
	if err != nil {
		return Result{}, err
	}
	return linearLinear(lr, s.linear()), nil
}

// RayPolyline returns the minimum distance between r and the segments of p.
func RayPolyline(r Ray, p Polyline) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	lr, err := r.linear()
	if err != nil {
		return Result{}, err
	}
	return minOverSegments(p, func(s Segment) Result {
		return linearLinear(lr, s.linear())
	}), nil
}

// RayTriangle returns the distance between ray r and triangle t.
func RayTriangle(r Ray, t Triangle) (Result, error) {
	lr, err := r.linear()
	if err != nil {
		return Result{}, err
	}
	return linearTriangle(lr, t.tri), nil
}
