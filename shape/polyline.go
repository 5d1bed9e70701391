package shape

import "github.com/fieldway/updraft/vec"

// Polyline2 is a sampled poly-line implementing Path2. Points are assumed
// to be spaced at the given interval.
type Polyline2 struct {
	points   []vec.Vec2
	interval float32
}

// NewPolyline2 creates a poly-line from ordered sample points.
func NewPolyline2(points []vec.Vec2, interval float32) *Polyline2 {
	return &Polyline2{points: points, interval: interval}
}

// BakedPoints returns the sample points.
func (p *Polyline2) BakedPoints() []vec.Vec2 { return p.points }

// BakeInterval returns the sampling interval.
func (p *Polyline2) BakeInterval() float32 { return p.interval }

// ClosestPoint returns the nearest point on the poly-line to q.
func (p *Polyline2) ClosestPoint(q vec.Vec2) vec.Vec2 {
	switch len(p.points) {
	case 0:
		return vec.Vec2{}
	case 1:
		return p.points[0]
	}

	best := p.points[0]
	bestDist := q.Sub(best).LengthSq()
	for i := 0; i+1 < len(p.points); i++ {
		c := closestOnSegment2(q, p.points[i], p.points[i+1])
		if d := q.Sub(c).LengthSq(); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Polyline3 is a sampled poly-line implementing Path3.
type Polyline3 struct {
	points   []vec.Vec3
	interval float32
}

// NewPolyline3 creates a poly-line from ordered sample points.
func NewPolyline3(points []vec.Vec3, interval float32) *Polyline3 {
	return &Polyline3{points: points, interval: interval}
}

// BakedPoints returns the sample points.
func (p *Polyline3) BakedPoints() []vec.Vec3 { return p.points }

// BakeInterval returns the sampling interval.
func (p *Polyline3) BakeInterval() float32 { return p.interval }

// ClosestPoint returns the nearest point on the poly-line to q.
func (p *Polyline3) ClosestPoint(q vec.Vec3) vec.Vec3 {
	switch len(p.points) {
	case 0:
		return vec.Vec3{}
	case 1:
		return p.points[0]
	}

	best := p.points[0]
	bestDist := q.Sub(best).LengthSq()
	for i := 0; i+1 < len(p.points); i++ {
		c := closestOnSegment3(q, p.points[i], p.points[i+1])
		if d := q.Sub(c).LengthSq(); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func closestOnSegment2(q, a, b vec.Vec2) vec.Vec2 {
	ab := b.Sub(a)
	l := ab.LengthSq()
	if l == 0 {
		return a
	}
	t := q.Sub(a).Dot(ab) / l
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

func closestOnSegment3(q, a, b vec.Vec3) vec.Vec3 {
	ab := b.Sub(a)
	l := ab.LengthSq()
	if l == 0 {
		return a
	}
	t := q.Sub(a).Dot(ab) / l
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}
