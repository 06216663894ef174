// Package geom provides the planar geometry consumed by the force model.
//
// Polygons and points are paulmach/orb types so that scenarios can be
// loaded from and written back as GeoJSON. Vector algebra uses mgl64.
package geom

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// A Segment is a single polygon edge.
type Segment [2]orb.Point

// Vec converts an orb point to a vector.
func Vec(p orb.Point) mgl64.Vec2 {
	return mgl64.Vec2{p.X(), p.Y()}
}

// Point converts a vector to an orb point.
func Point(v mgl64.Vec2) orb.Point {
	return orb.Point{v.X(), v.Y()}
}

// Normalize returns v scaled to unit length.
// The zero vector is mapped to the zero vector.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	n := v.Len()
	if n == 0 {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / n)
}

// AngleBetween returns the angle between v1 and v2 in [0, π].
// It returns 0 if either vector is zero. Parallel vectors give
// exactly 0 and anti-parallel vectors exactly π: the cross product
// vanishes exactly in both cases, which acos of the normalized dot
// product does not guarantee.
func AngleBetween(v1, v2 mgl64.Vec2) float64 {
	if v1.Len() == 0 || v2.Len() == 0 {
		return 0
	}
	cross := v1.X()*v2.Y() - v1.Y()*v2.X()
	return math.Atan2(math.Abs(cross), v1.Dot(v2))
}

// BoundarySegments returns the edges of a polygon.
// Interior rings contribute edges only when holes is true.
// Rings are closed implicitly if their last point differs from the first.
func BoundarySegments(p orb.Polygon, holes bool) []Segment {
	var segs []Segment
	for i, ring := range p {
		if i > 0 && !holes {
			break
		}
		for j := 0; j+1 < len(ring); j++ {
			segs = append(segs, Segment{ring[j], ring[j+1]})
		}
		if len(ring) > 1 && !ring[0].Equal(ring[len(ring)-1]) {
			segs = append(segs, Segment{ring[len(ring)-1], ring[0]})
		}
	}
	return segs
}

// Closest returns the point of s closest to p.
func (s Segment) Closest(p orb.Point) orb.Point {
	a, b := Vec(s[0]), Vec(s[1])
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return s[0]
	}
	t := Vec(p).Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point(a.Add(ab.Mul(t)))
}

// Distance returns the distance from p to the segment.
func (s Segment) Distance(p orb.Point) float64 {
	return planar.Distance(s.Closest(p), p)
}

// NearestSegment returns the segment of segs closest to p together
// with the distance and the closest point on it. With an empty segs
// the distance is +Inf.
func NearestSegment(p orb.Point, segs []Segment) (dist float64, closest orb.Point, seg Segment) {
	dist = math.Inf(1)
	for _, s := range segs {
		c := s.Closest(p)
		if d := planar.Distance(c, p); d < dist {
			dist, closest, seg = d, c, s
		}
	}
	return dist, closest, seg
}

// BoundaryDistance returns the distance from p to the boundary of poly.
func BoundaryDistance(p orb.Point, poly orb.Polygon, holes bool) float64 {
	d, _, _ := NearestSegment(p, BoundarySegments(poly, holes))
	return d
}

// Centroid returns the centroid of a polygon.
func Centroid(p orb.Polygon) orb.Point {
	c, _ := planar.CentroidArea(p)
	return c
}

// RandomUnit returns a unit vector with uniformly distributed direction.
func RandomUnit(rng *rand.Rand) mgl64.Vec2 {
	sin, cos := math.Sincos(2 * math.Pi * rng.Float64())
	return mgl64.Vec2{cos, sin}
}
