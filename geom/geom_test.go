package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
)

const tol = 1e-12

func almost(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNormalize(t *testing.T) {
	if v := Normalize(mgl64.Vec2{}); v != (mgl64.Vec2{}) {
		t.Errorf("Normalize(zero) = %v, want zero", v)
	}
	tests := []struct {
		name string
		v    mgl64.Vec2
	}{
		{"Axis", mgl64.Vec2{3, 0}},
		{"Pythagorean", mgl64.Vec2{3, 4}},
		{"Tiny", mgl64.Vec2{1e-9, -1e-9}},
		{"Negative", mgl64.Vec2{-7, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(tt.v)
			if !almost(n.Len(), 1) {
				t.Errorf("|Normalize(%v)| = %v, want 1", tt.v, n.Len())
			}
		})
	}
	if v := Normalize(mgl64.Vec2{3, 4}); !almost(v.X(), 0.6) || !almost(v.Y(), 0.8) {
		t.Errorf("Normalize({3,4}) = %v, want {0.6,0.8}", v)
	}
}

func TestAngleBetween(t *testing.T) {
	v := mgl64.Vec2{1, 2}
	tests := []struct {
		name   string
		v1, v2 mgl64.Vec2
		want   float64
	}{
		{"Same", v, v, 0},
		{"Parallel", v, v.Mul(3), 0},
		{"Opposite", v, v.Mul(-1), math.Pi},
		{"AntiParallel", v, v.Mul(-0.25), math.Pi},
		{"FirstZero", mgl64.Vec2{}, v, 0},
		{"SecondZero", v, mgl64.Vec2{}, 0},
		{"Perpendicular", mgl64.Vec2{1, 0}, mgl64.Vec2{0, 3}, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleBetween(tt.v1, tt.v2); !almost(got, tt.want) {
				t.Errorf("AngleBetween(%v, %v) = %v, want %v", tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}

func TestSegmentClosest(t *testing.T) {
	s := Segment{orb.Point{0, 0}, orb.Point{10, 0}}
	tests := []struct {
		name string
		p    orb.Point
		want orb.Point
	}{
		{"Above", orb.Point{5, 3}, orb.Point{5, 0}},
		{"BeforeStart", orb.Point{-2, 1}, orb.Point{0, 0}},
		{"AfterEnd", orb.Point{12, -1}, orb.Point{10, 0}},
		{"OnSegment", orb.Point{4, 0}, orb.Point{4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Closest(tt.p)
			if !almost(got.X(), tt.want.X()) || !almost(got.Y(), tt.want.Y()) {
				t.Errorf("Closest(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	// degenerate segment
	d := Segment{orb.Point{1, 1}, orb.Point{1, 1}}
	if got := d.Closest(orb.Point{5, 5}); !got.Equal(orb.Point{1, 1}) {
		t.Errorf("Closest on degenerate segment = %v, want {1,1}", got)
	}
}

func TestNearestSegment(t *testing.T) {
	segs := []Segment{
		{orb.Point{0, 2}, orb.Point{10, 2}},
		{orb.Point{0, -5}, orb.Point{10, -5}},
	}
	dist, closest, seg := NearestSegment(orb.Point{5, 0}, segs)
	if !almost(dist, 2) {
		t.Errorf("dist = %v, want 2", dist)
	}
	if !almost(closest.Y(), 2) {
		t.Errorf("closest = %v, want y=2", closest)
	}
	if seg != segs[0] {
		t.Errorf("seg = %v, want %v", seg, segs[0])
	}

	if d, _, _ := NearestSegment(orb.Point{0, 0}, nil); !math.IsInf(d, 1) {
		t.Errorf("NearestSegment with no segments: dist = %v, want +Inf", d)
	}
}

func TestBoundarySegments(t *testing.T) {
	outer := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := orb.Ring{{4, 4}, {6, 4}, {6, 6}, {4, 6}}
	poly := orb.Polygon{outer, hole}

	if n := len(BoundarySegments(poly, false)); n != 4 {
		t.Errorf("segments without holes = %d, want 4", n)
	}
	if n := len(BoundarySegments(poly, true)); n != 8 {
		t.Errorf("segments with holes = %d, want 8", n)
	}

	// explicitly closed ring must not gain an extra segment
	closed := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}
	if n := len(BoundarySegments(closed, true)); n != 3 {
		t.Errorf("segments of closed triangle = %d, want 3", n)
	}
}

func TestBoundaryDistance(t *testing.T) {
	poly := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	// inside: distance to the boundary, not zero
	if d := BoundaryDistance(orb.Point{5, 1}, poly, false); !almost(d, 1) {
		t.Errorf("inside distance = %v, want 1", d)
	}
	if d := BoundaryDistance(orb.Point{-3, 5}, poly, false); !almost(d, 3) {
		t.Errorf("outside distance = %v, want 3", d)
	}
}

func TestCentroid(t *testing.T) {
	poly := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	c := Centroid(poly)
	if !almost(c.X(), 0.5) || !almost(c.Y(), 0.5) {
		t.Errorf("Centroid = %v, want {0.5,0.5}", c)
	}
}

func TestRandomUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		u := RandomUnit(rng)
		if !almost(u.Len(), 1) {
			t.Fatalf("|RandomUnit()| = %v, want 1", u.Len())
		}
	}

	// same seed, same sequence
	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	if u1, u2 := RandomUnit(r1), RandomUnit(r2); u1 != u2 {
		t.Errorf("same seed produced %v and %v", u1, u2)
	}
}
