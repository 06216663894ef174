package hiraitarui

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"

	"github.com/chraibi/hirai-tarui/geom"
)

// A Breakdown lists every force term acting on an agent during one
// step, plus the total actually applied. Terms that were inactive
// that step (for example the sign force not selected by the
// perception switch) are zero.
type Breakdown struct {
	Pos mgl64.Vec2 // position the forces were computed at

	Drive       mgl64.Vec2 // self-driving force
	Repulsion   mgl64.Vec2 // repulsion from neighbors
	Cohesion    mgl64.Vec2 // velocity alignment with neighbors
	Wall        mgl64.Vec2 // repulsion from the nearest wall
	VisibleSign mgl64.Vec2 // attraction toward currently visible signs
	MemorySign  mgl64.Vec2 // attraction toward memorized signs
	Exit        mgl64.Vec2 // attraction toward the nearest exit
	Panic       mgl64.Vec2 // repulsion from the panic source
	Noise       mgl64.Vec2 // random fluctuation

	Total mgl64.Vec2
}

// driveForce is the agent's own driving force along its heading.
// A resting agent generates no drive.
func driveForce(vel mgl64.Vec2, a float64) mgl64.Vec2 {
	return geom.Normalize(vel).Mul(a)
}

// repulsionForce pushes the agent away from surrounding agents.
// Each neighbor contributes along the line of sight, scaled by the
// c1/c2 kernels of distance and bearing.
func repulsionForce(pos, vel mgl64.Vec2, others []Neighbor, p *Params) mgl64.Vec2 {
	var f mgl64.Vec2
	for _, o := range others {
		r := o.Pos.Sub(pos)
		d := r.Len()
		if d == 0 {
			continue
		}
		c := c1(d, p.C1) * c2(geom.AngleBetween(vel, r), p.Trapezoid)
		f = f.Sub(r.Mul(c / d))
	}
	return f
}

// cohesionForce drags the agent's velocity toward that of its
// neighbors, scaled by the h1/h2 kernels and averaged over the
// neighborhood.
func cohesionForce(pos, vel mgl64.Vec2, others []Neighbor, p *Params) mgl64.Vec2 {
	if len(others) == 0 {
		return mgl64.Vec2{}
	}
	var f mgl64.Vec2
	for _, o := range others {
		r := o.Pos.Sub(pos)
		d := r.Len()
		if d == 0 {
			continue
		}
		h := h1(d, p.H1) * h2(geom.AngleBetween(vel, r), p.Trapezoid)
		f = f.Add(o.Vel.Sub(vel).Mul(h))
	}
	return f.Mul(1 / float64(len(others)))
}

// wallForce repels the agent from the globally nearest wall segment.
// The repulsion is stronger the faster the agent moves into the wall
// and the closer it gets. It also reports the unit normal pointing
// from the wall to the agent, consumed by noiseForce; when no wall is
// within range the normal is an arbitrary placeholder.
func wallForce(pos, vel mgl64.Vec2, segs []geom.Segment, p *Params) (f, ew mgl64.Vec2) {
	ew = mgl64.Vec2{1, 0}
	dist, closest, _ := geom.NearestSegment(geom.Point(pos), segs)
	if dist >= p.WallDistance {
		return mgl64.Vec2{}, ew
	}
	ew = geom.Normalize(pos.Sub(geom.Vec(closest)))
	vw := -vel.Dot(ew) // positive when moving into the wall
	strength := p.WallStrengthAlways
	if vw > 0 {
		strength += p.WallStrengthInto * vw * (p.WallDistance - dist) / p.WallDistance
	}
	return ew.Mul(strength), ew
}

// signForce attracts the agent toward each of the given sign
// positions with constant strength eta per sign. A sign exactly at
// the agent's position contributes nothing.
func signForce(pos mgl64.Vec2, signs []mgl64.Vec2, eta float64) mgl64.Vec2 {
	var f mgl64.Vec2
	for _, s := range signs {
		dir := s.Sub(pos)
		d := dir.Len()
		if d == 0 {
			continue
		}
		f = f.Add(dir.Mul(eta / d))
	}
	return f
}

// exitForce attracts the agent toward the centroid of an exit.
func exitForce(pos mgl64.Vec2, exit orb.Polygon, strength float64) mgl64.Vec2 {
	return geom.Normalize(geom.Vec(geom.Centroid(exit)).Sub(pos)).Mul(strength)
}

// panicForce pushes the agent straight away from the panic source.
// It vanishes beyond the cutoff distance and exactly at the source,
// where no direction exists.
func panicForce(pos mgl64.Vec2, src *mgl64.Vec2, strength, cutoff float64) mgl64.Vec2 {
	if src == nil {
		return mgl64.Vec2{}
	}
	dir := pos.Sub(*src)
	d := dir.Len()
	if d == 0 || d > cutoff {
		return mgl64.Vec2{}
	}
	return dir.Mul(strength / d)
}

// noiseForce is the random fluctuation force, re-sampled on every
// call. Far from any wall (di > WallDistance) the amplitude is Q1.
// Near a wall the amplitude is Q2 while the wall force is actively
// pushing back (bw > 0) and Q1 otherwise; bw is the component of the
// wall force along the wall normal and is meaningless when the di
// branch was taken.
func noiseForce(rng *rand.Rand, di, bw float64, p *Params) mgl64.Vec2 {
	q := p.Q1
	if di <= p.WallDistance && bw > 0 {
		q = p.Q2
		if p.Policy.NegateWallNoise {
			q = -q
		}
	}
	return geom.RandomUnit(rng).Mul(q)
}
