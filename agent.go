package hiraitarui

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"

	"github.com/chraibi/hirai-tarui/geom"
)

// signMatchTol is the absolute tolerance below which two sign
// positions count as the same sign.
const signMatchTol = 1e-8

// An Agent is a single simulated pedestrian.
//
// Pos and Vel are mutated only by Advance. MemorizedSigns and
// LastExit are owned by the agent alone: ComputeForces is their only
// writer and no other component touches them.
type Agent struct {
	ID      int
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Mass    float64
	Damping float64

	// MemorizedSigns grows monotonically: a sign seen once is
	// remembered for the rest of the run.
	MemorizedSigns []mgl64.Vec2

	// LastExit indexes the currently nearest exit in the world's
	// exits list. It is refreshed on every step, not only when the
	// agent switches behavior.
	LastExit int

	// Params is shared by reference across agents and never mutated.
	Params *Params

	acc mgl64.Vec2
	rng *rand.Rand
}

// NewAgent returns an agent with the given initial state. A nil
// params uses DefaultParams. The seed feeds the agent-local random
// source, keeping runs deterministic per seed even when force
// computations run in parallel.
func NewAgent(id int, pos, vel mgl64.Vec2, mass, damping float64, params *Params, seed int64) *Agent {
	if params == nil {
		params = DefaultParams()
	}
	return &Agent{
		ID:      id,
		Pos:     pos,
		Vel:     vel,
		Mass:    mass,
		Damping: damping,
		Params:  params,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// ComputeForces evaluates every force term against the frozen
// neighbor snapshot, updates the agent's sign memory and nearest-exit
// index, and stores the resulting acceleration for the next Advance.
// The returned breakdown lists all individual terms.
func (a *Agent) ComputeForces(w *World, others []Neighbor) Breakdown {
	p := a.Params

	var segs []geom.Segment
	for _, wall := range w.Walls {
		segs = append(segs, geom.BoundarySegments(wall, p.Policy.WallHoles)...)
	}

	b := Breakdown{Pos: a.Pos}
	b.Drive = driveForce(a.Vel, p.A)
	b.Repulsion = repulsionForce(a.Pos, a.Vel, others, p)
	b.Cohesion = cohesionForce(a.Pos, a.Vel, others, p)

	var ew mgl64.Vec2
	b.Wall, ew = wallForce(a.Pos, a.Vel, segs, p)

	if len(w.Exits) > 0 {
		a.LastExit = nearestExit(a.Pos, w.Exits)
		exit := w.Exits[a.LastExit]
		if a.distanceTo(exit) <= p.ExitDomainRadius {
			// Close to an exit: head straight for it, signs no longer matter.
			b.Exit = exitForce(a.Pos, exit, p.ExitStrength)
		} else {
			b.VisibleSign, b.MemorySign = a.signForces(w.Signs)
		}
	} else {
		b.VisibleSign, b.MemorySign = a.signForces(w.Signs)
	}

	b.Panic = panicForce(a.Pos, w.Panic, p.PanicStrength, p.PanicCutoff)

	di, _, _ := geom.NearestSegment(geom.Point(a.Pos), segs)
	b.Noise = noiseForce(a.rng, di, b.Wall.Dot(ew), p)

	drive := b.Drive.Add(b.Repulsion).Add(b.Cohesion)
	env := b.Wall.Add(b.VisibleSign).Add(b.MemorySign).Add(b.Exit).Add(b.Panic)
	b.Total = drive.Add(env).Add(b.Noise)

	a.acc = b.Total.Sub(a.Vel.Mul(a.Damping)).Mul(1 / a.Mass)
	return b
}

// Advance applies one semi-implicit Euler update using the
// acceleration stored by the last ComputeForces call.
func (a *Agent) Advance(dt float64) {
	a.Vel = a.Vel.Add(a.acc.Mul(dt))
	a.Pos = a.Pos.Add(a.Vel.Mul(dt))
}

// signForces memorizes any newly visible sign and selects exactly one
// of the two sign attractions: the visible-sign force when at least
// one sign is currently visible, the memorized-sign force otherwise.
// They are never summed, so an agent cannot be torn between a live
// sign and a stale memory of it.
func (a *Agent) signForces(signs []Sign) (visible, memory mgl64.Vec2) {
	seen := a.visibleSigns(signs)
	a.memorize(seen)
	if len(seen) > 0 {
		return signForce(a.Pos, seen, a.Params.EtaSign), mgl64.Vec2{}
	}
	return mgl64.Vec2{}, signForce(a.Pos, a.MemorizedSigns, a.Params.EtaMem)
}

// visibleSigns returns the positions of the signs the agent can
// currently perceive: within the vision radius, within the agent's
// field of view around its velocity, and, for directional signs, with
// the agent inside the sign's facing cone.
func (a *Agent) visibleSigns(signs []Sign) []mgl64.Vec2 {
	p := a.Params
	var seen []mgl64.Vec2
	for _, s := range signs {
		toSign := s.Pos.Sub(a.Pos)
		d := toSign.Len()
		if d == 0 || d > p.VisionRadius {
			continue
		}
		if geom.AngleBetween(a.Vel, toSign) > p.FOVAngle/2 {
			continue
		}
		if p.Policy.DirectionalSigns && s.Facing.Len() > 0 {
			if geom.AngleBetween(s.Facing, a.Pos.Sub(s.Pos)) > p.SignFOV/2 {
				continue
			}
		}
		seen = append(seen, s.Pos)
	}
	return seen
}

// memorize appends any sign position not already remembered.
func (a *Agent) memorize(signs []mgl64.Vec2) {
	for _, s := range signs {
		known := false
		for _, m := range a.MemorizedSigns {
			if math.Abs(m.X()-s.X()) <= signMatchTol && math.Abs(m.Y()-s.Y()) <= signMatchTol {
				known = true
				break
			}
		}
		if !known {
			a.MemorizedSigns = append(a.MemorizedSigns, s)
		}
	}
}

// distanceTo is the distance from the agent to an exit's centroid.
func (a *Agent) distanceTo(exit orb.Polygon) float64 {
	return geom.Vec(geom.Centroid(exit)).Sub(a.Pos).Len()
}

// nearestExit returns the index of the exit whose centroid is closest
// to pos. The exits list must not be empty.
func nearestExit(pos mgl64.Vec2, exits []orb.Polygon) int {
	best, min := 0, math.Inf(1)
	for i, e := range exits {
		if d := geom.Vec(geom.Centroid(e)).Sub(pos).Len(); d < min {
			best, min = i, d
		}
	}
	return best
}
