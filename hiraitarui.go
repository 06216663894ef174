// Package hiraitarui runs social-force simulations of pedestrian crowds
// following the model of Hirai and Tarui.
//
// Each agent is pushed and pulled by a sum of force terms derived from
// its own motion, its neighbors, walls, directional signage, exits and
// an optional panic source. Per step, every agent computes its forces
// against a frozen snapshot of the previous step, then every agent is
// advanced with a semi-implicit Euler update. Agents memorize signs
// they have seen and fall back to that memory when no sign is visible,
// until they come close enough to an exit to head straight for it.
package hiraitarui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
)

// A Sign is a wayfinding sign placed in the environment.
// A zero Facing vector makes the sign perceivable from every direction.
type Sign struct {
	Pos    mgl64.Vec2
	Facing mgl64.Vec2
}

// A Neighbor is the frozen position and velocity of another agent.
type Neighbor struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2
}

// A World holds the static environment of a simulation.
// It is read-only for the duration of a step. The exits list must not
// change size during a run: agents keep indices into it.
type World struct {
	Walls []orb.Polygon
	Signs []Sign
	Exits []orb.Polygon
	Panic *mgl64.Vec2 // optional panic source
}

// An Observer receives the full force breakdown of an agent right
// after its force computation.
type Observer func(id int, b Breakdown)

// A Simulation owns a set of agents and their environment.
type Simulation struct {
	Agents   []*Agent
	World    World
	Observer Observer
}

// New returns a simulation after validating the configuration.
// An empty exits list is rejected here: the nearest-exit search is
// undefined without exits, and failing mid-step would be too late.
func New(agents []*Agent, w World) (*Simulation, error) {
	if len(w.Exits) == 0 {
		return nil, fmt.Errorf("hiraitarui: invalid configuration: empty exits list")
	}
	for _, a := range agents {
		if a.Mass <= 0 {
			return nil, fmt.Errorf("hiraitarui: invalid configuration: agent %d has non-positive mass %v", a.ID, a.Mass)
		}
		if a.Damping < 0 {
			return nil, fmt.Errorf("hiraitarui: invalid configuration: agent %d has negative damping %v", a.ID, a.Damping)
		}
	}
	return &Simulation{Agents: agents, World: w}, nil
}

// Step runs a single simulation step.
//
// All force computations read a snapshot of the positions and
// velocities taken at the end of the previous step: no agent observes
// another agent mid-update. Integration starts only once every
// agent's forces are known.
func (s *Simulation) Step(dt float64) {
	snapshot := make([]Neighbor, len(s.Agents))
	for i, a := range s.Agents {
		snapshot[i] = Neighbor{Pos: a.Pos, Vel: a.Vel}
	}

	others := make([]Neighbor, 0, len(s.Agents))
	for i, a := range s.Agents {
		others = others[:0]
		for j, n := range snapshot {
			if j != i {
				others = append(others, n)
			}
		}
		b := a.ComputeForces(&s.World, others)
		if s.Observer != nil {
			s.Observer(a.ID, b)
		}
	}

	for _, a := range s.Agents {
		a.Advance(dt)
	}
}
