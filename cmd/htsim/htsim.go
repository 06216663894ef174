// Command htsim runs Hirai-Tarui social-force pedestrian simulations.
//
// # Usage
//
// The htsim command takes one optional argument:
//
//	htsim [config_file]
//
// It is the path to a TOML config file. If no config file is
// specified, a default evacuation scenario runs: a rectangular room
// with one exit and two directional signs.
//
// # Config file
//
// The config file is written in TOML. Scenario geometry (walls, exits,
// signs, panic source) is given as coordinate lists; every model
// parameter lives under the [Params] table. The config file overwrites
// the default parameters.
//
// # Output
//
// Trajectories are written as a GeoJSON feature collection with one
// LineString per agent, tagged with the agent id.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	hiraitarui "github.com/chraibi/hirai-tarui"
	"github.com/chraibi/hirai-tarui/geom"
)

const usage = `Usage: htsim [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, a default evacuation scenario runs.
`

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	sim, err := setup(conf)
	if err != nil {
		Fatal(err)
	}
	if err := run(conf, sim); err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// setup initializes the world and the state of all agents.
func setup(conf *Config) (*hiraitarui.Simulation, error) {
	if len(conf.SpawnCenter) != 2 {
		return nil, fmt.Errorf("spawn center must be [x y], got %v", conf.SpawnCenter)
	}
	rng := rand.New(rand.NewSource(conf.Seed))
	params := conf.Params

	agents := make([]*hiraitarui.Agent, conf.NumAgents)
	for i := range agents {
		r := conf.SpawnRadius * math.Sqrt(rng.Float64())
		sin, cos := math.Sincos(2 * math.Pi * rng.Float64())
		pos := mgl64.Vec2{conf.SpawnCenter[0] + r*cos, conf.SpawnCenter[1] + r*sin}
		sin, cos = math.Sincos(2 * math.Pi * rng.Float64())
		vel := mgl64.Vec2{conf.Speed * cos, conf.Speed * sin}
		agents[i] = hiraitarui.NewAgent(i, pos, vel, conf.Mass, conf.Damping, &params, conf.Seed+int64(i)+1)
	}

	world, err := hiraitarui.BuildWorld(conf.Walls, conf.Exits, conf.Signs, conf.Panic)
	if err != nil {
		return nil, err
	}
	sim, err := hiraitarui.New(agents, world)
	if err != nil {
		return nil, err
	}
	if conf.Debug {
		sim.Observer = debugObserver(conf)
	}
	return sim, nil
}

// run steps the simulation and writes the trajectories.
func run(conf *Config, sim *hiraitarui.Simulation) error {
	trajs := make([]orb.LineString, len(sim.Agents))
	for i, a := range sim.Agents {
		trajs[i] = append(trajs[i], geom.Point(a.Pos))
	}
	for step := 1; step <= conf.Steps; step++ {
		sim.Step(conf.Dt)
		for i, a := range sim.Agents {
			trajs[i] = append(trajs[i], geom.Point(a.Pos))
		}
		if conf.LogEvery > 0 && step%conf.LogEvery == 0 {
			logrus.WithFields(logrus.Fields{
				"step":  step,
				"steps": conf.Steps,
			}).Info("simulation progress")
		}
	}
	return writeTrajectories(conf.Output, trajs)
}

// debugObserver logs the full force breakdown of one agent while it
// is inside the configured x window.
func debugObserver(conf *Config) hiraitarui.Observer {
	log := logrus.WithField("agent", conf.DebugAgent)
	return func(id int, b hiraitarui.Breakdown) {
		if id != conf.DebugAgent || b.Pos.X() < conf.DebugXMin || b.Pos.X() > conf.DebugXMax {
			return
		}
		log.WithFields(logrus.Fields{
			"pos":    b.Pos,
			"drive":  b.Drive,
			"repel":  b.Repulsion,
			"cohere": b.Cohesion,
			"wall":   b.Wall,
			"signs":  b.VisibleSign,
			"memory": b.MemorySign,
			"exit":   b.Exit,
			"panic":  b.Panic,
			"noise":  b.Noise,
			"total":  b.Total,
		}).Info("force breakdown")
	}
}
