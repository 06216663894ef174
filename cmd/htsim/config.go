package main

import (
	"github.com/BurntSushi/toml"

	hiraitarui "github.com/chraibi/hirai-tarui"
)

// Config holds the various parameters required for running a simulation.
type Config struct {
	// Output is the path of the GeoJSON file receiving one trajectory
	// feature per agent.
	Output string

	NumAgents int     // number of agents
	Steps     int     // number of time steps
	Dt        float64 // duration of time steps
	Seed      int64   // seed of all random sources

	// Initial conditions: agents spawn uniformly in a disc with
	// uniformly random headings.
	SpawnCenter []float64 // [x y]
	SpawnRadius float64
	Speed       float64 // magnitude of initial velocities
	Mass        float64
	Damping     float64

	// Scenario geometry
	Walls [][][]float64 // one ring of [x y] points per wall polygon
	Exits [][][]float64 // one ring of [x y] points per exit polygon
	Signs [][]float64   // [x y] or [x y fx fy] per sign
	Panic []float64     // empty, or [x y]

	// Model parameters
	Params hiraitarui.Params

	// Force breakdown logging for a single agent within an x window.
	Debug      bool
	DebugAgent int
	DebugXMin  float64
	DebugXMax  float64

	// LogEvery is the progress logging period in steps (0 disables).
	LogEvery int
}

// DefaultConf are the default parameters: a 20x10 room with an exit
// on the right wall and two directional signs pointing the way.
var DefaultConf = &Config{
	Output:      "trajectories.json",
	NumAgents:   25,
	Steps:       2000,
	Dt:          0.05,
	Seed:        1,
	SpawnCenter: []float64{4, 5},
	SpawnRadius: 3,
	Speed:       0.5,
	Mass:        1,
	Damping:     0.5,
	Walls: [][][]float64{
		{{0, 0}, {20, 0}, {20, 10}, {0, 10}},
	},
	Exits: [][][]float64{
		{{18.5, 4}, {19.5, 4}, {19.5, 6}, {18.5, 6}},
	},
	Signs: [][]float64{
		{8, 9, 0, -1},
		{13, 1, 0, 1},
	},
	Panic:    nil,
	Params:   *hiraitarui.DefaultParams(),
	LogEvery: 200,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := *DefaultConf
	_, err := toml.DecodeFile(path, &conf)
	return &conf, err
}
