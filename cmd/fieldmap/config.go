package main

import (
	"github.com/BurntSushi/toml"

	hiraitarui "github.com/chraibi/hirai-tarui"
)

// Config holds the parameters required for sampling a force field.
type Config struct {
	// Output is the path of the CSV file receiving the sampled field.
	Output string

	// Sampling grid
	XMin float64
	XMax float64
	YMin float64
	YMax float64
	NX   int
	NY   int

	// Scenario geometry, in the same format as the htsim config.
	Walls [][][]float64
	Exits [][][]float64
	Signs [][]float64
	Panic []float64

	// Model parameters
	Params hiraitarui.Params
}

// DefaultConf are the default parameters: the htsim default room
// sampled on a 40x20 grid.
var DefaultConf = &Config{
	Output: "fieldmap.csv",
	XMin:   0,
	XMax:   20,
	YMin:   0,
	YMax:   10,
	NX:     40,
	NY:     20,
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
	Panic:  nil,
	Params: *hiraitarui.DefaultParams(),
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := *DefaultConf
	_, err := toml.DecodeFile(path, &conf)
	return &conf, err
}
