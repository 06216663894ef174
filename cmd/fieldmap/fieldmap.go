// Command fieldmap samples the static environment force field of a
// scenario on a regular grid, without running any dynamics.
//
// # Usage
//
// The fieldmap command takes one optional argument:
//
//	fieldmap [config_file]
//
// It is the path to a TOML config file in the same scenario format as
// htsim. The sampled field is written as CSV rows of x, y, fx, fy.
//
// At every grid point the environment force (walls, signs, exits,
// panic source) is evaluated for a resting probe pedestrian that has
// already memorized every sign. Agent-agent terms and the random
// fluctuation are excluded: the result is the deterministic potential
// landscape that an informed pedestrian standing still would feel.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	hiraitarui "github.com/chraibi/hirai-tarui"
)

const usage = `Usage: fieldmap [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, the default scenario is sampled.
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

	if err := sample(conf); err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// sample evaluates the environment force on the configured grid and
// writes the result as CSV.
func sample(conf *Config) error {
	if conf.NX < 2 || conf.NY < 2 {
		return fmt.Errorf("grid must be at least 2x2, got %dx%d", conf.NX, conf.NY)
	}
	world, err := hiraitarui.BuildWorld(conf.Walls, conf.Exits, conf.Signs, conf.Panic)
	if err != nil {
		return err
	}
	if len(world.Exits) == 0 {
		return fmt.Errorf("invalid configuration: empty exits list")
	}
	params := conf.Params

	memory := make([]mgl64.Vec2, len(world.Signs))
	for i, s := range world.Signs {
		memory[i] = s.Pos
	}

	f, err := os.Create(conf.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	out := csv.NewWriter(f)
	if err := out.Write([]string{"x", "y", "fx", "fy"}); err != nil {
		return err
	}

	dx := (conf.XMax - conf.XMin) / float64(conf.NX-1)
	dy := (conf.YMax - conf.YMin) / float64(conf.NY-1)
	for i := 0; i < conf.NX; i++ {
		for j := 0; j < conf.NY; j++ {
			pos := mgl64.Vec2{conf.XMin + float64(i)*dx, conf.YMin + float64(j)*dy}
			probe := hiraitarui.NewAgent(0, pos, mgl64.Vec2{}, 1, 0, &params, 1)
			probe.MemorizedSigns = append(probe.MemorizedSigns, memory...)
			b := probe.ComputeForces(&world, nil)
			fv := b.Wall.Add(b.VisibleSign).Add(b.MemorySign).Add(b.Exit).Add(b.Panic)
			row := []string{
				strconv.FormatFloat(pos.X(), 'g', -1, 64),
				strconv.FormatFloat(pos.Y(), 'g', -1, 64),
				strconv.FormatFloat(fv.X(), 'g', -1, 64),
				strconv.FormatFloat(fv.Y(), 'g', -1, 64),
			}
			if err := out.Write(row); err != nil {
				return err
			}
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"samples": conf.NX * conf.NY,
		"output":  conf.Output,
	}).Info("field sampled")
	return nil
}
