package main

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// writeTrajectories writes one LineString feature per agent to a
// GeoJSON file. The files open directly in Q-GIS and friends.
func writeTrajectories(path string, trajs []orb.LineString) error {
	fc := geojson.NewFeatureCollection()
	for i, t := range trajs {
		f := geojson.NewFeature(t)
		f.Properties["agent"] = i
		fc.Append(f)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
