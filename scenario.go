package hiraitarui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb"
)

// BuildWorld converts raw coordinate lists, as decoded from a config
// file, into a World. Walls and exits are polygon rings of [x y]
// points and are closed implicitly. Signs are [x y] or, for
// directional signs, [x y fx fy]. The panic source is empty or [x y].
func BuildWorld(walls, exits [][][]float64, signs [][]float64, panicPt []float64) (World, error) {
	var w World
	for _, ring := range walls {
		poly, err := polygon(ring)
		if err != nil {
			return w, fmt.Errorf("bad wall: %v", err)
		}
		w.Walls = append(w.Walls, poly)
	}
	for _, ring := range exits {
		poly, err := polygon(ring)
		if err != nil {
			return w, fmt.Errorf("bad exit: %v", err)
		}
		w.Exits = append(w.Exits, poly)
	}
	for _, s := range signs {
		switch len(s) {
		case 2:
			w.Signs = append(w.Signs, Sign{Pos: mgl64.Vec2{s[0], s[1]}})
		case 4:
			w.Signs = append(w.Signs, Sign{
				Pos:    mgl64.Vec2{s[0], s[1]},
				Facing: mgl64.Vec2{s[2], s[3]},
			})
		default:
			return w, fmt.Errorf("bad sign %v: want [x y] or [x y fx fy]", s)
		}
	}
	switch len(panicPt) {
	case 0:
	case 2:
		w.Panic = &mgl64.Vec2{panicPt[0], panicPt[1]}
	default:
		return w, fmt.Errorf("bad panic source %v: want [x y]", panicPt)
	}
	return w, nil
}

// polygon converts a ring of [x y] points into an orb polygon.
func polygon(ring [][]float64) (orb.Polygon, error) {
	if len(ring) < 3 {
		return nil, fmt.Errorf("ring has %d points (3 required)", len(ring))
	}
	r := make(orb.Ring, 0, len(ring)+1)
	for _, pt := range ring {
		if len(pt) != 2 {
			return nil, fmt.Errorf("bad point %v", pt)
		}
		r = append(r, orb.Point{pt[0], pt[1]})
	}
	if !r[0].Equal(r[len(r)-1]) {
		r = append(r, r[0])
	}
	return orb.Polygon{r}, nil
}
