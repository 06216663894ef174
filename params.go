package hiraitarui

import "math"

// Params bundles every model parameter. A single Params value is
// typically shared by reference across all agents of a run and must
// not be mutated while a simulation is running.
type Params struct {
	// Driving force
	A float64 // strength of the self-driving force

	// Wall interaction
	WallDistance       float64 // range of the wall repulsion
	WallStrengthInto   float64 // extra strength when moving into the wall (w0)
	WallStrengthAlways float64 // baseline strength within range (w1)

	// Sign attraction
	EtaSign      float64 // strength per visible sign
	EtaMem       float64 // strength per memorized sign
	VisionRadius float64 // maximum distance at which a sign is visible
	FOVAngle     float64 // agent's full field-of-view angle
	SignFOV      float64 // full facing-cone angle of directional signs

	// Exit attraction
	ExitStrength     float64
	ExitDomainRadius float64 // distance at which sign-following stops

	// Random fluctuation force
	Q1 float64 // amplitude away from walls
	Q2 float64 // amplitude near a pushing wall

	// Panic force
	PanicStrength float64
	PanicCutoff   float64 // no panic repulsion beyond this distance

	// Kernel shapes
	C1        C1Params
	H1        H1Params
	Trapezoid TrapezoidParams

	Policy Policy
}

// Policy selects between variants of the model found in the
// literature. The defaults follow the formulation closest to the
// original paper's equations (2)-(11).
type Policy struct {
	// DirectionalSigns gates sign visibility on the sign's own facing
	// cone in addition to the agent's field of view. When false, signs
	// are plain positions.
	DirectionalSigns bool

	// WallHoles treats interior polygon rings as walls too.
	WallHoles bool

	// NegateWallNoise flips the sign of the Q2 fluctuation branch
	// taken when the wall force is actively pushing the agent back.
	NegateWallNoise bool
}

// DefaultParams returns the reference parameter set.
func DefaultParams() *Params {
	return &Params{
		A:                  1.0,
		WallDistance:       1.0,
		WallStrengthInto:   6.0,
		WallStrengthAlways: 6.0,
		EtaSign:            1.0,
		EtaMem:             1.0,
		VisionRadius:       1.5,
		FOVAngle:           2 * math.Pi / 3,
		SignFOV:            math.Pi / 2,
		ExitStrength:       0.5,
		ExitDomainRadius:   4.0,
		Q1:                 1.0,
		Q2:                 2.0,
		PanicStrength:      1.0,
		PanicCutoff:        20.0,
		C1: C1Params{
			CN0:     -0.5,
			CR0:     1.0,
			Beta:    0.5,
			Gamma:   2.0,
			Epsilon: 3.0,
		},
		H1: H1Params{
			HR0:    1.0,
			Lambda: 1.5,
			Sigma:  2.5,
		},
		Trapezoid: TrapezoidParams{
			Phi1:  math.Pi / 6,
			Phi2:  math.Pi / 3,
			Phi3:  2 * math.Pi / 3,
			Phi4:  5 * math.Pi / 6,
			CPhi1: 1.0,
			CPhi2: 0.5,
			HPhi1: 1.0,
			HPhi2: 0.5,
		},
		Policy: Policy{
			DirectionalSigns: true,
			WallHoles:        true,
			NegateWallNoise:  false,
		},
	}
}
